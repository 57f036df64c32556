package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cloudsitefy/inquiry-service/cmd/mainconfig"
	"github.com/cloudsitefy/inquiry-service/internal/api/router"
	appconfig "github.com/cloudsitefy/inquiry-service/internal/config"
	"github.com/cloudsitefy/inquiry-service/internal/http/handlers"
	"github.com/cloudsitefy/inquiry-service/internal/inquiry"
	"github.com/cloudsitefy/inquiry-service/internal/notify"
	"github.com/cloudsitefy/inquiry-service/internal/observability/metrics"
	"github.com/cloudsitefy/inquiry-service/pkg/logging"
)

// BuildRouter wires the full application and returns the HTTP handler both
// the standalone server and the Lambda entrypoint serve.
func BuildRouter(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (http.Handler, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if cfg.AdminToken == "" {
		logger.Warn("ADMIN_TOKEN not set; admin endpoints will reject every request")
	}

	inquiryMetrics := metrics.NewInquiryMetrics(prometheus.DefaultRegisterer)

	store, err := buildStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	mailer, err := buildMailer(ctx, cfg, logger, inquiryMetrics)
	if err != nil {
		return nil, err
	}

	var notifier inquiry.Notifier
	var replySender handlers.ReplySender
	if mailer != nil {
		notifier = mailer
		replySender = mailer
	}

	pipeline := inquiry.NewPipeline(store, notifier, logger, inquiryMetrics)
	lifecycle := inquiry.NewLifecycle(store, logger)

	return router.New(&router.Config{
		Logger:             logger,
		SubmitHandler:      handlers.NewSubmitHandler(pipeline, logger),
		AdminInquiries:     handlers.NewAdminInquiriesHandler(store, lifecycle, logger),
		ReplyHandler:       handlers.NewReplyHandler(replySender, lifecycle, logger),
		HealthHandler:      handlers.NewHealthHandler(cfg.Env),
		MetricsHandler:     promhttp.Handler(),
		AdminToken:         cfg.AdminToken,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		SubmitRateLimit:    cfg.SubmitRateLimit,
		SubmitRateBurst:    cfg.SubmitRateBurst,
	}), nil
}

func buildStore(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (inquiry.Store, error) {
	if cfg.UseMemoryStore {
		logger.Warn("using in-memory inquiry store; data is lost on restart")
		return inquiry.NewMemoryStore(), nil
	}
	awsCfg, err := mainconfig.LoadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: load AWS config: %w", err)
	}
	return inquiry.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), cfg.InquiriesTable, logger), nil
}

func buildMailer(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, m *metrics.InquiryMetrics) (*notify.Mailer, error) {
	var sender notify.EmailSender
	switch cfg.EmailProvider {
	case "sendgrid":
		sg := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.FromEmail,
			FromName:  cfg.FromName,
		}, logger)
		if sg == nil {
			return nil, fmt.Errorf("bootstrap: EMAIL_PROVIDER=sendgrid but SENDGRID_API_KEY is not set")
		}
		sender = sg
	case "ses":
		awsCfg, err := mainconfig.LoadAWSConfig(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: load AWS config for SES: %w", err)
		}
		sender = notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.FromEmail,
			FromName:  cfg.FromName,
		}, logger)
	case "":
		logger.Warn("EMAIL_PROVIDER not set; emails are logged, not sent")
		sender = notify.NewStubEmailSender(logger)
	default:
		return nil, fmt.Errorf("bootstrap: unknown EMAIL_PROVIDER %q", cfg.EmailProvider)
	}

	provider := cfg.EmailProvider
	if provider == "" {
		provider = "stub"
	}

	return notify.NewMailer(sender, notify.MailerConfig{
		Provider:   provider,
		AdminEmail: cfg.AdminEmail,
		SiteName:   cfg.FromName,
		Timeout:    cfg.SendTimeout,
	}, logger, m), nil
}
