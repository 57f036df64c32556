package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/cloudsitefy/inquiry-service/internal/inquiry"
	"github.com/cloudsitefy/inquiry-service/internal/observability/metrics"
	"github.com/cloudsitefy/inquiry-service/pkg/logging"
)

// Mailer renders and dispatches the three inquiry emails: the admin
// notification, the customer acknowledgment, and free-form admin replies.
// All user-supplied fields pass through html/template escaping.
type Mailer struct {
	sender     EmailSender
	provider   string
	adminEmail string
	siteName   string
	timeout    time.Duration
	logger     *logging.Logger
	metrics    *metrics.InquiryMetrics
}

// MailerConfig holds Mailer construction parameters.
type MailerConfig struct {
	Provider   string // metric label: "sendgrid", "ses", "stub"
	AdminEmail string
	SiteName   string
	Timeout    time.Duration
}

// NewMailer creates a mailer over the given sender. Returns nil when sender
// is nil so callers can treat a disabled mailer uniformly.
func NewMailer(sender EmailSender, cfg MailerConfig, logger *logging.Logger, m *metrics.InquiryMetrics) *Mailer {
	if sender == nil {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.SiteName == "" {
		cfg.SiteName = "CloudSitefy"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Mailer{
		sender:     sender,
		provider:   cfg.Provider,
		adminEmail: cfg.AdminEmail,
		siteName:   cfg.SiteName,
		timeout:    cfg.Timeout,
		logger:     logger,
		metrics:    m,
	}
}

var adminTemplate = template.Must(template.New("admin").Parse(`<h2>A new inquiry has been received</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Company:</strong> {{if .Company}}{{.Company}}{{else}}Not provided{{end}}</p>
<p><strong>Service of interest:</strong> {{if .Service}}{{.Service}}{{else}}Not selected{{end}}</p>
<p><strong>Message:</strong></p>
<p>{{.MessageHTML}}</p>
<hr>
<p><small>Submitted at: {{.Timestamp}}</small></p>
<p><small>IP address: {{.IP}}</small></p>
<p><small>User agent: {{.UserAgent}}</small></p>`))

var customerTemplate = template.Must(template.New("customer").Parse(`<h2>Hello, {{.Name}}!</h2>
<p>Thank you for contacting {{.SiteName}}.</p>
<p>We have received your inquiry:</p>
<hr>
<p><strong>Your message:</strong></p>
<p>{{.MessageHTML}}</p>
<hr>
<p>Our team will review it and get back to you shortly.</p>
<p>If you have any further questions, feel free to reach out at any time.</p>
<br>
<p>Best regards,</p>
<p><strong>The {{.SiteName}} Team</strong></p>`))

var replyTemplate = template.Must(template.New("reply").Parse(`<div style="font-family: sans-serif; max-width: 600px;">
<p>{{.MessageHTML}}</p>
<br>
<p style="color: #6b7280; font-size: 12px;">— {{.SiteName}}</p>
</div>`))

// NotifyAdmin sends the internal notification for a new inquiry.
func (m *Mailer) NotifyAdmin(ctx context.Context, inq *inquiry.Inquiry) error {
	if m.adminEmail == "" {
		return fmt.Errorf("notify: admin recipient not configured")
	}

	html, err := render(adminTemplate, map[string]any{
		"Name":        inq.Name,
		"Email":       inq.Email,
		"Phone":       inq.Phone,
		"Company":     inq.Company,
		"Service":     inq.Service,
		"MessageHTML": nl2br(inq.Message),
		"Timestamp":   inq.Timestamp,
		"IP":          inq.IP,
		"UserAgent":   inq.UserAgent,
	})
	if err != nil {
		return err
	}

	return m.send(ctx, EmailMessage{
		To:      m.adminEmail,
		Subject: fmt.Sprintf("[%s] New inquiry received - %s", m.siteName, inq.Name),
		Body:    fmt.Sprintf("New inquiry from %s (%s, %s):\n\n%s", inq.Name, inq.Email, inq.Phone, inq.Message),
		HTML:    html,
	})
}

// NotifyCustomer sends the acknowledgment back to the submitter.
func (m *Mailer) NotifyCustomer(ctx context.Context, inq *inquiry.Inquiry) error {
	html, err := render(customerTemplate, map[string]any{
		"Name":        inq.Name,
		"SiteName":    m.siteName,
		"MessageHTML": nl2br(inq.Message),
	})
	if err != nil {
		return err
	}

	return m.send(ctx, EmailMessage{
		To:      inq.Email,
		ToName:  inq.Name,
		Subject: fmt.Sprintf("[%s] Your inquiry has been received", m.siteName),
		Body:    fmt.Sprintf("Hello %s,\n\nThank you for contacting %s. We have received your inquiry and will get back to you shortly.\n\nYour message:\n%s", inq.Name, m.siteName, inq.Message),
		HTML:    html,
	})
}

// SendReply sends a free-form admin-authored message. Unlike the two
// automatic notifications, failures here are surfaced to the caller.
func (m *Mailer) SendReply(ctx context.Context, to, subject, message string) error {
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("notify: reply recipient required")
	}

	html, err := render(replyTemplate, map[string]any{
		"MessageHTML": nl2br(message),
		"SiteName":    m.siteName,
	})
	if err != nil {
		return err
	}

	if err := m.send(ctx, EmailMessage{
		To:      to,
		Subject: subject,
		Body:    message,
		HTML:    html,
	}); err != nil {
		m.metrics.ObserveEmail("reply", "error")
		return err
	}
	m.metrics.ObserveEmail("reply", "sent")
	return nil
}

func (m *Mailer) send(ctx context.Context, msg EmailMessage) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	start := time.Now()
	err := m.sender.Send(ctx, msg)
	m.metrics.ObserveSendLatency(m.provider, time.Since(start).Seconds())
	return err
}

func render(tmpl *template.Template, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("notify: template render failed: %w", err)
	}
	return buf.String(), nil
}

// nl2br escapes user text and turns newlines into <br> tags so messages keep
// their line breaks in HTML bodies.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
