package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cloudsitefy/inquiry-service/internal/http/handlers"
	httpmiddleware "github.com/cloudsitefy/inquiry-service/internal/http/middleware"
	"github.com/cloudsitefy/inquiry-service/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	SubmitHandler  *handlers.SubmitHandler
	AdminInquiries *handlers.AdminInquiriesHandler
	ReplyHandler   *handlers.ReplyHandler
	HealthHandler  *handlers.HealthHandler
	MetricsHandler http.Handler

	// AdminToken guards the triage endpoints. Empty keeps the routes mounted
	// but every request is rejected with 401.
	AdminToken string

	CORSAllowedOrigins []string

	// Submission endpoint rate limiting; zero disables it.
	SubmitRateLimit float64
	SubmitRateBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(httpmiddleware.CORS(origins))
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error":"Method not allowed"}`))
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not found"}`))
	})

	// Public endpoints
	r.Group(func(public chi.Router) {
		if cfg.HealthHandler != nil {
			public.Get("/health", cfg.HealthHandler.Health)
		}
		if cfg.MetricsHandler != nil {
			public.Handle("/metrics", cfg.MetricsHandler)
		}
		if cfg.SubmitHandler != nil {
			submit := public.With()
			if cfg.SubmitRateLimit > 0 {
				submit = public.With(httpmiddleware.RateLimit(cfg.SubmitRateLimit, cfg.SubmitRateBurst))
			}
			submit.Post("/api", cfg.SubmitHandler.Submit)
		}
	})

	// Admin endpoints behind the shared bearer token
	r.Group(func(admin chi.Router) {
		admin.Use(httpmiddleware.AdminToken(cfg.AdminToken))
		if cfg.AdminInquiries != nil {
			admin.Get("/adminInquiries", cfg.AdminInquiries.List)
			admin.Put("/adminInquiries", cfg.AdminInquiries.Update)
			admin.Delete("/adminInquiries", cfg.AdminInquiries.Delete)
		}
		if cfg.ReplyHandler != nil {
			admin.Post("/sendReplyEmail", cfg.ReplyHandler.SendReply)
		}
	})

	return r
}
