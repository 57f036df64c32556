package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	PublicBaseURL string
	LogLevel      string

	// Admin API access. Empty disables the admin surface entirely; there is
	// deliberately no built-in fallback token.
	AdminToken string

	// Inquiry store
	UseMemoryStore bool
	InquiriesTable string

	// Email dispatch
	EmailProvider string // "sendgrid", "ses", or "" (stub)
	AdminEmail    string
	FromEmail     string
	FromName      string
	SendTimeout   time.Duration

	// SendGrid
	SendGridAPIKey string

	// AWS (SES + DynamoDB)
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string

	// Public submission endpoint rate limiting (requests/sec per IP)
	SubmitRateLimit float64
	SubmitRateBurst int

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		AdminToken: getEnv("ADMIN_TOKEN", ""),

		UseMemoryStore: getEnvAsBool("USE_MEMORY_STORE", false),
		InquiriesTable: getEnv("INQUIRIES_TABLE", "inquiries"),

		EmailProvider: strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", ""))),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		FromEmail:     getEnv("FROM_EMAIL", "noreply@cloudsitefy.com"),
		FromName:      getEnv("FROM_NAME", "CloudSitefy"),
		SendTimeout:   getEnvAsDuration("EMAIL_SEND_TIMEOUT", 10*time.Second),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),

		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),

		SubmitRateLimit: getEnvAsFloat("SUBMIT_RATE_LIMIT", 1),
		SubmitRateBurst: getEnvAsInt("SUBMIT_RATE_BURST", 5),

		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
