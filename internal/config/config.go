package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Config holds the runtime configuration for the service, loaded from
// environment variables.
type Config struct {
	Stage          string
	Port           string
	DatabaseURL    string
	AllowedOrigins []string
	Square         SquareConfig
	Email          EmailConfig
}

// SquareConfig configures the Square integration. The access token and
// webhook signature key are intentionally not required at boot: an
// unconfigured Square integration disables sync and is reported as a
// configuration error at webhook time instead of preventing startup.
type SquareConfig struct {
	AccessToken         string
	APIURL              string
	LocationID          string
	WebhookSignatureKey string
	WebhookURL          string
	SyncEnabled         bool
	SyncInterval        time.Duration
	SyncLookahead       time.Duration
	SyncLookbehind      time.Duration
}

// EmailConfig configures the outbound owner notifications sent via Resend.
type EmailConfig struct {
	ResendAPIKey string
	FromEmail    string
	FromName     string
	OwnerEmail   string
}

// Configured reports whether the Square query API can be used.
func (c SquareConfig) Configured() bool {
	return c.AccessToken != ""
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Stage:       getEnv("STAGE", "development"),
		Port:        getEnv("API_PORT", "8000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Square: SquareConfig{
			AccessToken:         os.Getenv("SQUARE_ACCESS_TOKEN"),
			APIURL:              getEnv("SQUARE_API_URL", "https://connect.squareup.com"),
			LocationID:          os.Getenv("SQUARE_LOCATION_ID"),
			WebhookSignatureKey: os.Getenv("SQUARE_WEBHOOK_SIGNATURE_KEY"),
			WebhookURL:          os.Getenv("SQUARE_WEBHOOK_URL"),
		},
		Email: EmailConfig{
			ResendAPIKey: os.Getenv("RESEND_API_KEY"),
			FromEmail:    getEnv("EMAIL_FROM_ADDRESS", "bookings@bowenislandtattoo.com"),
			FromName:     getEnv("EMAIL_FROM_NAME", "Bowen Island Tattoo"),
			OwnerEmail:   os.Getenv("OWNER_NOTIFICATION_EMAIL"),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	syncEnabled, err := parseBool("SQUARE_SYNC_ENABLED", true)
	if err != nil {
		return nil, err
	}
	cfg.Square.SyncEnabled = syncEnabled

	intervalMinutes, err := parseInt("SQUARE_SYNC_INTERVAL_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	cfg.Square.SyncInterval = time.Duration(intervalMinutes) * time.Minute

	lookaheadDays, err := parseInt("SQUARE_SYNC_LOOKAHEAD_DAYS", 30)
	if err != nil {
		return nil, err
	}
	cfg.Square.SyncLookahead = time.Duration(lookaheadDays) * 24 * time.Hour

	lookbehindDays, err := parseInt("SQUARE_SYNC_LOOKBEHIND_DAYS", 1)
	if err != nil {
		return nil, err
	}
	cfg.Square.SyncLookbehind = time.Duration(lookbehindDays) * 24 * time.Hour

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Wrapf(err, "invalid boolean for %s: %q", key, raw)
	}
	return value, nil
}

func parseInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer for %s: %q", key, raw)
	}
	return value, nil
}
