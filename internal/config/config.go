package config

import (
	"fmt"
	"os"
	"strings"
)

// Config is resolved once at startup and injected into the components that
// need it. Required fields fail the boot; optional ones degrade features
// (no geolocation seeding, no welcome emails).
type Config struct {
	DatabaseURL string
	JWTSecret   string
	Port        string

	Ticketmaster struct {
		APIKey string
	}

	Google struct {
		APIKey string
	}

	Email struct {
		ResendAPIKey string
		FromAddress  string
		FromName     string
	}

	AllowedOrigins string
}

func Load() (*Config, error) {
	cfg := &Config{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.Ticketmaster.APIKey = os.Getenv("TICKETMASTER_API_KEY")

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if cfg.Ticketmaster.APIKey == "" {
		missing = append(missing, "TICKETMASTER_API_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	cfg.Google.APIKey = os.Getenv("GOOGLE_API_KEY")
	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = os.Getenv("EMAIL_FROM_ADDRESS")
	cfg.Email.FromName = os.Getenv("EMAIL_FROM_NAME")

	cfg.Port = os.Getenv("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.AllowedOrigins = os.Getenv("ALLOWED_ORIGINS")
	if cfg.AllowedOrigins == "" {
		cfg.AllowedOrigins = "http://localhost:5173"
	}

	return cfg, nil
}
