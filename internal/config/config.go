package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Database
	DatabaseURL string

	// Auth0
	Auth0Domain   string
	Auth0Audience string
	Auth0ClientID string

	// OAuth redirect target after external login
	OAuthRedirectURL string

	// Server
	Port         string
	CORSOrigins  []string
	CookieDomain string
	Env          string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		Auth0Domain:      getEnv("AUTH0_DOMAIN", ""),
		Auth0Audience:    getEnv("AUTH0_AUDIENCE", ""),
		Auth0ClientID:    getEnv("AUTH0_CLIENT_ID", ""),
		OAuthRedirectURL: getEnv("OAUTH_REDIRECT_URL", "http://localhost:5173/dashboard"),
		Port:             getEnv("PORT", "4000"),
		CORSOrigins:      strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ","),
		CookieDomain:     getEnv("COOKIE_DOMAIN", ""),
		Env:              getEnv("ENV", "development"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Auth0Domain == "" {
		return fmt.Errorf("AUTH0_DOMAIN is required")
	}
	if c.Auth0Audience == "" {
		return fmt.Errorf("AUTH0_AUDIENCE is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
