package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the storefront
type Config struct {
	Environment string
	Port        string

	// Hosted data backend (PostgREST-style REST interface)
	BackendURL    string
	BackendAPIKey string

	// File storage (S3 protocol)
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StoragePublicURL string

	// Guest session signing
	SessionSecret string
	SessionMaxAge int

	// Rate Limiting Configuration
	RateLimitRequests int
	RateLimitWindow   int

	// Request size cap; leaves room for one comment video upload
	MaxRequestSize int64
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),

		BackendURL:    getEnv("BACKEND_URL", ""),
		BackendAPIKey: getEnv("BACKEND_API_KEY", ""),

		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", ""),
		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY", ""),
		StoragePublicURL: getEnv("STORAGE_PUBLIC_URL", ""),

		SessionSecret: getEnv("SESSION_SECRET", "videopecas-dev-session-secret"),
		SessionMaxAge: getEnvAsInt("SESSION_MAX_AGE", 24*60*60), // 24 hours in seconds

		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getEnvAsInt("RATE_LIMIT_WINDOW", 60),

		MaxRequestSize: getEnvAsInt64("MAX_REQUEST_SIZE", 110*1024*1024),
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate validates the configuration. The storefront refuses to start
// half-configured: a missing backend endpoint or key is fatal, not a warning.
func (c *Config) Validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("backend URL is required")
	}
	if !strings.HasPrefix(c.BackendURL, "http://") && !strings.HasPrefix(c.BackendURL, "https://") {
		return fmt.Errorf("backend URL must be an http(s) endpoint: %s", c.BackendURL)
	}
	if c.BackendAPIKey == "" {
		return fmt.Errorf("backend API key is required")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("session secret is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Environment] {
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}

	return nil
}

// UploadsEnabled reports whether the file storage collaborator is configured.
// The comment video attachment control is hidden when it is not.
func (c *Config) UploadsEnabled() bool {
	return c.StorageEndpoint != "" && c.StorageAccessKey != "" && c.StorageSecretKey != ""
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %s, BackendURL: %s}", c.Environment, c.Port, c.BackendURL)
}
