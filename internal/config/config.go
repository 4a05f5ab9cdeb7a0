// ABOUTME: Configuration loader for the wayfarer CLI
// ABOUTME: Loads settings from an optional .env file and environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Backend API
	APIURL         string
	TimeoutSeconds int // per-request timeout, default 30

	// Transport
	AllProxy string // ssh+socks5:// or socks5:// proxy for reaching the backend

	// OAuth
	OAuthIDToken string // pre-acquired provider identity token for --provider logins
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first; values already present in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:         ensureScheme(getEnv("WAYFARER_API_URL", "http://localhost:8000")),
		TimeoutSeconds: getEnvInt("WAYFARER_TIMEOUT_SECONDS", 30),
		AllProxy:       os.Getenv("WAYFARER_ALL_PROXY"),
		OAuthIDToken:   os.Getenv("WAYFARER_OAUTH_TOKEN"),
	}

	if cfg.TimeoutSeconds < 1 || cfg.TimeoutSeconds > 600 {
		return nil, fmt.Errorf("WAYFARER_TIMEOUT_SECONDS must be between 1 and 600, got %d", cfg.TimeoutSeconds)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// ensureScheme adds https:// prefix if the URL has no scheme
func ensureScheme(url string) string {
	if url == "" {
		return url
	}
	if !strings.Contains(url, "://") {
		return "https://" + url
	}
	return url
}
