package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration values.
type Config struct {
	ServerHost          string
	ServerPort          string
	ServerMode          string
	LogLevel            string
	JWTSecret           string
	CORSOrigins         []string
	MaxConcurrentFetch  int
	FetchTimeout        time.Duration
	UserAgent           string
	RespectRobots       bool
	ShutdownGracePeriod time.Duration
}

// Load reads configuration exclusively from environment variables (optionally .env file).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	// Server
	cfg.ServerHost = getEnv("HOST", "0.0.0.0")
	cfg.ServerPort = getEnv("PORT", "8080")
	cfg.ServerMode = getEnv("GIN_MODE", "debug")

	// Logging & Auth. The JWT secret is optional: when unset the API runs open.
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")

	// CORS
	origins := getEnv("CORS_ORIGINS", "")
	if origins != "" {
		cfg.CORSOrigins = strings.Split(origins, ",")
	}

	// Fetching
	maxFetch := getEnv("MAX_CONCURRENT_FETCHES", "5")
	mf, err := strconv.Atoi(maxFetch)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_CONCURRENT_FETCHES: %w", err)
	}
	cfg.MaxConcurrentFetch = mf

	timeoutSec := getEnv("FETCH_TIMEOUT_SECONDS", "30")
	ts, err := strconv.Atoi(timeoutSec)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT_SECONDS: %w", err)
	}
	cfg.FetchTimeout = time.Duration(ts) * time.Second

	graceSec := getEnv("SHUTDOWN_GRACE_SECONDS", "10")
	gs, err := strconv.Atoi(graceSec)
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_GRACE_SECONDS: %w", err)
	}
	cfg.ShutdownGracePeriod = time.Duration(gs) * time.Second

	// User agent: a named browser identity or a literal header value.
	cfg.UserAgent = getEnv("USER_AGENT", "desktop_chrome")
	cfg.RespectRobots = getEnv("RESPECT_ROBOTS", "false") == "true"

	return cfg, nil
}

// getEnv returns env var or default.
func getEnv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}
