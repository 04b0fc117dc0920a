package config

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultAddr              = ":8080"
	defaultDatabasePath      = "interviewd.db"
	defaultModelBaseURL      = "https://api.openai.com/v1"
	defaultModelName         = "gpt-4o-mini"
	defaultMaxResponseTokens = 1024
	defaultModelTimeout      = time.Second * 45
)

// Config holds the service configuration, read from the environment
type Config struct {
	Addr              string
	DatabasePath      string
	ModelBaseURL      string
	ModelAPIKey       string
	ModelName         string
	MaxResponseTokens int
	ModelTimeout      time.Duration
}

// NewConfig creates a new Config from environment variables, falling back
// to defaults for everything but the API key
func NewConfig() *Config {
	return &Config{
		Addr:              getenv("INTERVIEWD_ADDR", defaultAddr),
		DatabasePath:      getenv("INTERVIEWD_DB_PATH", defaultDatabasePath),
		ModelBaseURL:      getenv("MODEL_BASE_URL", defaultModelBaseURL),
		ModelAPIKey:       os.Getenv("MODEL_API_KEY"),
		ModelName:         getenv("MODEL_NAME", defaultModelName),
		MaxResponseTokens: getenvInt("MODEL_MAX_RESPONSE_TOKENS", defaultMaxResponseTokens),
		ModelTimeout:      getenvDuration("MODEL_TIMEOUT", defaultModelTimeout),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
