package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// defaultQueries seed a harvest run when SEARCH_QUERIES is unset. They
// target Dutch e-commerce companies, which is the product's home market.
var defaultQueries = []string{
	"e-commerce manager Netherlands",
	"logistics manager Netherlands webshop",
	"marketing manager online retail Netherlands",
	"e-commerce bedrijf Nederland contact",
	"webshop Nederland team",
}

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL      string
	JWTSecret        string
	Port             string
	TokenTTL         time.Duration
	RateLimitHarvest RateLimitConfig

	SearchQueries    []string
	MaxCompanies     int
	PolitenessDelay  time.Duration
	FetchTimeout     time.Duration
	TeamFetchTimeout time.Duration
	PhoneRegion      string

	// Optional Google Custom Search credentials. When both are set the
	// API backend is used instead of scraping the results page.
	GoogleAPIKey string
	GoogleCSEID  string
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret"),
		Port:             getEnv("PORT", "8080"),
		TokenTTL:         parseDuration(getEnv("JWT_TTL", "24h"), 24*time.Hour),
		SearchQueries:    parseQueries(os.Getenv("SEARCH_QUERIES")),
		PolitenessDelay:  parseDuration(getEnv("POLITENESS_DELAY", "1s"), time.Second),
		FetchTimeout:     parseDuration(getEnv("FETCH_TIMEOUT", "30s"), 30*time.Second),
		TeamFetchTimeout: parseDuration(getEnv("TEAM_FETCH_TIMEOUT", "20s"), 20*time.Second),
		PhoneRegion:      getEnv("PHONE_REGION", "NL"),
		MaxCompanies:     parseNonNegativeInt(getEnv("MAX_COMPANIES", "50"), 50),
		GoogleAPIKey:     os.Getenv("GOOGLE_API_KEY"),
		GoogleCSEID:      os.Getenv("GOOGLE_CSE_ID"),
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_HARVEST", "5/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_HARVEST value: %w", err)
	}
	cfg.RateLimitHarvest = rl

	return cfg, nil
}

// CSEConfigured reports whether both Custom Search credentials are present.
func (c *Config) CSEConfigured() bool {
	return c.GoogleAPIKey != "" && c.GoogleCSEID != ""
}

func parseQueries(value string) []string {
	if strings.TrimSpace(value) == "" {
		return append([]string(nil), defaultQueries...)
	}
	var queries []string
	for _, part := range strings.Split(value, ";") {
		if q := strings.TrimSpace(part); q != "" {
			queries = append(queries, q)
		}
	}
	if len(queries) == 0 {
		return append([]string(nil), defaultQueries...)
	}
	return queries
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return fallback
	}
	return d
}

func parseNonNegativeInt(input string, fallback int) int {
	value, err := strconv.Atoi(input)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
