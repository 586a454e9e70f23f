package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the server
type Config struct {
	AppEnv string
	Port   string

	// Postgres
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string

	// Cache
	CacheBackend  string // "memory" or "redis"
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Live feed
	LiveFeedBaseURL string
	LiveFeedAPIKey  string
	LiveFeedTimeout time.Duration
	LiveFeedRPS     float64
	LiveFeedBurst   int

	// Auth
	JWTSecret string

	// Workers
	AirportCacheRefresh time.Duration

	// Airport reference data
	AirportSourceURL string

	// Rate limiting for inbound API calls
	APIRateLimitRPS   float64
	APIRateLimitBurst int
}

// Load reads configuration from the environment. A .env file is honoured
// when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),

		PGHost:     getEnv("PG_HOST", "localhost"),
		PGPort:     getEnv("PG_PORT", "5432"),
		PGUser:     getEnv("PG_USER", "postgres"),
		PGPassword: getEnv("PG_PASSWORD", ""),
		PGDatabase: getEnv("PG_DB", "wayfarer"),

		CacheBackend:  strings.ToLower(getEnv("CACHE_BACKEND", "memory")),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		LiveFeedBaseURL: getEnv("LIVE_FEED_BASE_URL", "https://api.aviationstack.com/v1"),
		LiveFeedAPIKey:  getEnv("LIVE_FEED_API_KEY", ""),
		LiveFeedTimeout: getEnvAsDuration("LIVE_FEED_TIMEOUT", 8*time.Second),
		LiveFeedRPS:     getEnvAsFloat("LIVE_FEED_RPS", 2),
		LiveFeedBurst:   getEnvAsInt("LIVE_FEED_BURST", 4),

		JWTSecret: getEnv("JWT_SECRET", ""),

		AirportCacheRefresh: getEnvAsDuration("AIRPORT_CACHE_REFRESH", 30*time.Minute),

		AirportSourceURL: getEnv("AIRPORT_SOURCE_URL", "https://raw.githubusercontent.com/mwgg/Airports/refs/heads/master/airports.json"),

		APIRateLimitRPS:   getEnvAsFloat("API_RATE_LIMIT_RPS", 5),
		APIRateLimitBurst: getEnvAsInt("API_RATE_LIMIT_BURST", 20),
	}
}

// PostgresDSN builds the connection string shared by sqlx and GORM.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

// RedisAddr returns host:port for the Redis client.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsDuration accepts Go duration strings ("8s") or plain seconds ("8").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
