package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	MigrationsDir string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string
	JWTTTL    time.Duration

	CORSOrigins []string

	// Recommendation service
	AIServiceURL     string
	AIServiceTimeout time.Duration

	// Recipe images
	S3Bucket  string
	AWSRegion string

	RateLimitWindow   time.Duration
	RateLimitRequests int

	LogLevel string

	// FavoritesEmptyAs404 keeps the legacy 404 for users without favorites.
	FavoritesEmptyAs404 bool
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	switch env {
	case CI:
		if err := loadCIConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load CI configuration: %w", err)
		}
	case Development, Test:
		if err := loadDevConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load development configuration: %w", err)
		}
	case Production:
		if err := loadProdConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load production configuration: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig loads configuration for CI using environment variables only
func loadCIConfig(cfg *Config) error {
	if err := loadFromEnv(cfg, os.Getenv); err != nil {
		return err
	}

	// CI secrets come in under TEST_ names
	cfg.DBPassword = firstNonEmpty(os.Getenv("TEST_DB_PASSWORD"), cfg.DBPassword)
	if cfg.DBPassword == "" && cfg.DBDriver == "postgres" {
		return fmt.Errorf("TEST_DB_PASSWORD environment variable is required in CI environment")
	}
	cfg.JWTSecret = firstNonEmpty(os.Getenv("TEST_JWT_SECRET"), os.Getenv("JWT_SECRET"))
	cfg.RedisPassword = firstNonEmpty(os.Getenv("TEST_REDIS_PASSWORD"), cfg.RedisPassword)
	cfg.RedisURL = firstNonEmpty(os.Getenv("TEST_REDIS_URL"), cfg.RedisURL)

	return nil
}

// loadDevConfig reads an optional .env file, then environment variables.
// Docker secrets, when mounted, override the sensitive values.
func loadDevConfig(cfg *Config) error {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	// A missing .env is fine; the process environment still applies.
	_ = godotenv.Load(envFile)

	if err := loadFromEnv(cfg, os.Getenv); err != nil {
		return err
	}

	cfg.DBUser = firstNonEmpty(readSecret("db_user"), cfg.DBUser)
	cfg.DBPassword = firstNonEmpty(readSecret("db_password"), cfg.DBPassword)
	cfg.JWTSecret = firstNonEmpty(readSecret("jwt_secret"), cfg.JWTSecret)
	cfg.RedisPassword = firstNonEmpty(readSecret("redis_password"), cfg.RedisPassword)

	return nil
}

// loadProdConfig loads configuration for production, preferring Docker secrets
func loadProdConfig(cfg *Config) error {
	lookup := func(key string) string {
		if v := readSecret(strings.ToLower(key)); v != "" {
			return v
		}
		return os.Getenv(key)
	}
	return loadFromEnv(cfg, lookup)
}

func loadFromEnv(cfg *Config, get func(string) string) error {
	var err error

	cfg.ServerPort = withDefault(get("SERVER_PORT"), "5000")
	cfg.ServerHost = withDefault(get("SERVER_HOST"), "0.0.0.0")

	cfg.DBDriver = strings.ToLower(withDefault(get("DATABASE_DRIVER"), "postgres"))
	cfg.DBHost = withDefault(get("DB_HOST"), "localhost")
	cfg.DBPort = withDefault(get("DB_PORT"), "5432")
	cfg.DBUser = get("DB_USER")
	cfg.DBPassword = get("DB_PASSWORD")
	cfg.DBName = withDefault(get("DB_NAME"), "cookmate")
	cfg.DBSSLMode = withDefault(get("DB_SSL_MODE"), "disable")
	cfg.SQLitePath = withDefault(get("SQLITE_PATH"), "cookmate.db")
	cfg.MigrationsDir = withDefault(get("MIGRATIONS_DIR"), "migrations")

	cfg.RedisHost = get("REDIS_HOST")
	cfg.RedisPort = withDefault(get("REDIS_PORT"), "6379")
	cfg.RedisPassword = get("REDIS_PASSWORD")
	cfg.RedisURL = get("REDIS_URL")
	if cfg.RedisDB, err = intOrDefault(get("REDIS_DB"), 0); err != nil {
		return fmt.Errorf("REDIS_DB: %w", err)
	}

	cfg.JWTSecret = get("JWT_SECRET")
	if cfg.JWTTTL, err = durationOrDefault(get("JWT_TTL"), 500*time.Hour); err != nil {
		return fmt.Errorf("JWT_TTL: %w", err)
	}

	cfg.CORSOrigins = splitList(withDefault(get("CORS_ORIGINS"), "http://localhost:5173"))

	cfg.AIServiceURL = withDefault(get("AI_SERVICE_URL"), "http://localhost:8000")
	if cfg.AIServiceTimeout, err = durationOrDefault(get("AI_SERVICE_TIMEOUT"), 15*time.Second); err != nil {
		return fmt.Errorf("AI_SERVICE_TIMEOUT: %w", err)
	}

	cfg.S3Bucket = get("S3_BUCKET_NAME")
	cfg.AWSRegion = withDefault(get("AWS_REGION"), "us-east-1")

	if cfg.RateLimitWindow, err = durationOrDefault(get("RATE_LIMIT_WINDOW"), time.Minute); err != nil {
		return fmt.Errorf("RATE_LIMIT_WINDOW: %w", err)
	}
	if cfg.RateLimitRequests, err = intOrDefault(get("RATE_LIMIT_REQUESTS"), 60); err != nil {
		return fmt.Errorf("RATE_LIMIT_REQUESTS: %w", err)
	}

	cfg.LogLevel = withDefault(get("LOG_LEVEL"), "info")

	if v := get("FAVORITES_EMPTY_AS_404"); v != "" {
		if cfg.FavoritesEmptyAs404, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("FAVORITES_EMPTY_AS_404: %w", err)
		}
	}

	return nil
}

// DSN returns the lib/pq connection string for the configured database
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Addr is the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// RedisEnabled reports whether a Redis endpoint was configured
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func intOrDefault(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

func durationOrDefault(v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	return time.ParseDuration(v)
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
