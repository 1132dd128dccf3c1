package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

var (
	ErrMissingJWTSecret   = errors.New("JWT_SECRET environment variable must be set in production environments")
	ErrShortJWTSecret     = errors.New("JWT_SECRET must be at least 32 bytes")
	ErrUnknownStoreDriver = errors.New("STORE_DRIVER must be postgres or mongo")
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	JWT      JWTConfig
	Security SecurityConfig
	Advice   AdviceConfig
	Qdrant   QdrantConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type StoreConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type JWTConfig struct {
	AccessTokenDuration time.Duration
	Secret              []byte
	Issuer              string
}

type SecurityConfig struct {
	BCryptCost         int
	RateLimitPerSecond int
	RateLimitBurst     int
	PasswordMinLength  int
}

type AdviceConfig struct {
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	ChatModel         string
	EmbeddingModel    string
	Temperature       float32
	MaxExpenses       int
	LookupConcurrency int
	RequestTimeout    time.Duration
}

type QdrantConfig struct {
	Host       string
	Port       int
	APIKey     string
	UseTLS     bool
	Collection string
	ContentKey string
}

type LogConfig struct {
	Level string
}

// Load reads the configuration from the environment. It fails only on
// settings the process cannot run without.
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres)),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "tracker_user"),
			Password:        getEnv("DB_PASSWORD", "tracker_password"),
			Name:            getEnv("DB_NAME", "savings_tracker"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGO_DATABASE", "savings_tracker"),
			ConnectTimeout: getDurationEnv("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		},
		Security: SecurityConfig{
			BCryptCost:         getIntEnv("BCRYPT_COST", 12),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
			PasswordMinLength:  getIntEnv("PASSWORD_MIN_LENGTH", 8),
		},
		JWT: JWTConfig{
			AccessTokenDuration: getDurationEnv("JWT_ACCESS_TOKEN_DURATION", 30*time.Minute),
			Issuer:              getEnv("JWT_ISSUER", "savings-tracker"),
		},
		Advice: AdviceConfig{
			OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
			OpenAIBaseURL:     os.Getenv("OPENAI_BASE_URL"),
			ChatModel:         getEnv("OPENAI_CHAT_MODEL", "gpt-4o"),
			EmbeddingModel:    getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-ada-002"),
			Temperature:       getFloat32Env("ADVICE_TEMPERATURE", 0.7),
			MaxExpenses:       getIntEnv("ADVICE_MAX_EXPENSES", 1000),
			LookupConcurrency: getIntEnv("ADVICE_LOOKUP_CONCURRENCY", 4),
			RequestTimeout:    getDurationEnv("ADVICE_REQUEST_TIMEOUT", 45*time.Second),
		},
		Qdrant: QdrantConfig{
			Host:       getEnv("QDRANT_HOST", "localhost"),
			Port:       getIntEnv("QDRANT_PORT", 6334),
			APIKey:     os.Getenv("QDRANT_API_KEY"),
			UseTLS:     getBoolEnv("QDRANT_USE_TLS", false),
			Collection: getEnv("QDRANT_COLLECTION", "pakistan_products"),
			ContentKey: getEnv("QDRANT_CONTENT_KEY", "page_content"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if config.Store.Driver != StoreDriverPostgres && config.Store.Driver != StoreDriverMongo {
		return nil, fmt.Errorf("%w: got %q", ErrUnknownStoreDriver, config.Store.Driver)
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	secret, err := config.loadJWTSecret()
	if err != nil {
		return nil, err
	}
	config.JWT.Secret = secret

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// MigrationURL returns the postgres:// form of the connection settings
func (c *DatabaseConfig) MigrationURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// AdviceEnabled reports whether the model provider credential is present
func (c *AdviceConfig) AdviceEnabled() bool {
	return c.OpenAIAPIKey != ""
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getFloat32Env(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadJWTSecret loads the HMAC signing secret.
// Priority order:
// 1. JWT_SECRET, raw or base64 prefixed with "base64:" (all environments)
// 2. production without JWT_SECRET fails
// 3. development/testing without JWT_SECRET gets a random per-process secret
func (c *Config) loadJWTSecret() ([]byte, error) {
	raw := os.Getenv("JWT_SECRET")

	if raw != "" {
		secret := []byte(raw)
		if encoded, ok := strings.CutPrefix(raw, "base64:"); ok {
			decoded, err := base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				return nil, fmt.Errorf("failed to decode JWT_SECRET: %w", err)
			}
			secret = decoded
		}
		if len(secret) < 32 {
			return nil, ErrShortJWTSecret
		}
		return secret, nil
	}

	if c.IsProduction() {
		return nil, ErrMissingJWTSecret
	}

	slog.Warn("JWT_SECRET not set: generating a random secret, tokens will not survive restarts")
	return GenerateSecret()
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*'")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}

// GenerateSecret returns 32 random bytes suitable as an HS256 key
func GenerateSecret() ([]byte, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	return secret, nil
}
