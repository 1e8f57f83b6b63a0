// Package config loads service settings from an env file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported storage drivers.
const (
	DriverMemory   = "memory"
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config is the full service configuration.
type Config struct {
	App      AppConfig
	Store    StoreConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
	Ledger   LedgerConfig
}

type AppConfig struct {
	Host      string
	Port      string
	LogLevel  string
	LogFormat string
}

type StoreConfig struct {
	Driver   string
	BoltPath string
}

type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN returns the pgx connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DB)
}

type RedisConfig struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
	Key          string
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether events should be published.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// Enabled reports whether the API requires a bearer token.
func (c AuthConfig) Enabled() bool {
	return c.Secret != ""
}

type LedgerConfig struct {
	AutoArchive bool
}

// Load reads the env file at path (a missing file is ignored) and builds the
// configuration from the environment, falling back to defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		_ = godotenv.Load(path)
	}

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	var (
		cfg Config
		err error
	)

	// Application config
	cfg.App.Host = getEnv("APP_HOST", "localhost")
	cfg.App.Port = getEnv("APP_PORT", "8080")
	cfg.App.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.App.LogFormat = getEnv("APP_LOG_FORMAT", "json")

	// Storage config
	cfg.Store.Driver = strings.ToLower(getEnv("STORE_DRIVER", DriverBolt))
	cfg.Store.BoltPath = getEnv("BOLT_PATH", "data/cards.db")
	switch cfg.Store.Driver {
	case DriverMemory, DriverBolt, DriverPostgres, DriverRedis:
	default:
		return nil, fmt.Errorf("STORE_DRIVER: unsupported driver %q", cfg.Store.Driver)
	}

	// PostgreSQL config
	cfg.Postgres.Host = getEnv("POSTGRES_HOST", "localhost")
	cfg.Postgres.User = getEnv("POSTGRES_USER", "user")
	cfg.Postgres.Password = getEnv("POSTGRES_PASSWORD", "password")
	cfg.Postgres.DB = getEnv("POSTGRES_DB", "database")
	if cfg.Postgres.Port, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return nil, err
	}
	if cfg.Postgres.MaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return nil, err
	}
	if cfg.Postgres.MaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return nil, err
	}

	// Redis config
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.Key = getEnv("REDIS_KEY", "prepaid-cards")
	if cfg.Redis.Port, err = getInt("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getInt("REDIS_DB", "0"); err != nil {
		return nil, err
	}
	if cfg.Redis.PoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return nil, err
	}
	if cfg.Redis.MinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return nil, err
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.Kafka.Brokers = append(cfg.Kafka.Brokers, b)
		}
	}
	cfg.Kafka.Topic = getEnv("KAFKA_TOPIC", "card-ledger-events")

	// Auth config
	cfg.Auth.Secret = getEnv("AUTH_SECRET", "")
	ttl, err := getInt("AUTH_TOKEN_TTL_SECOND", "2592000")
	if err != nil {
		return nil, err
	}
	cfg.Auth.TokenTTL = time.Duration(ttl) * time.Second

	// Ledger policy
	if cfg.Ledger.AutoArchive, err = strconv.ParseBool(getEnv("LEDGER_AUTO_ARCHIVE", "false")); err != nil {
		return nil, fmt.Errorf("LEDGER_AUTO_ARCHIVE: %w", err)
	}

	return &cfg, nil
}
