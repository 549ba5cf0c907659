package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Rhaast00/vervappweb/internal/domain"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP        HTTPConfig
	Postgres    PostgresConfig
	Redis       RedisConfig
	Credentials CredentialsConfig
	AI          AIConfig
	Snapshot    SnapshotConfig
	Logging     LoggingConfig
}

type HTTPConfig struct {
	Addr string
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CredentialsConfig struct {
	MasterKey     string
	DefaultUserID string
}

type AIConfig struct {
	DefaultProvider     string
	BreakerThreshold    int
	BreakerResetTimeout time.Duration
	AnalysisCacheTTL    time.Duration
}

type SnapshotConfig struct {
	Enabled        bool
	Timeout        time.Duration
	MaxSampleChars int
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "vervapp"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "vervapp"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Credentials: CredentialsConfig{
			MasterKey:     getEnv("CREDENTIALS_MASTER_KEY", ""),
			DefaultUserID: getEnv("DEFAULT_USER_ID", "local"),
		},
		AI: AIConfig{
			DefaultProvider:     getEnv("AI_DEFAULT_PROVIDER", domain.ProviderOpenAI),
			BreakerThreshold:    getEnvInt("AI_BREAKER_THRESHOLD", 5),
			BreakerResetTimeout: time.Duration(getEnvInt("AI_BREAKER_RESET_SECONDS", 60)) * time.Second,
			AnalysisCacheTTL:    time.Duration(getEnvInt("ANALYSIS_CACHE_TTL_SECONDS", 1800)) * time.Second,
		},
		Snapshot: SnapshotConfig{
			Enabled:        getEnvBool("SNAPSHOT_ENABLED", true),
			Timeout:        time.Duration(getEnvInt("SNAPSHOT_TIMEOUT_SECONDS", 15)) * time.Second,
			MaxSampleChars: getEnvInt("SNAPSHOT_MAX_SAMPLE_CHARS", 2000),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Credentials.MasterKey == "" {
		return fmt.Errorf("CREDENTIALS_MASTER_KEY is required")
	}
	if !domain.ValidProvider(c.AI.DefaultProvider) {
		return fmt.Errorf("AI_DEFAULT_PROVIDER must be one of openai, anthropic, google")
	}
	if c.Postgres.Host == "" {
		return fmt.Errorf("POSTGRES_HOST is required")
	}
	if c.AI.BreakerThreshold <= 0 {
		return fmt.Errorf("AI_BREAKER_THRESHOLD must be positive")
	}
	return nil
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

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
