package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type PostgresService struct {
	db     *sql.DB
	logger *zap.Logger
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

func NewPostgresService(cfg PostgresConfig, logger *zap.Logger) (*PostgresService, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
	)

	return &PostgresService{
		db:     db,
		logger: logger,
	}, nil
}

func (ps *PostgresService) GetDB() *sql.DB {
	return ps.db
}

func (ps *PostgresService) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}

func (ps *PostgresService) Ping(ctx context.Context) error {
	return ps.db.PingContext(ctx)
}

// EnsureSchema creates the application tables when they are missing. Kept
// idempotent so repeated startups are safe.
func (ps *PostgresService) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS user_api_keys (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			provider TEXT NOT NULL,
			encrypted_key BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, provider)
		)`,
		`CREATE TABLE IF NOT EXISTS website_analyses (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			url TEXT NOT NULL,
			colors JSONB NOT NULL DEFAULT '[]',
			fonts JSONB NOT NULL DEFAULT '[]',
			layout JSONB,
			elements JSONB NOT NULL DEFAULT '[]',
			images JSONB,
			content_structure JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_website_analyses_user ON website_analyses (user_id, created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS website_redesigns (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			analysis_id UUID REFERENCES website_analyses(id) ON DELETE CASCADE,
			design_style TEXT NOT NULL,
			html TEXT NOT NULL,
			css TEXT NOT NULL,
			preview TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_website_redesigns_analysis ON website_redesigns (analysis_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := ps.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	ps.logger.Info("Database schema ensured")
	return nil
}
