// internal/common/database/postgres.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"legal-workers/internal/common/config"

	_ "github.com/lib/pq"
)

// generationsSchema backs the document history kept by the archive package.
const generationsSchema = `
CREATE TABLE IF NOT EXISTS document_generations (
	id            BIGSERIAL PRIMARY KEY,
	document_id   UUID        NOT NULL UNIQUE,
	document_type TEXT        NOT NULL,
	title         TEXT        NOT NULL,
	owner_name    TEXT        NOT NULL DEFAULT '',
	owner_email   TEXT        NOT NULL DEFAULT '',
	language      VARCHAR(2)  NOT NULL,
	citations     TEXT[]      NOT NULL DEFAULT '{}',
	formats       TEXT[]      NOT NULL DEFAULT '{}',
	app_version   TEXT        NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_document_generations_owner
	ON document_generations (owner_email, created_at DESC);
`

type PostgresClient struct {
	DB *sql.DB
}

func NewPostgres(cfg config.PostgresConfig) (*PostgresClient, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &PostgresClient{DB: db}, nil
}

func (c *PostgresClient) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Migrate creates the tables the workers write to when they are missing.
func (c *PostgresClient) Migrate(ctx context.Context) error {
	if _, err := c.DB.ExecContext(ctx, generationsSchema); err != nil {
		return fmt.Errorf("migrate document_generations: %w", err)
	}
	return nil
}

func (c *PostgresClient) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
