package kv

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Postgres keeps every key in a single client_state table, one row per key.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Open connects, pings, and applies pending migrations.
func Open(dsn string, logger *log.Logger) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := runMigrations(db, logger); err != nil {
		db.Close()
		return nil, err
	}
	return NewPostgres(db), nil
}

func runMigrations(db *sql.DB, logger *log.Logger) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Printf("kv migrations: at version %d (dirty)", version)
	} else {
		logger.Printf("kv migrations: at version %d", version)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, key string) (string, error) {
	const query = `SELECT value FROM client_state WHERE key = $1`

	var value string
	err := p.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("select client_state: %w", err)
	}
	return value, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	const upsert = `
INSERT INTO client_state (key, value, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value, updated_at = NOW()
`
	if _, err := p.db.ExecContext(ctx, upsert, key, value); err != nil {
		return fmt.Errorf("upsert client_state: %w", err)
	}
	return nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
