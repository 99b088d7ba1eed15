package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// Migrator applies the embedded goose migrations.
type Migrator struct {
	db  *sql.DB
	log *slog.Logger
}

func NewMigrator(db *sql.DB, log *slog.Logger) (*Migrator, error) {
	if db == nil {
		return nil, fmt.Errorf("db: nil database handle")
	}
	if log == nil {
		log = slog.Default()
	}
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("db: configure goose: %w", err)
	}
	return &Migrator{db: db, log: log}, nil
}

// Up applies pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	m.log.Info("applying migrations")
	if err := goose.UpContext(ctx, m.db, migrationsDir); err != nil {
		return fmt.Errorf("db: apply migrations: %w", err)
	}
	m.log.Info("migrations applied")
	return nil
}

// Status prints applied and pending migrations.
func (m *Migrator) Status(ctx context.Context) error {
	if err := goose.StatusContext(ctx, m.db, migrationsDir); err != nil {
		return fmt.Errorf("db: migration status: %w", err)
	}
	return nil
}

// Down rolls back the latest migration, or down to target when it is positive.
func (m *Migrator) Down(ctx context.Context, target int64) error {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if target > 0 {
		m.log.Info("rolling back migrations", "target", target)
		if err := goose.DownToContext(ctx, m.db, migrationsDir, target); err != nil {
			return fmt.Errorf("db: rollback to version %d: %w", target, err)
		}
		return nil
	}

	m.log.Info("rolling back latest migration")
	if err := goose.DownContext(ctx, m.db, migrationsDir); err != nil {
		return fmt.Errorf("db: rollback latest migration: %w", err)
	}
	return nil
}
