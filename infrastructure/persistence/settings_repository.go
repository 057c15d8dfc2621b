package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bunny-video/domain/repository"
	"bunny-video/infrastructure/logger"
)

// EnsureSettingsSchema creates the key/value settings table if not exists
func EnsureSettingsSchema(db *sql.DB) error {
	ddl := `CREATE TABLE IF NOT EXISTS bunny_settings (
        name TEXT PRIMARY KEY,
        value TEXT NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL
    )`
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create bunny_settings table: %w", err)
	}
	return nil
}

// SettingsRepository stores settings in PostgreSQL
type SettingsRepository struct {
	db       *sql.DB
	defaults map[string]string
}

func NewSettingsRepository(db *sql.DB, defaults map[string]string) repository.ISettings {
	return &SettingsRepository{db: db, defaults: defaults}
}

func (r *SettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM bunny_settings WHERE name=$1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return r.defaults[key], nil
	}
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"error": err, "key": key}).Error("psql: read setting failed")
		return "", err
	}
	return value, nil
}

func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	q := `INSERT INTO bunny_settings(name, value, updated_at) VALUES ($1,$2,$3)
          ON CONFLICT (name) DO UPDATE SET value=EXCLUDED.value, updated_at=EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, q, key, value, time.Now().UTC())
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"error": err, "key": key}).Error("psql: write setting failed")
	}
	return err
}
