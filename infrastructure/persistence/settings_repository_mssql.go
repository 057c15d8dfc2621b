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

// EnsureSettingsSchemaMSSQL creates the settings table on MSSQL if not exists
func EnsureSettingsSchemaMSSQL(db *sql.DB) error {
	ddl := `IF NOT EXISTS (SELECT * FROM sys.objects WHERE object_id = OBJECT_ID(N'dbo.bunny_settings') AND type in (N'U'))
BEGIN
    CREATE TABLE dbo.bunny_settings (
        name NVARCHAR(191) NOT NULL PRIMARY KEY,
        value NVARCHAR(MAX) NOT NULL,
        updated_at DATETIMEOFFSET NOT NULL
    );
END`
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create bunny_settings table (mssql): %w", err)
	}
	return nil
}

// SettingsRepositoryMSSQL stores settings in SQL Server
type SettingsRepositoryMSSQL struct {
	db       *sql.DB
	defaults map[string]string
}

func NewSettingsRepositoryMSSQL(db *sql.DB, defaults map[string]string) repository.ISettings {
	return &SettingsRepositoryMSSQL{db: db, defaults: defaults}
}

func (r *SettingsRepositoryMSSQL) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM dbo.bunny_settings WHERE name=@p1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return r.defaults[key], nil
	}
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"error": err, "key": key}).Error("mssql: read setting failed")
		return "", err
	}
	return value, nil
}

func (r *SettingsRepositoryMSSQL) Set(ctx context.Context, key, value string) error {
	q := `MERGE dbo.bunny_settings AS t
USING (SELECT @p1 AS name, @p2 AS value) AS s ON t.name = s.name
WHEN MATCHED THEN UPDATE SET value = s.value, updated_at = @p3
WHEN NOT MATCHED THEN INSERT (name, value, updated_at) VALUES (s.name, s.value, @p3);`
	_, err := r.db.ExecContext(ctx, q, key, value, time.Now().UTC())
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"error": err, "key": key}).Error("mssql: write setting failed")
	}
	return err
}
