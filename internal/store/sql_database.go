package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/keylock/internal/logger"
	"github.com/MKhiriev/keylock/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}

	db.logger.Debug().Int("applied", applied).Str("func", "DB.Migrate").Msg("history schema is up to date")
	return nil
}
