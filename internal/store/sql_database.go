package store

import (
	"database/sql"

	"github.com/sammirack/admin-sync/internal/logger"
	"github.com/sammirack/admin-sync/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
