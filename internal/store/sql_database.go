package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/dfcastellanos/clientes-api/internal/logger"
	"github.com/dfcastellanos/clientes-api/migrations"
)

// DB wraps the shared *sql.DB handle together with the driver name, which
// selects the goose dialect and the squirrel placeholder format.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// placeholders returns the squirrel placeholder format matching the driver:
// $1..$n for PostgreSQL, ? for SQLite.
func (db *DB) placeholders() sq.PlaceholderFormat {
	if db.driver == "pgx" {
		return sq.Dollar
	}
	return sq.Question
}
