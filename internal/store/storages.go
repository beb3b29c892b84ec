package store

import (
	"context"
	"fmt"

	"github.com/dfcastellanos/clientes-api/internal/config"
	"github.com/dfcastellanos/clientes-api/internal/logger"
)

// Storages bundles every repository of the application behind one handle.
type Storages struct {
	UserRepository    UserRepository
	ClienteRepository ClienteRepository

	db *DB
}

// NewStorages connects to the configured database backend, applies pending
// migrations, and wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ClienteRepository: NewClienteRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
