package store

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logger"
)

// Storages bundles every repository behind a single dependency handed to the
// service layer.
type Storages struct {
	UserRepository UserRepository
	TodoRepository TodoRepository

	// DB is the shared connection, exposed so the caller can run migrations
	// and close it on shutdown.
	DB *DB
}

// NewStorages opens the database connection described by cfg (dialect
// inferred from the DSN) and wires up all repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch DialectFromDSN(cfg.DB.DSN) {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case DialectSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting storage: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TodoRepository: NewTodoRepository(db, log),
		DB:             db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}
