// Package store owns the shared Postgres handle the rest of polar builds
// on. The connection string is never assembled here; it always comes from
// the resolved configuration.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"

	"github.com/findot/polar/internal/config"
	"github.com/findot/polar/internal/logger"
	"github.com/findot/polar/migrations"
)

// DB wraps the database handle handed to polar's collaborators. Handle
// methods log through a child logger tagged with the database name.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens a Postgres connection from the resolved database
// section and verifies it with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (*DB, error) {
	dbLog := log.GetChildLogger()
	dbLog.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("database", cfg.Schema)
	})

	conn, err := sql.Open("pgx", cfg.URL())
	if err != nil {
		dbLog.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		dbLog.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	dbLog.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{DB: conn, logger: dbLog}, nil
}

// Migrate applies the embedded schema migrations over this handle.
func (db *DB) Migrate() error {
	db.logger.Debug().Str("func", "*DB.Migrate").Msg("applying database migrations")

	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error: migration failed")
		return err
	}
	return nil
}
