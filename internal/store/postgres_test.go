package store

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"

	"github.com/findot/polar/internal/config"
	"github.com/findot/polar/internal/logger"
)

func TestNewConnectPostgres_PingFails(t *testing.T) {
	// Port 1 is never a Postgres server; the ping must fail fast.
	cfg := config.DatabaseConfig{
		Host:     "127.0.0.1",
		Port:     1,
		User:     "polar",
		Password: "polar",
		Schema:   "polar",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	db, err := NewConnectPostgres(ctx, cfg, logger.Nop())
	if err == nil {
		db.Close()
		t.Fatal("expected connection error, got nil")
	}
}

func TestNewConnectPostgres_LogsDatabaseField(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "127.0.0.1",
		Port:     1,
		User:     "polar",
		Password: "polar",
		Schema:   "inventory",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	if db, err := NewConnectPostgres(ctx, cfg, log); err == nil {
		db.Close()
		t.Fatal("expected connection error, got nil")
	}
	if !strings.Contains(buf.String(), `"database":"inventory"`) {
		t.Errorf("expected connection logs tagged with the database name, got: %q", buf.String())
	}
}

func TestDB_Migrate_WrapsError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer conn.Close()

	_ = mock // goose drives the connection itself; any statement fails

	db := &DB{DB: conn, logger: logger.Nop()}

	err = db.Migrate()
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}
	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestDB_Migrate_LogsThroughHandleLogger(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer conn.Close()

	_ = mock // goose drives the connection itself; any statement fails

	var buf bytes.Buffer
	db := &DB{DB: conn, logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	if err := db.Migrate(); err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	out := buf.String()
	if !strings.Contains(out, "applying database migrations") {
		t.Errorf("expected start log from Migrate, got: %q", out)
	}
	if !strings.Contains(out, "error: migration failed") {
		t.Errorf("expected failure log from Migrate, got: %q", out)
	}
}
