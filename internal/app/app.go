// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 findot

// Package app assembles polar's long-running pieces from a resolved
// configuration: the database handle and the token issuer/verifier pair.
package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/findot/polar/internal/config"
	"github.com/findot/polar/internal/logger"
	"github.com/findot/polar/internal/store"
	"github.com/findot/polar/internal/token"
)

// App holds the wired collaborators for a polar server process.
type App struct {
	cfg      *config.Config
	db       *store.DB
	issuer   *token.Issuer
	verifier *token.Verifier
}

// New wires the token subsystem around an already-connected database
// handle. A probe token is issued and verified immediately so a mismatched
// key pair is reported at startup instead of on the first login.
func New(cfg *config.Config, db *store.DB, log *logger.Logger) (*App, error) {
	log.Info().Msg("creating application...")

	issuer, err := token.NewIssuer(cfg.Security)
	if err != nil {
		return nil, fmt.Errorf("error creating token issuer: %w", err)
	}
	verifier, err := token.NewVerifier(cfg.Security)
	if err != nil {
		return nil, fmt.Errorf("error creating token verifier: %w", err)
	}

	probe, err := issuer.Issue(0)
	if err != nil {
		return nil, fmt.Errorf("error issuing probe token: %w", err)
	}
	if _, err := verifier.Verify(probe); err != nil {
		return nil, fmt.Errorf("private and public keys do not match: %w", err)
	}

	return &App{
		cfg:      cfg,
		db:       db,
		issuer:   issuer,
		verifier: verifier,
	}, nil
}

// DB exposes the shared database handle.
func (a *App) DB() *store.DB { return a.db }

// Issuer exposes the access-token signer.
func (a *App) Issuer() *token.Issuer { return a.issuer }

// Verifier exposes the access-token checker.
func (a *App) Verifier() *token.Verifier { return a.verifier }

// Run announces readiness and blocks until ctx is cancelled or a stop
// signal arrives. Progress is reported through the context-scoped logger
// obtained via [logger.FromContext].
func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	log.Info().
		Str("address", a.cfg.Address).
		Int("port", a.cfg.Port).
		Msg("polar ready")

	<-ctx.Done()
	log.Info().Msg("shutdown requested, closing database handle")

	if err := a.db.Close(); err != nil {
		return fmt.Errorf("error closing database handle: %w", err)
	}
	log.Info().Msg("server shutdown gracefully")

	return nil
}
