// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 findot

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/findot/polar/internal/app"
	"github.com/findot/polar/internal/config"
	"github.com/findot/polar/internal/logger"
	"github.com/findot/polar/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start Polar webserver",
	RunE:  runServe,
}

func init() {
	flags := serveCmd.Flags()
	flags.StringP("address", "a", "", "IP address to bind to")
	flags.IntP("port", "p", 0, "Port number to use for connection or 0 for default")
	databaseFlags(flags)
	flags.IntP("jwt-lifetime", "l", 0, "Lifespan (in seconds) during which any emitted jwt token will be valid")
	flags.String("private-key-path", "", "Path to the PEM encoded private key")
	flags.String("public-key-path", "", "Path to the PEM encoded public key")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	log := logger.NewLogger("serve")

	cfg, err := config.Resolve(collectArgs(cmd))
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	log.Debug().Str("address", cfg.Address).Int("port", cfg.Port).Msg("received configs")

	ctx := log.WithContext(cmd.Context())

	db, err := store.NewConnectPostgres(ctx, cfg.Database, log)
	if err != nil {
		return err
	}

	application, err := app.New(cfg, db, log)
	if err != nil {
		db.Close()
		return err
	}

	return application.Run(ctx)
}
