// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 findot

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/findot/polar/internal/config"
	"github.com/findot/polar/internal/logger"
	"github.com/findot/polar/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Update Polar database to its latest version",
	RunE:  runMigrate,
}

func init() {
	databaseFlags(migrateCmd.Flags())
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	log := logger.NewLogger("migrate")

	cfg, err := config.Resolve(collectArgs(cmd))
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	db, err := store.NewConnectPostgres(cmd.Context(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}
	log.Info().Msg("database migrated successfully")

	return nil
}
