// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 findot

// Command polar is the entry point for the polar service. It resolves the
// layered configuration (defaults, TOML file, POLAR_ environment variables,
// command-line arguments) and dispatches to one of three subcommands:
// serve, migrate or show.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/findot/polar/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var rootCmd = &cobra.Command{
	Use:           "polar",
	Short:         "Polar account and token service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("configuration", "C", "", "Configuration file path")
	rootCmd.PersistentFlags().StringP("profile", "P", "", "Configuration profile to use")
}

func main() {
	printBuildInfo()

	if err := rootCmd.Execute(); err != nil {
		logger.NewLogger("polar").Fatal().Err(err).Msg("command failed")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
