// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 findot

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/findot/polar/internal/config"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Dump Polar current active configuration to standard output",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringP("format", "f", "json", "Format of the configuration dump")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Resolve(collectArgs(cmd))
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	out, err := renderConfig(cfg, format)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
