// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 findot

package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/findot/polar/internal/config"
)

// databaseFlags registers the database overrides shared by serve and
// migrate.
func databaseFlags(flags *pflag.FlagSet) {
	flags.StringP("database-host", "d", "", "Database IP address to connect to")
	flags.IntP("database-port", "n", 0, "Database port number to connect to")
	flags.StringP("database-user", "u", "", "Username with which polar will authenticate to the database")
	flags.StringP("database-password", "w", "", "Password with which polar will authenticate to the database")
	flags.StringP("database-schema", "s", "", "Database schema to use")
}

// stringFlag returns the value of a string flag, or nil when the flag is
// not registered on this command or the user left it untouched.
func stringFlag(flags *pflag.FlagSet, name string) *string {
	f := flags.Lookup(name)
	if f == nil || !f.Changed {
		return nil
	}

	v := f.Value.String()
	return &v
}

// intFlag is the integer counterpart of stringFlag.
func intFlag(flags *pflag.FlagSet, name string) *int {
	f := flags.Lookup(name)
	if f == nil || !f.Changed {
		return nil
	}

	v, err := strconv.Atoi(f.Value.String())
	if err != nil {
		return nil
	}
	return &v
}

// plainFlag returns the value of a string flag, or "" when it is not
// registered. Used for the globals whose zero value already means "unset".
func plainFlag(flags *pflag.FlagSet, name string) string {
	f := flags.Lookup(name)
	if f == nil {
		return ""
	}
	return f.Value.String()
}

// collectArgs converts whatever flags were actually set on cmd into the
// argument source of the configuration pipeline. Flags the user left
// untouched stay nil so lower-priority sources keep their values.
func collectArgs(cmd *cobra.Command) *config.Args {
	flags := cmd.Flags()

	return &config.Args{
		ConfigPath:       plainFlag(flags, "configuration"),
		Profile:          plainFlag(flags, "profile"),
		Address:          stringFlag(flags, "address"),
		Port:             intFlag(flags, "port"),
		DatabaseHost:     stringFlag(flags, "database-host"),
		DatabasePort:     intFlag(flags, "database-port"),
		DatabaseUser:     stringFlag(flags, "database-user"),
		DatabasePassword: stringFlag(flags, "database-password"),
		DatabaseSchema:   stringFlag(flags, "database-schema"),
		JwtLifetime:      intFlag(flags, "jwt-lifetime"),
		PrivateKeyPath:   stringFlag(flags, "private-key-path"),
		PublicKeyPath:    stringFlag(flags, "public-key-path"),
	}
}
