// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 findot

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix marks the environment variables polar reads as configuration.
const EnvPrefix = "POLAR_"

// EnvProfileVar is the reserved variable naming the active profile. It
// selects which profile tree is extracted and never becomes part of the
// tree itself.
const EnvProfileVar = "POLAR_PROFILE"

// reservedEnv holds the variables that steer resolution instead of feeding
// it, parsed apart from the generic POLAR_ scan via caarlos0/env tags.
type reservedEnv struct {
	Profile string `env:"PROFILE"`
}

// parseReservedEnv populates the reserved variables using the caarlos0/env
// library with the polar prefix applied to all tag lookups.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseReservedEnv() (reservedEnv, error) {
	var reserved reservedEnv
	if err := env.ParseWithOptions(&reserved, env.Options{Prefix: EnvPrefix}); err != nil {
		return reservedEnv{}, fmt.Errorf("error getting env configs: %w", err)
	}
	return reserved, nil
}

// envProvider collects every POLAR_-prefixed variable into a tree for the
// active profile. Names are lower-cased after the prefix is stripped, with
// dots splitting nested segments and underscores kept inside a segment:
// POLAR_SECURITY.PRIVATE_KEY_PATH becomes security.private_key_path.
type envProvider struct {
	reserved reservedEnv
}

func newEnvProvider() (envProvider, error) {
	reserved, err := parseReservedEnv()
	if err != nil {
		return envProvider{}, err
	}
	return envProvider{reserved: reserved}, nil
}

func (e envProvider) data(active string) (profileTree, error) {
	d := dict{}
	for _, entry := range os.Environ() {
		name, raw, ok := strings.Cut(entry, "=")
		if !ok || name == EnvProfileVar || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
		if key == "" {
			continue
		}
		d.put(key, parseScalar(raw))
	}
	if len(d) == 0 {
		return profileTree{}, nil
	}
	return profileTree{active: d}, nil
}

func (e envProvider) profile() string { return e.reserved.Profile }

// parseScalar infers the kind of a raw environment string: boolean and
// integer literals are promoted, everything else stays a string.
func parseScalar(s string) value {
	switch s {
	case "true":
		return booleanValue(true)
	case "false":
		return booleanValue(false)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return integerValue(n)
	}
	return stringValue(s)
}
