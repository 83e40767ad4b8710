// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 findot

package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/findot/polar/internal/config"
)

const redactedPlaceholder = "[redacted]"

// dumpTree lays the resolved configuration back out in the shape it was
// read from, then overlays redaction on top so key material and database
// credentials never reach stdout.
func dumpTree(cfg *config.Config) (map[string]any, error) {
	tree := map[string]any{
		"address": cfg.Address,
		"port":    cfg.Port,
		"security": map[string]any{
			"jwt_lifetime": cfg.Security.JwtLifetime,
			"private_key":  cfg.Security.PrivateKey,
			"public_key":   cfg.Security.PublicKey,
		},
		"database": map[string]any{
			"host":     cfg.Database.Host,
			"port":     cfg.Database.Port,
			"user":     cfg.Database.User,
			"password": cfg.Database.Password,
			"schema":   cfg.Database.Schema,
			"url":      cfg.Database.URL(),
		},
	}

	masked := cfg.Database
	masked.Password = redactedPlaceholder
	redaction := map[string]any{
		"security": map[string]any{
			"private_key": redactedPlaceholder,
			"public_key":  redactedPlaceholder,
		},
		"database": map[string]any{
			"password": redactedPlaceholder,
			"url":      masked.URL(),
		},
	}

	if err := mergo.Merge(&tree, redaction, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error redacting configuration dump: %w", err)
	}

	return tree, nil
}

// renderConfig encodes the redacted configuration tree in the requested
// dump format.
func renderConfig(cfg *config.Config, format string) ([]byte, error) {
	tree, err := dumpTree(cfg)
	if err != nil {
		return nil, err
	}

	switch format {
	case "json":
		return json.MarshalIndent(tree, "", "  ")
	case "yaml":
		return yaml.Marshal(tree)
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(tree); err != nil {
			return nil, fmt.Errorf("error encoding configuration dump: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %q (expected json, yaml or toml)", format)
	}
}
