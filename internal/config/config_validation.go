// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 findot

package config

import (
	"fmt"
	"math"
)

// extract converts the fully-derived tree into the typed [Config] record,
// field by field. The first field that is absent or of the wrong kind
// aborts extraction; no partial Config is ever returned.
func extract(d dict) (*Config, error) {
	address, err := requireString(d, "address")
	if err != nil {
		return nil, err
	}
	port, err := requireU16(d, "port")
	if err != nil {
		return nil, err
	}

	jwtLifetime, err := requireU16(d, "security.jwt_lifetime")
	if err != nil {
		return nil, err
	}
	privKey, err := requireBytes(d, confPrivKey)
	if err != nil {
		return nil, err
	}
	pubKey, err := requireBytes(d, confPubKey)
	if err != nil {
		return nil, err
	}

	dbHost, err := requireString(d, "database.host")
	if err != nil {
		return nil, err
	}
	dbPort, err := requireU16(d, "database.port")
	if err != nil {
		return nil, err
	}
	dbUser, err := requireString(d, "database.user")
	if err != nil {
		return nil, err
	}
	dbPassword, err := requireString(d, "database.password")
	if err != nil {
		return nil, err
	}
	dbSchema, err := requireString(d, "database.schema")
	if err != nil {
		return nil, err
	}

	return &Config{
		Address: address,
		Port:    port,
		Security: SecurityConfig{
			PrivateKey:  privKey,
			PublicKey:   pubKey,
			JwtLifetime: jwtLifetime,
		},
		Database: DatabaseConfig{
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			Schema:   dbSchema,
		},
	}, nil
}

func requireString(d dict, path string) (string, error) {
	v, ok := d.at(path)
	if !ok {
		return "", missingField(path)
	}
	if v.kind != kindString {
		return "", typeMismatch(path, kindString, v.kind)
	}
	return v.str, nil
}

// requireU16 extracts an integer leaf that must fit the record's
// historical unsigned 16-bit width (ports, token lifetime).
func requireU16(d dict, path string) (int, error) {
	v, ok := d.at(path)
	if !ok {
		return 0, missingField(path)
	}
	if v.kind != kindInteger {
		return 0, typeMismatch(path, kindInteger, v.kind)
	}
	if v.num < 0 || v.num > math.MaxUint16 {
		return 0, fmt.Errorf("%w at %s: %d does not fit a 16-bit unsigned integer", ErrTypeMismatch, path, v.num)
	}
	return int(v.num), nil
}

func requireBytes(d dict, path string) ([]byte, error) {
	v, ok := d.at(path)
	if !ok {
		return nil, missingField(path)
	}
	if v.kind != kindBytes {
		return nil, typeMismatch(path, kindBytes, v.kind)
	}
	return v.raw, nil
}

func missingField(path string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, path)
}

func typeMismatch(path string, want, got kind) error {
	return fmt.Errorf("%w at %s: expected %s, found %s", ErrTypeMismatch, path, want, got)
}
