// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 findot

// Package crypto loads and parses the PEM key material referenced by
// polar's configuration.
package crypto

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

// ExtractKey reads the file at path and decodes its first PEM block,
// returning the raw block contents. The distinction between a missing
// file, a directory and undecodable content is preserved so the
// configuration layer can report precisely what is wrong with the
// referenced path.
func ExtractKey(path string) ([]byte, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, path)
	case err != nil:
		return nil, fmt.Errorf("error reading key file %s: %w", path, err)
	case info.IsDir():
		return nil, fmt.Errorf("%w: %s", ErrKeyIsDirectory, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading key file %s: %w", path, err)
	}

	block, _ := pem.Decode(raw)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block in %s", ErrMalformedKey, path)
	}

	return block.Bytes, nil
}

// ParsePrivateKey interprets extracted key material as an RSA private key,
// accepting both PKCS#1 and PKCS#8 encodings.
func ParsePrivateKey(der []byte) (*rsa.PrivateKey, error) {
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, parsed)
	}
	return key, nil
}

// ParsePublicKey interprets extracted key material as an RSA public key,
// accepting both PKIX and PKCS#1 encodings.
func ParsePublicKey(der []byte) (*rsa.PublicKey, error) {
	if key, err := x509.ParsePKCS1PublicKey(der); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, parsed)
	}
	return key, nil
}
