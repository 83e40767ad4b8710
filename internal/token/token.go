// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 findot

// Package token issues and verifies the RS256 JSON Web Tokens polar hands
// out to authenticated accounts. Both halves are built from a resolved
// [config.SecurityConfig]: the issuer signs with the private key, the
// verifier checks with the public key, and the token lifetime comes from
// the jwt_lifetime setting.
package token

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/findot/polar/internal/config"
	"github.com/findot/polar/internal/crypto"
)

// tokenIssuer is the iss claim stamped on every token this service signs.
const tokenIssuer = "polar"

// Issuer signs access tokens for accounts.
type Issuer struct {
	key      *rsa.PrivateKey
	lifetime time.Duration
}

// NewIssuer builds an Issuer from the resolved security section. It fails
// when the private key bytes do not parse to an RSA key.
func NewIssuer(sec config.SecurityConfig) (*Issuer, error) {
	key, err := crypto.ParsePrivateKey(sec.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("error occurred during loading signing key: %w", err)
	}

	return &Issuer{
		key:      key,
		lifetime: time.Duration(sec.JwtLifetime) * time.Second,
	}, nil
}

// Issue creates a signed RS256 token for the given account.
//
// The token includes the following standard claims:
//   - Issuer    (iss): always "polar"
//   - Subject   (sub): the account ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus the configured lifetime
func (i *Issuer) Issue(accountID int64) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   strconv.FormatInt(accountID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return signed, nil
}

// Verifier checks access tokens against the service public key.
type Verifier struct {
	key *rsa.PublicKey
}

// NewVerifier builds a Verifier from the resolved security section. It fails
// when the public key bytes do not parse to an RSA key.
func NewVerifier(sec config.SecurityConfig) (*Verifier, error) {
	key, err := crypto.ParsePublicKey(sec.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("error occurred during loading verification key: %w", err)
	}

	return &Verifier{key: key}, nil
}

// Verify validates the given token string and extracts the account ID it
// was issued for.
//
// Validation includes:
//   - signature verification against the service public key (RS256 only);
//   - Issuer (iss) claim check against "polar";
//   - Expiration (exp) claim check;
//   - Subject (sub) claim presence and conversion to an int64 account ID.
func (v *Verifier) Verify(tokenString string) (int64, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return v.key, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return 0, errors.New("empty subject error")
	}

	accountID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error occurred during converting subject to account ID: %w", err)
	}

	return accountID, nil
}
