package token

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/findot/polar/internal/config"
	"github.com/findot/polar/internal/crypto"
)

// testSecurity builds a security section around a freshly generated RSA key
// pair, with the given token lifetime in seconds.
func testSecurity(t *testing.T, lifetime int) config.SecurityConfig {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generating RSA key: %v", err)
	}
	pub, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshaling public key: %v", err)
	}

	return config.SecurityConfig{
		PrivateKey:  x509.MarshalPKCS1PrivateKey(key),
		PublicKey:   pub,
		JwtLifetime: lifetime,
	}
}

func TestIssueAndVerify_Roundtrip(t *testing.T) {
	sec := testSecurity(t, 3600)

	issuer, err := NewIssuer(sec)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	verifier, err := NewVerifier(sec)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	signed, err := issuer.Issue(456)
	if err != nil {
		t.Fatalf("expected token to be issued, got error: %v", err)
	}
	if signed == "" {
		t.Error("expected non-empty signed token")
	}

	accountID, err := verifier.Verify(signed)
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if accountID != 456 {
		t.Errorf("expected account ID 456, got %d", accountID)
	}
}

func TestNewIssuer_MalformedKey(t *testing.T) {
	sec := testSecurity(t, 3600)
	sec.PrivateKey = []byte("not a DER key")

	_, err := NewIssuer(sec)
	if err == nil {
		t.Fatal("expected error for malformed private key, got nil")
	}
	if !errors.Is(err, crypto.ErrMalformedKey) {
		t.Errorf("expected ErrMalformedKey, got: %v", err)
	}
}

func TestNewVerifier_MalformedKey(t *testing.T) {
	sec := testSecurity(t, 3600)
	sec.PublicKey = []byte("not a DER key")

	_, err := NewVerifier(sec)
	if err == nil {
		t.Fatal("expected error for malformed public key, got nil")
	}
	if !errors.Is(err, crypto.ErrMalformedKey) {
		t.Errorf("expected ErrMalformedKey, got: %v", err)
	}
}

func TestVerify_WrongKey(t *testing.T) {
	issuer, err := NewIssuer(testSecurity(t, 3600))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	// A verifier built from a different key pair must reject the token.
	verifier, err := NewVerifier(testSecurity(t, 3600))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	signed, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("expected token to be issued, got error: %v", err)
	}

	if _, err := verifier.Verify(signed); err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestVerify_Expired(t *testing.T) {
	sec := testSecurity(t, -1) // expired one second ago

	issuer, err := NewIssuer(sec)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	verifier, err := NewVerifier(sec)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	signed, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("expected token to be issued, got error: %v", err)
	}

	_, err = verifier.Verify(signed)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got: %v", err)
	}
}

func TestVerify_WrongSigningMethod(t *testing.T) {
	sec := testSecurity(t, 3600)
	verifier, err := NewVerifier(sec)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// An HMAC token must be rejected before any key material is consulted.
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:  "polar",
		Subject: "1",
	}).SignedString([]byte("shared secret"))
	if err != nil {
		t.Fatalf("signing forged token: %v", err)
	}

	if _, err := verifier.Verify(forged); err == nil {
		t.Error("expected error for wrong signing method, got nil")
	}
}

func TestVerify_Malformed(t *testing.T) {
	verifier, err := NewVerifier(testSecurity(t, 3600))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if _, err := verifier.Verify("not.a.token"); err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}
