package config

import (
	"fmt"

	"github.com/findot/polar/internal/crypto"
)

// Reserved key paths read and written by the derivation steps. The *_path
// entries are supplied by sources; the others only exist once derivation
// has run.
const (
	confPrivKeyPath = "security.private_key_path"
	confPubKeyPath  = "security.public_key_path"

	confPrivKey     = "security.private_key"
	confPubKey      = "security.public_key"
	confDatabaseURL = "database.url"
)

// deriveDatabaseURL assembles the postgres connection string from the
// database subtree and writes it under database.url for the pool
// initializer to consume. When the subtree is not yet shaped correctly the
// step skips silently: the validator reports the offending field with its
// proper path instead.
func deriveDatabaseURL(d dict) {
	host, ok := d.stringAt("database.host")
	if !ok {
		return
	}
	port, ok := d.integerAt("database.port")
	if !ok {
		return
	}
	user, ok := d.stringAt("database.user")
	if !ok {
		return
	}
	password, ok := d.stringAt("database.password")
	if !ok {
		return
	}
	schema, ok := d.stringAt("database.schema")
	if !ok {
		return
	}

	d.put(confDatabaseURL, stringValue(postgresURL(user, password, host, port, schema)))
}

// deriveKeys loads and decodes both PEM key files referenced by the
// security subtree and writes the raw key bytes back into the tree, where
// the validator treats them like any other leaf. Unlike URL synthesis this
// step performs I/O and fails hard; both reads complete before validation
// runs.
func deriveKeys(d dict) error {
	privPath, ok := d.stringAt(confPrivKeyPath)
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingEntry, confPrivKeyPath)
	}
	pubPath, ok := d.stringAt(confPubKeyPath)
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingEntry, confPubKeyPath)
	}

	privKey, err := crypto.ExtractKey(privPath)
	if err != nil {
		return fmt.Errorf("incorrect value for key %q: %w", confPrivKeyPath, err)
	}
	pubKey, err := crypto.ExtractKey(pubPath)
	if err != nil {
		return fmt.Errorf("incorrect value for key %q: %w", confPubKeyPath, err)
	}

	d.put(confPrivKey, bytesValue(privKey))
	d.put(confPubKey, bytesValue(pubKey))
	return nil
}
