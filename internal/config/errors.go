package config

import "errors"

// Resolution errors. Every failure is fatal: the pipeline never retries,
// and no partial configuration is handed out.
var (
	// ErrSourceNotFound indicates an explicitly requested configuration
	// file that does not exist. A missing file at the default path is not
	// an error.
	ErrSourceNotFound = errors.New("configuration source not found")
	// ErrSourceIsDirectory indicates a configuration file path that points
	// at a directory.
	ErrSourceIsDirectory = errors.New("configuration source is a directory")
	// ErrSourceParse indicates a configuration file that exists but is not
	// valid TOML. The underlying decoder error is wrapped alongside.
	ErrSourceParse = errors.New("configuration source is malformed")
	// ErrMissingEntry indicates that a derivation step required a key the
	// merged tree does not carry (for example security.private_key_path).
	ErrMissingEntry = errors.New("missing configuration entry")
	// ErrMissingField indicates a required field absent from the selected
	// profile at validation time.
	ErrMissingField = errors.New("missing required field")
	// ErrTypeMismatch indicates a field present under the selected profile
	// but holding the wrong kind of value.
	ErrTypeMismatch = errors.New("configuration type mismatch")
)
