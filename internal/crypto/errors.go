package crypto

import "errors"

// Key-loading errors. They mirror the configuration source errors so the
// resolution pipeline can tell apart a missing file, a directory and
// content that is simply not a key.
var (
	// ErrKeyNotFound indicates that the referenced key file does not exist.
	ErrKeyNotFound = errors.New("key file not found")
	// ErrKeyIsDirectory indicates that the referenced key path points at a
	// directory.
	ErrKeyIsDirectory = errors.New("key path is a directory")
	// ErrMalformedKey indicates content that could not be decoded as a PEM
	// block or as the key structure within one.
	ErrMalformedKey = errors.New("malformed key material")
	// ErrUnsupportedKey indicates a well-formed key of a type polar cannot
	// sign tokens with.
	ErrUnsupportedKey = errors.New("unsupported key type")
)
