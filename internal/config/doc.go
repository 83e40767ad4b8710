// Package config resolves polar's runtime configuration from multiple
// precedence-ordered sources, once, at process startup.
//
// Configuration is assembled from four sources in the following priority
// order (later sources override earlier ones, last write wins per leaf):
//  1. Compiled-in defaults
//  2. TOML configuration file (default /etc/polar/polar.toml)
//  3. POLAR_-prefixed environment variables
//  4. Command-line arguments
//
// Every source contributes trees per profile ([default], [custom], ...).
// After merging, the active profile (--profile > POLAR_PROFILE >
// "default") is selected, the database URL and the PEM key material are
// derived into the tree, and the result is extracted into a typed
// [Config]. Profiles are isolated from each other: a value set under one
// profile never appears in another profile's output.
//
// The main entry point is [Resolve].
package config
