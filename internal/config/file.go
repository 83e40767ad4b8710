// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 findot

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultConfPath is where polar looks for its configuration file when no
// explicit path is given on the command line.
const DefaultConfPath = "/etc/polar/polar.toml"

// fileProvider reads a TOML configuration file whose top-level tables are
// profile sections ([default], [custom], ...). A missing file is an error
// only when its path was explicitly requested; the default path is allowed
// to be absent.
type fileProvider struct {
	path      string
	specified bool
}

func newFileProvider(path string) fileProvider {
	if path == "" {
		return fileProvider{path: DefaultConfPath}
	}
	return fileProvider{path: path, specified: true}
}

func (f fileProvider) data(string) (profileTree, error) {
	info, err := os.Stat(f.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if f.specified {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, f.path)
		}
		return profileTree{}, nil
	case err != nil:
		return nil, fmt.Errorf("error reading configuration file %s: %w", f.path, err)
	case info.IsDir():
		return nil, fmt.Errorf("%w: %s", ErrSourceIsDirectory, f.path)
	}

	var raw map[string]any
	if _, err := toml.DecodeFile(f.path, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceParse, f.path, err)
	}

	// Top-level tables name profiles; stray top-level scalars belong to no
	// profile and are dropped.
	tree := make(profileTree, len(raw))
	for name, section := range raw {
		table, ok := section.(map[string]any)
		if !ok {
			continue
		}
		tree[name] = fromMap(table)
	}
	return tree, nil
}

func (fileProvider) profile() string { return "" }
