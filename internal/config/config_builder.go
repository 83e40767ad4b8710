package config

import (
	"errors"
	"fmt"
)

type configBuilder struct {
	providers []provider
	err       error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		providers: make([]provider, 0, 4),
	}
}

// build runs the whole resolution: merge every collected provider in
// precedence order, select the active profile, derive the database URL and
// key material, and extract the typed Config. The first failure at any
// stage aborts the run.
func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	active := b.activeProfile()

	merged := profileTree{}
	for _, p := range b.providers {
		tree, err := p.data(active)
		if err != nil {
			return nil, err
		}
		merged = merged.merge(tree)
	}

	// A never-populated profile is not an error here; extraction reports
	// the missing fields one by one.
	working := merged[active]
	if working == nil {
		working = dict{}
	}

	deriveDatabaseURL(working)
	if err := deriveKeys(working); err != nil {
		return nil, err
	}

	return extract(working)
}

// activeProfile returns the highest-precedence profile vote among the
// collected providers (arguments beat environment), or "default" when
// nobody voted.
func (b *configBuilder) activeProfile() string {
	for i := len(b.providers) - 1; i >= 0; i-- {
		if name := b.providers[i].profile(); name != "" {
			return name
		}
	}
	return ProfileDefault
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.providers = append(b.providers, defaultsProvider{})
	return b
}

func (b *configBuilder) withFile(path string) *configBuilder {
	b.providers = append(b.providers, newFileProvider(path))
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := newEnvProvider()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.providers = append(b.providers, envCfg)
	return b
}

func (b *configBuilder) withArgs(args *Args) *configBuilder {
	b.providers = append(b.providers, argsProvider{args: args})
	return b
}
