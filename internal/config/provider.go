package config

// profileTree maps a profile name to that profile's partial configuration
// tree. Profile names are case-sensitive; the absence of a profile is not
// an error until extraction is attempted against it.
type profileTree map[string]dict

// merge overlays override onto t, profile by profile. Profiles untouched by
// the override keep their current trees; shared profiles deep-merge with
// the override winning leaf conflicts.
func (t profileTree) merge(override profileTree) profileTree {
	out := make(profileTree, len(t)+len(override))
	for name, d := range t {
		out[name] = d
	}
	for name, d := range override {
		if cur, ok := out[name]; ok {
			out[name] = cur.merge(d)
		} else {
			out[name] = d
		}
	}
	return out
}

// provider is a single source of partial configuration data. Providers are
// constructed once per startup and never mutated afterwards; data is pulled
// from each exactly once, in precedence order.
type provider interface {
	// data returns the per-profile trees this source contributes. Sources
	// without a profile dimension of their own (environment, arguments)
	// place their tree under the active profile.
	data(active string) (profileTree, error)

	// profile reports the active-profile override this source votes for,
	// or "" when it has no opinion.
	profile() string
}
