package config

// Args carries the command-line values relevant to configuration
// resolution. Flag parsing itself belongs to the CLI layer; this type only
// receives its result. A nil field means the flag was left unset and must
// not override lower-precedence sources.
type Args struct {
	// ConfigPath is the explicit configuration file path (-C/--configuration).
	// Empty means "use the default path, tolerate its absence".
	ConfigPath string

	// Profile is the explicit profile name (-P/--profile). Empty defers to
	// the POLAR_PROFILE variable, then to "default".
	Profile string

	Address          *string
	Port             *int
	DatabaseHost     *string
	DatabasePort     *int
	DatabaseUser     *string
	DatabasePassword *string
	DatabaseSchema   *string
	JwtLifetime      *int
	PrivateKeyPath   *string
	PublicKeyPath    *string
}

// argsProvider wraps parsed command-line arguments into the common tree
// shape, under the active profile. It is the highest-precedence source.
type argsProvider struct {
	args *Args
}

func (p argsProvider) data(active string) (profileTree, error) {
	d := dict{}

	putString := func(path string, s *string) {
		if s != nil {
			d.put(path, stringValue(*s))
		}
	}
	putInteger := func(path string, n *int) {
		if n != nil {
			d.put(path, integerValue(int64(*n)))
		}
	}

	putString("address", p.args.Address)
	putInteger("port", p.args.Port)
	putString("database.host", p.args.DatabaseHost)
	putInteger("database.port", p.args.DatabasePort)
	putString("database.user", p.args.DatabaseUser)
	putString("database.password", p.args.DatabasePassword)
	putString("database.schema", p.args.DatabaseSchema)
	putInteger("security.jwt_lifetime", p.args.JwtLifetime)
	putString(confPrivKeyPath, p.args.PrivateKeyPath)
	putString(confPubKeyPath, p.args.PublicKeyPath)

	if len(d) == 0 {
		return profileTree{}, nil
	}
	return profileTree{active: d}, nil
}

func (p argsProvider) profile() string { return p.args.Profile }
