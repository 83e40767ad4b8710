package config

// Compiled-in fallback values, applied when no other source provides the
// field. They match a local development setup; production deployments are
// expected to override most of them.
const (
	DefaultAddress     = "127.0.0.1"
	DefaultPort        = 8080
	DefaultJwtLifetime = 900

	DefaultDatabaseHost     = "127.0.0.1"
	DefaultDatabasePort     = 5432
	DefaultDatabaseUser     = "polar"
	DefaultDatabasePassword = "polar"
	DefaultDatabaseSchema   = "polar"
)

// defaultsProvider contributes the compiled-in fallback tree. It populates
// the "default" profile only and never fails. Key file paths have no
// sensible fallback and are deliberately absent.
type defaultsProvider struct{}

func (defaultsProvider) data(string) (profileTree, error) {
	return profileTree{
		ProfileDefault: dict{
			"address": stringValue(DefaultAddress),
			"port":    integerValue(DefaultPort),
			"security": mapValue(dict{
				"jwt_lifetime": integerValue(DefaultJwtLifetime),
			}),
			"database": mapValue(dict{
				"host":     stringValue(DefaultDatabaseHost),
				"port":     integerValue(DefaultDatabasePort),
				"user":     stringValue(DefaultDatabaseUser),
				"password": stringValue(DefaultDatabasePassword),
				"schema":   stringValue(DefaultDatabaseSchema),
			}),
		},
	}, nil
}

func (defaultsProvider) profile() string { return "" }
