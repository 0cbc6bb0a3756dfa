package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared by every command.
const (
	FlagConfig      = "config"
	FlagDSN         = "dsn"
	FlagDBDriver    = "db-driver"
	FlagOwner       = "owner"
	FlagLogLevel    = "log-level"
	FlagKeyEncoding = "key-encoding"
)

// RegisterFlags adds the configuration flags to fs. Defaults are left empty so
// that an unset flag never overrides environment values.
//
// Flags:
//
//	-c/--config     json file path with configs
//	--dsn           vault database DSN
//	--db-driver     database driver (sqlite3 or pgx)
//	--owner         vault owner id
//	--log-level     log level (debug, info, warn, error)
//	--key-encoding  encoding of the encryption key (base64, hex, passphrase)
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagDSN, "", "Vault database DSN")
	fs.String(FlagDBDriver, "", "Database driver: sqlite3 or pgx")
	fs.String(FlagOwner, "", "Vault owner id")
	fs.String(FlagLogLevel, "", "Log level: debug, info, warn, error")
	fs.String(FlagKeyEncoding, "", "Encryption key encoding: base64, hex or passphrase")
}

// parseFlags reads the flags registered by [RegisterFlags] back into a
// partial [StructuredConfig].
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	values := make(map[string]string, 6)
	for _, name := range []string{FlagConfig, FlagDSN, FlagDBDriver, FlagOwner, FlagLogLevel, FlagKeyEncoding} {
		if fs.Lookup(name) == nil {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", name, err)
		}
		values[name] = v
	}

	return &StructuredConfig{
		App: App{
			OwnerID:  values[FlagOwner],
			LogLevel: values[FlagLogLevel],
		},
		Crypto: Crypto{
			KeyEncoding: values[FlagKeyEncoding],
		},
		Storage: Storage{
			DB: DB{
				Driver: values[FlagDBDriver],
				DSN:    values[FlagDSN],
			},
		},
		JSONFilePath: values[FlagConfig],
	}, nil
}
