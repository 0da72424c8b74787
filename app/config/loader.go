package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment overrides.
// MAXDB_DATA_SOURCE__HOST maps onto data_source.host.
const EnvPrefix = "MAXDB_"

// flagKeys binds command line flags to config keys.
var flagKeys = map[string]string{
	"driver":      "data_source.driver",
	"host":        "data_source.host",
	"port":        "data_source.port",
	"user":        "data_source.user",
	"password":    "data_source.password",
	"database":    "data_source.database",
	"schema":      "data_source.schema",
	"odbc-driver": "data_source.odbc_driver",
	"tls":         "data_source.tls.enabled",
	"log-level":   "logger.level",
	"log-queries": "logger.enable_sql_query_logging",
}

func defaults() map[string]any {
	return map[string]any{
		"data_source.driver":          string(DefaultDriver),
		"data_source.odbc_driver":     DefaultODBCDriver,
		"data_source.connect_timeout": DefaultConnectTimeout,
		"data_source.query_timeout":   DefaultQueryTimeout,
		"logger.level":                DefaultLogLevel,
	}
}

// Load merges defaults, the YAML file at configPath (optional), MAXDB_* environment
// variables and explicitly set flags, in increasing order of precedence, then validates the result.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read file %v: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envToKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}

			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func envToKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// RegisterFlags adds the flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("driver", "", "client library family: odbc")
	fs.String("host", "", "MaxDB host")
	fs.Uint32("port", 0, "MaxDB port")
	fs.String("user", "", "user name")
	fs.String("password", "", "password")
	fs.String("database", "", "database name")
	fs.String("schema", "", "schema used by catalog listings")
	fs.String("odbc-driver", "", "ODBC driver name")
	fs.Bool("tls", false, "connect over TLS")
	fs.String("log-level", "", "log level: trace, debug, info, warn, error, fatal")
	fs.Bool("log-queries", false, "log every SQL statement at debug level")
}
