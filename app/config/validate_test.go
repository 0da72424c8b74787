package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func validDataSource() DataSourceConfig {
	return DataSourceConfig{
		Driver:   DriverODBC,
		Host:     "localhost",
		Port:     7210,
		User:     "test",
		Password: "test",
		Database: "testdb",
	}
}

func TestValidateDataSourceConfig(t *testing.T) {
	pem := filepath.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(pem, []byte("-"), 0o600))

	testCases := []struct {
		name    string
		mutate  func(c *DataSourceConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *DataSourceConfig) {}},
		{name: "unknown driver", mutate: func(c *DataSourceConfig) { c.Driver = "jdbc" }, wantErr: true},
		{name: "hana driver", mutate: func(c *DataSourceConfig) { c.Driver = DriverHDB }, wantErr: true},
		{name: "empty host", mutate: func(c *DataSourceConfig) { c.Host = "" }, wantErr: true},
		{name: "zero port", mutate: func(c *DataSourceConfig) { c.Port = 0 }, wantErr: true},
		{name: "port overflow", mutate: func(c *DataSourceConfig) { c.Port = 70000 }, wantErr: true},
		{name: "empty user", mutate: func(c *DataSourceConfig) { c.User = "" }, wantErr: true},
		{name: "empty database", mutate: func(c *DataSourceConfig) { c.Database = "" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *DataSourceConfig) { c.QueryTimeout = -1 }, wantErr: true},
		{
			name:   "tls disabled ignores files",
			mutate: func(c *DataSourceConfig) { c.TLS = TLSConfig{CA: "/nonexistent"} },
		},
		{
			name:   "tls with ca",
			mutate: func(c *DataSourceConfig) { c.TLS = TLSConfig{Enabled: true, CA: pem} },
		},
		{
			name:    "tls missing ca",
			mutate:  func(c *DataSourceConfig) { c.TLS = TLSConfig{Enabled: true, CA: "/nonexistent"} },
			wantErr: true,
		},
		{
			name:    "tls cert without key",
			mutate:  func(c *DataSourceConfig) { c.TLS = TLSConfig{Enabled: true, Cert: pem} },
			wantErr: true,
		},
		{
			name:    "tls ca is a directory",
			mutate:  func(c *DataSourceConfig) { c.TLS = TLSConfig{Enabled: true, CA: t.TempDir()} },
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := validDataSource()
			tc.mutate(&cfg)

			err := ValidateDataSourceConfig(&cfg)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateLoggerLevel(t *testing.T) {
	cfg := &Config{DataSource: validDataSource(), Logger: LoggerConfig{Level: "loud"}}
	require.ErrorIs(t, Validate(cfg), ErrInvalidConfig)

	cfg.Logger.Level = "WARN"
	require.NoError(t, Validate(cfg))
}
