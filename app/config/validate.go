package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/ydb-platform/ydb-connector-maxdb/library/go/core/log"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

func Validate(c *Config) error {
	if err := ValidateDataSourceConfig(&c.DataSource); err != nil {
		return fmt.Errorf("validate `data_source`: %w", err)
	}

	if err := validateLoggerConfig(&c.Logger); err != nil {
		return fmt.Errorf("validate `logger`: %w", err)
	}

	return nil
}

func ValidateDataSourceConfig(c *DataSourceConfig) error {
	switch c.Driver {
	case DriverODBC:
	case DriverHDB:
		return fmt.Errorf(
			"%w: value of field `driver` '%s' targets SAP HANA, MaxDB is reachable through '%s' only",
			ErrInvalidConfig, c.Driver, DriverODBC,
		)
	default:
		return fmt.Errorf("%w: unknown value of field `driver`: '%s'", ErrInvalidConfig, c.Driver)
	}

	if c.Host == "" {
		return fmt.Errorf("%w: invalid value of field `host`: %v", ErrInvalidConfig, c.Host)
	}

	if c.Port == 0 || c.Port > math.MaxUint16 {
		return fmt.Errorf("%w: invalid value of field `port`: %v", ErrInvalidConfig, c.Port)
	}

	if c.User == "" {
		return fmt.Errorf("%w: required field `user` is missing", ErrInvalidConfig)
	}

	if c.Database == "" {
		return fmt.Errorf("%w: required field `database` is missing", ErrInvalidConfig)
	}

	if c.ConnectTimeout < 0 {
		return fmt.Errorf("%w: invalid value of field `connect_timeout`: %v", ErrInvalidConfig, c.ConnectTimeout)
	}

	if c.QueryTimeout < 0 {
		return fmt.Errorf("%w: invalid value of field `query_timeout`: %v", ErrInvalidConfig, c.QueryTimeout)
	}

	if err := validateTLSConfig(&c.TLS); err != nil {
		return fmt.Errorf("validate `tls`: %w", err)
	}

	return nil
}

func validateTLSConfig(c *TLSConfig) error {
	if !c.Enabled {
		// TLS material is ignored unless TLS is switched on
		return nil
	}

	for name, path := range map[string]string{"ca": c.CA, "cert": c.Cert, "key": c.Key} {
		if path == "" {
			continue
		}

		if err := fileMustExist(path); err != nil {
			return fmt.Errorf("%w: invalid value of field `%s`: %v", ErrInvalidConfig, name, err)
		}
	}

	if (c.Cert == "") != (c.Key == "") {
		return fmt.Errorf("%w: fields `cert` and `key` must be set together", ErrInvalidConfig)
	}

	return nil
}

func validateLoggerConfig(c *LoggerConfig) error {
	if c.Level == "" {
		return nil
	}

	if _, err := log.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("%w: invalid value of field `level`: %v", ErrInvalidConfig, err)
	}

	return nil
}

func fileMustExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path '%s' does not exist", path)
	}

	if err != nil {
		return fmt.Errorf("stat '%s': %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("path '%s' is a directory", path)
	}

	return nil
}
