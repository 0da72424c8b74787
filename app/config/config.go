// Package config describes how the connector reaches a MaxDB instance and how it logs.
package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// DriverKind names the client library family used to talk to MaxDB.
type DriverKind string

const (
	// DriverODBC goes through the MaxDB ODBC driver.
	DriverODBC DriverKind = "odbc"
	// DriverHDB is SAP's go-hdb driver. It speaks the SAP HANA wire protocol
	// only and is rejected for MaxDB targets.
	DriverHDB DriverKind = "hdb"
)

const (
	DefaultDriver         = DriverODBC
	DefaultODBCDriver     = "MaxDB (Unicode)"
	DefaultConnectTimeout = 30 * time.Second
	DefaultQueryTimeout   = 10 * time.Minute
	DefaultLogLevel       = "info"
)

type Config struct {
	DataSource DataSourceConfig `koanf:"data_source"`
	Logger     LoggerConfig     `koanf:"logger"`
}

// DataSourceConfig is the connection configuration of a single handler.
// A handler keeps its own copy and never mutates it.
type DataSourceConfig struct {
	Driver   DriverKind `koanf:"driver"`
	Host     string     `koanf:"host"`
	Port     uint32     `koanf:"port"`
	User     string     `koanf:"user"`
	Password string     `koanf:"password"`
	Database string     `koanf:"database"`
	// Schema restricts catalog listings; the upper-cased user name when empty.
	Schema string `koanf:"schema"`
	// ODBCDriver is the driver name registered in odbcinst.ini.
	ODBCDriver string    `koanf:"odbc_driver"`
	TLS        TLSConfig `koanf:"tls"`

	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	QueryTimeout   time.Duration `koanf:"query_timeout"`
}

type TLSConfig struct {
	Enabled            bool   `koanf:"enabled"`
	CA                 string `koanf:"ca"`
	Cert               string `koanf:"cert"`
	Key                string `koanf:"key"`
	ServerName         string `koanf:"server_name"`
	InsecureSkipVerify bool   `koanf:"insecure_skip_verify"`
}

type LoggerConfig struct {
	Level                 string `koanf:"level"`
	EnableSQLQueryLogging bool   `koanf:"enable_sql_query_logging"`
}

func (c *DataSourceConfig) GetSchema() string {
	if c.Schema != "" {
		return c.Schema
	}

	// MaxDB creates objects in a schema named after their owner
	return strings.ToUpper(c.User)
}

func (c *DataSourceConfig) GetODBCDriver() string {
	if c.ODBCDriver == "" {
		return DefaultODBCDriver
	}

	return c.ODBCDriver
}

func (c *DataSourceConfig) GetConnectTimeout() time.Duration {
	if c.ConnectTimeout == 0 {
		return DefaultConnectTimeout
	}

	return c.ConnectTimeout
}

func (c *DataSourceConfig) GetQueryTimeout() time.Duration {
	if c.QueryTimeout == 0 {
		return DefaultQueryTimeout
	}

	return c.QueryTimeout
}

// Endpoint returns host:port.
func (c *DataSourceConfig) Endpoint() string {
	return net.JoinHostPort(c.Host, strconv.FormatUint(uint64(c.Port), 10))
}
