package maxdb

import (
	"strings"

	_ "github.com/alexbrainman/odbc"
	"github.com/ydb-platform/ydb-connector-maxdb/app/config"
	"github.com/ydb-platform/ydb-connector-maxdb/app/utils"
	"github.com/ydb-platform/ydb-connector-maxdb/library/go/core/log"
)

const odbcDriverName = "odbc"

// MakeODBCConnectionString builds a connection string for the MaxDB ODBC driver.
func MakeODBCConnectionString(logger log.Logger, dsc *config.DataSourceConfig) (string, error) {
	serverNode := dsc.Endpoint()

	if dsc.TLS.Enabled {
		// MaxDB runs its TLS transport under the "remotes" scheme; certificates
		// come from the client PSE configured for the ODBC driver.
		serverNode = "remotes://" + serverNode

		if dsc.TLS.CA != "" || dsc.TLS.Cert != "" || dsc.TLS.Key != "" {
			logger.Warn("ODBC driver reads TLS material from its own PSE, ca/cert/key paths are ignored")
		}
	}

	attrs := [][2]string{
		{"DRIVER", "{" + dsc.GetODBCDriver() + "}"},
		{"SERVERNODE", odbcValue(serverNode)},
		{"SERVERDB", odbcValue(dsc.Database)},
		{"UID", odbcValue(dsc.User)},
		{"PWD", odbcValue(dsc.Password)},
	}

	var sb strings.Builder

	for _, attr := range attrs {
		sb.WriteString(attr[0])
		sb.WriteByte('=')
		sb.WriteString(attr[1])
		sb.WriteByte(';')
	}

	return sb.String(), nil
}

// odbcValue braces values that would otherwise break the attribute list.
func odbcValue(v string) string {
	if !strings.ContainsAny(v, ";{}=") && strings.TrimSpace(v) == v {
		return v
	}

	return "{" + strings.ReplaceAll(v, "}", "}}") + "}"
}

func NewODBCConnectionManager(cfg utils.ConnectionManagerBase) utils.ConnectionManager {
	return NewConnectionManager(cfg, odbcDriverName, MakeODBCConnectionString)
}
