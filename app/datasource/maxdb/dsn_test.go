package maxdb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ydb-platform/ydb-connector-maxdb/app/config"
	"github.com/ydb-platform/ydb-connector-maxdb/app/utils"
)

func TestMakeODBCConnectionString(t *testing.T) {
	type testCase struct {
		testName string
		dsc      config.DataSourceConfig
		output   string
	}

	tcs := []testCase{
		{
			testName: "plain",
			dsc: config.DataSourceConfig{
				Host:     "db.example",
				Port:     7210,
				User:     "DBA",
				Password: "secret",
				Database: "MAXDB",
			},
			output: "DRIVER={MaxDB (Unicode)};SERVERNODE=db.example:7210;SERVERDB=MAXDB;UID=DBA;PWD=secret;",
		},
		{
			testName: "custom_driver_and_braced_password",
			dsc: config.DataSourceConfig{
				Host:       "db.example",
				Port:       7210,
				User:       "DBA",
				Password:   "a;b}c",
				Database:   "MAXDB",
				ODBCDriver: "MaxDB",
			},
			output: "DRIVER={MaxDB};SERVERNODE=db.example:7210;SERVERDB=MAXDB;UID=DBA;PWD={a;b}}c};",
		},
		{
			testName: "tls",
			dsc: config.DataSourceConfig{
				Host:     "db.example",
				Port:     7210,
				User:     "DBA",
				Password: "secret",
				Database: "MAXDB",
				TLS:      config.TLSConfig{Enabled: true, CA: "/etc/ssl/ca.pem"},
			},
			output: "DRIVER={MaxDB (Unicode)};SERVERNODE=remotes://db.example:7210;SERVERDB=MAXDB;UID=DBA;PWD=secret;",
		},
	}

	for _, tc := range tcs {
		tc := tc

		t.Run(tc.testName, func(t *testing.T) {
			logger := utils.NewTestLogger(t)

			output, err := MakeODBCConnectionString(logger, &tc.dsc)
			require.NoError(t, err)
			require.Equal(t, tc.output, output)
		})
	}
}
