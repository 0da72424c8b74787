package utils

import (
	"context"

	"github.com/xwb1989/sqlparser"
	"github.com/ydb-platform/ydb-connector-maxdb/app/config"
	"github.com/ydb-platform/ydb-connector-maxdb/library/go/core/log"
)

// Connection is a live session to the data source.
type Connection interface {
	Begin(ctx context.Context) (Transaction, error)
	Close() error
}

// Transaction scopes exactly one statement: it is either committed or rolled back.
type Transaction interface {
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	// Exec returns the number of affected rows.
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Commit() error
	Rollback() error
}

type Rows interface {
	// Columns returns an empty slice when the statement produced no result set.
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type ConnectionManager interface {
	Make(ctx context.Context, logger log.Logger, dsc *config.DataSourceConfig) (Connection, error)
}

type ConnectionManagerBase struct {
	QueryLoggerFactory QueryLoggerFactory
}

// SQLFormatter knows the SQL dialect of the data source.
type SQLFormatter interface {
	// Render turns a parsed statement into dialect text
	Render(node sqlparser.SQLNode) (string, error)

	ListTablesQuery(schema string) (string, []any)

	ListColumnsQuery(schema, table string) (string, []any)

	// Sanitize names of databases, tables, columns, views, schemas
	SanitiseIdentifier(ident string) string
}
