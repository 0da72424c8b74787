package maxdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ydb-platform/ydb-connector-maxdb/app/config"
	"github.com/ydb-platform/ydb-connector-maxdb/app/utils"
	"github.com/ydb-platform/ydb-connector-maxdb/library/go/core/log"
)

var _ utils.Connection = (*Connection)(nil)

// Connection is a database/sql pool capped at a single session.
type Connection struct {
	*sql.DB
	logger utils.QueryLogger
}

func NewConnection(db *sql.DB, logger utils.QueryLogger) *Connection {
	return &Connection{DB: db, logger: logger}
}

func (c *Connection) Begin(ctx context.Context) (utils.Transaction, error) {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	return &transaction{tx: tx, logger: c.logger}, nil
}

var _ utils.Transaction = (*transaction)(nil)

type transaction struct {
	tx     *sql.Tx
	logger utils.QueryLogger
}

func (t *transaction) Query(ctx context.Context, query string, args ...any) (utils.Rows, error) {
	t.logger.Dump(query, args...)

	out, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query context: %w", err)
	}

	if err := out.Err(); err != nil {
		defer utils.LogCloserError(t.logger, out, "close rows")

		return nil, fmt.Errorf("rows err: %w", err)
	}

	return out, nil
}

func (t *transaction) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	t.logger.Dump(query, args...)

	result, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("exec context: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		// not every driver reports it for DDL
		t.logger.Debug("rows affected unavailable", log.Error(err))

		return 0, nil
	}

	return affected, nil
}

func (t *transaction) Commit() error { return t.tx.Commit() }

func (t *transaction) Rollback() error { return t.tx.Rollback() }

// DSNBuilder turns a data source config into a driver specific connection string.
type DSNBuilder func(logger log.Logger, dsc *config.DataSourceConfig) (string, error)

var _ utils.ConnectionManager = (*connectionManager)(nil)

type connectionManager struct {
	utils.ConnectionManagerBase
	driverName string
	makeDSN    DSNBuilder
}

func (c *connectionManager) Make(
	ctx context.Context,
	logger log.Logger,
	dsc *config.DataSourceConfig,
) (utils.Connection, error) {
	dsn, err := c.makeDSN(logger, dsc)
	if err != nil {
		return nil, fmt.Errorf("%w: make dsn: %w", utils.ErrConnect, err)
	}

	db, err := sql.Open(c.driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", utils.ErrConnect, c.driverName, err)
	}

	// exactly one live session per handler
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, dsc.GetConnectTimeout())
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		utils.LogCloserError(logger, db, "close database after failed ping")

		return nil, fmt.Errorf("%w: conn ping: %w", utils.ErrConnect, err)
	}

	return NewConnection(db, c.QueryLoggerFactory.Make(logger)), nil
}

// NewConnectionManager serves any database/sql driver registered under driverName.
func NewConnectionManager(
	cfg utils.ConnectionManagerBase,
	driverName string,
	makeDSN DSNBuilder,
) utils.ConnectionManager {
	return &connectionManager{ConnectionManagerBase: cfg, driverName: driverName, makeDSN: makeDSN}
}
