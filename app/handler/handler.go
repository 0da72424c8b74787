// Package handler runs statements against a single MaxDB instance and owns the
// lifecycle of the connection used to do so.
package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/xwb1989/sqlparser"
	"github.com/ydb-platform/ydb-connector-maxdb/app/config"
	"github.com/ydb-platform/ydb-connector-maxdb/app/utils"
	"github.com/ydb-platform/ydb-connector-maxdb/library/go/core/log"
	"github.com/ydb-platform/ydb-connector-maxdb/library/go/core/log/nop"
)

const (
	Kind  = "maxdb"
	Title = "SAP MaxDB"

	tableNameColumn = "table_name"
)

// Handler is not safe for concurrent use.
type Handler struct {
	name      string
	dsc       config.DataSourceConfig
	preset    *Preset
	logger    log.Logger
	conn      utils.Connection
	connected bool
}

func (h *Handler) Name() string { return h.name }

func (h *Handler) IsConnected() bool { return h.connected }

// Connect opens the connection unless one is already open.
func (h *Handler) Connect(ctx context.Context) (utils.Connection, error) {
	if h.connected {
		return h.conn, nil
	}

	logger := utils.AnnotateLogger(h.logger, "Connect", &h.dsc)

	conn, err := h.preset.ConnectionManager.Make(ctx, logger, &h.dsc)
	if err != nil {
		logger.Error("connection failed", utils.ErrorToLogFields(err)...)

		return nil, fmt.Errorf("make connection: %w", err)
	}

	h.conn = conn
	h.connected = true

	logger.Debug("connected")

	return h.conn, nil
}

// Disconnect closes the connection if one is open. The handler is
// disconnected afterwards even when closing fails.
func (h *Handler) Disconnect() error {
	if !h.connected {
		return nil
	}

	conn := h.conn
	h.conn = nil
	h.connected = false

	if err := conn.Close(); err != nil {
		err = fmt.Errorf("%w: %w", utils.ErrDisconnect, err)
		utils.AnnotateLogger(h.logger, "Disconnect", &h.dsc).Error("close connection", log.Error(err))

		return err
	}

	return nil
}

// Close releases the connection held by the handler.
func (h *Handler) Close() error { return h.Disconnect() }

// CheckConnection probes the data source. A handler that was disconnected
// before the probe is disconnected after it.
func (h *Handler) CheckConnection(ctx context.Context) *StatusResponse {
	needToClose := !h.connected
	logger := utils.AnnotateLogger(h.logger, "CheckConnection", &h.dsc)

	if _, err := h.Connect(ctx); err != nil {
		h.conn = nil
		h.connected = false

		return newStatusResponse(err)
	}

	if needToClose {
		if err := h.Disconnect(); err != nil {
			logger.Warn("disconnect after probe", log.Error(err))
		}
	}

	return newStatusResponse(nil)
}

// NativeQuery runs the statement text as is.
func (h *Handler) NativeQuery(ctx context.Context, query string) *Response {
	return h.runQuery(ctx, query)
}

// Query renders the statement in the MaxDB dialect and runs it.
// Statement text is run through NativeQuery.
func (h *Handler) Query(ctx context.Context, stmt sqlparser.SQLNode) *Response {
	query, err := h.preset.SQLFormatter.Render(stmt)
	if err != nil {
		utils.AnnotateLogger(h.logger, "Query", &h.dsc).Error("render statement", utils.ErrorToLogFields(err)...)

		return NewErrorResponse(err)
	}

	return h.runQuery(ctx, query)
}

// GetTables lists the tables of the configured schema in a single table_name column.
func (h *Handler) GetTables(ctx context.Context) *Response {
	query, args := h.preset.SQLFormatter.ListTablesQuery(h.dsc.GetSchema())

	resp := h.runQuery(ctx, query, args...)

	switch resp.Type {
	case ResponseError:
		return resp
	case ResponseTable:
		if len(resp.Columns) == 0 {
			break
		}

		resp.Columns = resp.Columns[:1]
		resp.Columns[0] = tableNameColumn

		for i, row := range resp.Rows {
			resp.Rows[i] = row[:1]
		}

		return resp
	}

	return NewErrorResponse(fmt.Errorf("%w: list tables returned no result set", utils.ErrExecute))
}

// GetColumns describes the columns of a table in the configured schema.
func (h *Handler) GetColumns(ctx context.Context, table string) *Response {
	if table == "" {
		return NewErrorResponse(fmt.Errorf("%w: empty table name", utils.ErrInvalidRequest))
	}

	query, args := h.preset.SQLFormatter.ListColumnsQuery(h.dsc.GetSchema(), table)

	return h.runQuery(ctx, query, args...)
}

func (h *Handler) runQuery(ctx context.Context, query string, args ...any) *Response {
	logger := utils.AnnotateLogger(h.logger, "RunQuery", &h.dsc)
	needToClose := !h.connected

	conn, err := h.Connect(ctx)
	if err != nil {
		return NewErrorResponse(err)
	}

	if needToClose {
		defer func() {
			if err := h.Disconnect(); err != nil {
				logger.Warn("release transient connection", log.Error(err))
			}
		}()
	}

	ctx, cancel := context.WithTimeout(ctx, h.dsc.GetQueryTimeout())
	defer cancel()

	resp, err := h.doRunQuery(ctx, logger, conn, query, args...)
	if err != nil {
		// drivers report an expired deadline with errors of their own
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %w", err, ctxErr)
		}

		logger.Error("run query", append(utils.ErrorToLogFields(err), log.String("query", query))...)

		return NewErrorResponse(err)
	}

	return resp
}

func (h *Handler) doRunQuery(
	ctx context.Context,
	logger log.Logger,
	conn utils.Connection,
	query string,
	args ...any,
) (*Response, error) {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrExecute, err)
	}

	resp, err := execute(ctx, logger, tx, query, args...)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("rollback", log.Error(rbErr))
		}

		return nil, fmt.Errorf("%w: %w", utils.ErrExecute, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit: %w", utils.ErrExecute, err)
	}

	return resp, nil
}

func execute(
	ctx context.Context,
	logger log.Logger,
	tx utils.Transaction,
	query string,
	args ...any,
) (*Response, error) {
	if !returnsRows(query) {
		affected, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("exec: %w", err)
		}

		return NewOKResponse(affected), nil
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	defer func() { utils.LogCloserError(logger, rows, "close rows") }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	if len(columns) == 0 {
		return NewOKResponse(0), nil
	}

	data, err := materialize(rows, len(columns))
	if err != nil {
		return nil, err
	}

	return NewTableResponse(columns, data), nil
}

func materialize(rows utils.Rows, width int) ([][]any, error) {
	out := [][]any{}

	for rows.Next() {
		values := make([]any, width)
		acceptors := make([]any, width)

		for i := range values {
			acceptors[i] = &values[i]
		}

		if err := rows.Scan(acceptors...); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}

		out = append(out, values)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return out, nil
}

// returnsRows tells statements that go through Exec from those that may yield a result set.
func returnsRows(query string) bool {
	switch sqlparser.Preview(query) {
	case sqlparser.StmtInsert, sqlparser.StmtReplace, sqlparser.StmtUpdate,
		sqlparser.StmtDelete, sqlparser.StmtDDL, sqlparser.StmtSet:
		return false
	default:
		return true
	}
}

func NewHandler(name string, dsc config.DataSourceConfig, preset *Preset, logger log.Logger) *Handler {
	if logger == nil {
		logger = &nop.Logger{}
	}

	return &Handler{
		name:   name,
		dsc:    dsc,
		preset: preset,
		logger: log.With(logger, log.String("handler", name)),
	}
}
