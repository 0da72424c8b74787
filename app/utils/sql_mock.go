package utils

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/ydb-platform/ydb-connector-maxdb/app/config"
	"github.com/ydb-platform/ydb-connector-maxdb/library/go/core/log"
)

var _ ConnectionManager = (*ConnectionManagerMock)(nil)

type ConnectionManagerMock struct {
	mock.Mock
}

func (m *ConnectionManagerMock) Make(
	ctx context.Context,
	logger log.Logger,
	dsc *config.DataSourceConfig,
) (Connection, error) {
	args := m.Called(dsc)

	conn, _ := args.Get(0).(Connection)

	return conn, args.Error(1)
}

var _ Connection = (*ConnectionMock)(nil)

type ConnectionMock struct {
	mock.Mock
}

func (m *ConnectionMock) Begin(ctx context.Context) (Transaction, error) {
	args := m.Called()

	tx, _ := args.Get(0).(Transaction)

	return tx, args.Error(1)
}

func (m *ConnectionMock) Close() error {
	return m.Called().Error(0)
}

var _ Transaction = (*TransactionMock)(nil)

type TransactionMock struct {
	mock.Mock
}

func (m *TransactionMock) Query(ctx context.Context, query string, params ...any) (Rows, error) {
	called := []any{query}
	called = append(called, params...)
	args := m.Called(called...)

	rows, _ := args.Get(0).(Rows)

	return rows, args.Error(1)
}

func (m *TransactionMock) Exec(ctx context.Context, query string, params ...any) (int64, error) {
	called := []any{query}
	called = append(called, params...)
	args := m.Called(called...)

	return args.Get(0).(int64), args.Error(1)
}

func (m *TransactionMock) Commit() error {
	return m.Called().Error(0)
}

func (m *TransactionMock) Rollback() error {
	return m.Called().Error(0)
}

var _ Rows = (*RowsMock)(nil)

type RowsMock struct {
	mock.Mock
	PredefinedData [][]any
	scanCalls      int
}

func (m *RowsMock) Columns() ([]string, error) {
	args := m.Called()

	columns, _ := args.Get(0).([]string)

	return columns, args.Error(1)
}

func (m *RowsMock) Close() error {
	return m.Called().Error(0)
}

func (m *RowsMock) Err() error {
	return m.Called().Error(0)
}

func (m *RowsMock) Next() bool {
	return m.Called().Bool(0)
}

func (m *RowsMock) Scan(dest ...any) error {
	args := m.Called(len(dest))

	// mutate acceptors by reference
	if m.scanCalls < len(m.PredefinedData) {
		row := m.PredefinedData[m.scanCalls]

		for i, d := range dest {
			if acceptor, ok := d.(*any); ok {
				*acceptor = row[i]
			}
		}

		m.scanCalls++
	}

	return args.Error(0)
}
