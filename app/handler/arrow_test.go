package handler

import (
	"bytes"
	"testing"
	"time"

	"github.com/apache/arrow/go/v13/arrow"
	"github.com/apache/arrow/go/v13/arrow/array"
	"github.com/apache/arrow/go/v13/arrow/ipc"
	"github.com/apache/arrow/go/v13/arrow/memory"
	"github.com/stretchr/testify/require"
)

func TestResponseRecord(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	ts := time.Date(2023, 8, 1, 12, 0, 0, 0, time.UTC)

	resp := NewTableResponse(
		[]string{"ID", "NAME", "PRICE", "ACTIVE", "CREATED", "NOTE"},
		[][]any{
			{int64(1), "apple", 1.5, true, ts, nil},
			{int32(2), nil, int64(3), false, ts, nil},
		},
	)

	record, err := resp.Record(mem)
	require.NoError(t, err)

	defer record.Release()

	require.Equal(t, int64(2), record.NumRows())
	require.Equal(t, int64(6), record.NumCols())

	schema := record.Schema()
	require.Equal(t, arrow.PrimitiveTypes.Int64, schema.Field(0).Type)
	require.Equal(t, arrow.BinaryTypes.String, schema.Field(1).Type)
	require.Equal(t, arrow.PrimitiveTypes.Float64, schema.Field(2).Type)
	require.Equal(t, arrow.FixedWidthTypes.Boolean, schema.Field(3).Type)
	require.Equal(t, arrow.FixedWidthTypes.Timestamp_us, schema.Field(4).Type)
	require.Equal(t, arrow.BinaryTypes.String, schema.Field(5).Type)

	ids := record.Column(0).(*array.Int64)
	require.Equal(t, []int64{1, 2}, ids.Int64Values())

	names := record.Column(1).(*array.String)
	require.Equal(t, "apple", names.Value(0))
	require.True(t, names.IsNull(1))

	prices := record.Column(2).(*array.Float64)
	require.Equal(t, []float64{1.5, 3}, prices.Float64Values())

	created := record.Column(4).(*array.Timestamp)
	require.Equal(t, arrow.Timestamp(ts.UnixMicro()), created.Value(0))

	require.Equal(t, 2, record.Column(5).NullN())
}

func TestResponseRecordMixedTypesFallBackToString(t *testing.T) {
	mem := memory.NewGoAllocator()

	resp := NewTableResponse([]string{"V"}, [][]any{{int64(1)}, {"two"}})

	record, err := resp.Record(mem)
	require.NoError(t, err)

	defer record.Release()

	values := record.Column(0).(*array.String)
	require.Equal(t, "1", values.Value(0))
	require.Equal(t, "two", values.Value(1))
}

func TestResponseRecordRejectsNonTable(t *testing.T) {
	_, err := NewOKResponse(1).Record(memory.NewGoAllocator())
	require.Error(t, err)
}

func TestWriteArrowIPC(t *testing.T) {
	resp := NewTableResponse([]string{"TABLE_NAME"}, [][]any{{"CUSTOMERS"}, {"ORDERS"}})

	var buf bytes.Buffer

	require.NoError(t, resp.WriteArrowIPC(&buf))

	reader, err := ipc.NewReader(&buf)
	require.NoError(t, err)

	defer reader.Release()

	require.True(t, reader.Next())

	record := reader.Record()
	require.Equal(t, int64(2), record.NumRows())
	require.Equal(t, "TABLE_NAME", record.Schema().Field(0).Name)
	require.Equal(t, "ORDERS", record.Column(0).(*array.String).Value(1))
	require.False(t, reader.Next())
}
