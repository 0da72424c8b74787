package handler

import (
	"fmt"
	"io"
	"time"

	"github.com/apache/arrow/go/v13/arrow"
	"github.com/apache/arrow/go/v13/arrow/array"
	"github.com/apache/arrow/go/v13/arrow/ipc"
	"github.com/apache/arrow/go/v13/arrow/memory"
)

type columnKind int

const (
	kindUnknown columnKind = iota
	kindInt
	kindFloat
	kindBool
	kindTime
	kindString
)

// Record converts a table response into an Arrow record. The caller releases it.
func (r *Response) Record(mem memory.Allocator) (arrow.Record, error) {
	if r.Type != ResponseTable {
		return nil, fmt.Errorf("response of type %v has no result set", r.Type)
	}

	fields := make([]arrow.Field, len(r.Columns))
	kinds := make([]columnKind, len(r.Columns))

	for i, name := range r.Columns {
		kinds[i] = r.inferKind(i)
		fields[i] = arrow.Field{Name: name, Type: kinds[i].arrowType(), Nullable: true}
	}

	schema := arrow.NewSchema(fields, nil)

	builder := array.NewRecordBuilder(mem, schema)
	defer builder.Release()

	for _, row := range r.Rows {
		if len(row) != len(kinds) {
			return nil, fmt.Errorf("expected row of %d values, got %d", len(kinds), len(row))
		}

		for i, value := range row {
			if err := appendValue(builder.Field(i), kinds[i], value); err != nil {
				return nil, fmt.Errorf("column '%s': %w", r.Columns[i], err)
			}
		}
	}

	return builder.NewRecord(), nil
}

// WriteArrowIPC serializes a table response as an Arrow IPC stream.
func (r *Response) WriteArrowIPC(w io.Writer) error {
	mem := memory.NewGoAllocator()

	record, err := r.Record(mem)
	if err != nil {
		return fmt.Errorf("make record: %w", err)
	}

	defer record.Release()

	writer := ipc.NewWriter(w, ipc.WithSchema(record.Schema()), ipc.WithAllocator(mem))

	if err := writer.Write(record); err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("close arrow writer: %w", err)
	}

	return nil
}

func (r *Response) inferKind(col int) columnKind {
	kind := kindUnknown

	for _, row := range r.Rows {
		if col >= len(row) || row[col] == nil {
			continue
		}

		next := kindOf(row[col])

		switch {
		case kind == kindUnknown || kind == next:
			kind = next
		case (kind == kindInt && next == kindFloat) || (kind == kindFloat && next == kindInt):
			kind = kindFloat
		default:
			return kindString
		}
	}

	if kind == kindUnknown {
		return kindString
	}

	return kind
}

func kindOf(value any) columnKind {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint8, uint16, uint32:
		return kindInt
	case float32, float64:
		return kindFloat
	case bool:
		return kindBool
	case time.Time:
		return kindTime
	default:
		return kindString
	}
}

func (k columnKind) arrowType() arrow.DataType {
	switch k {
	case kindInt:
		return arrow.PrimitiveTypes.Int64
	case kindFloat:
		return arrow.PrimitiveTypes.Float64
	case kindBool:
		return arrow.FixedWidthTypes.Boolean
	case kindTime:
		return arrow.FixedWidthTypes.Timestamp_us
	default:
		return arrow.BinaryTypes.String
	}
}

func appendValue(builder array.Builder, kind columnKind, value any) error {
	if value == nil {
		builder.AppendNull()

		return nil
	}

	switch kind {
	case kindInt:
		v, ok := toInt64(value)
		if !ok {
			return fmt.Errorf("unexpected value %v of type %T", value, value)
		}

		builder.(*array.Int64Builder).Append(v)
	case kindFloat:
		if v, ok := toInt64(value); ok {
			builder.(*array.Float64Builder).Append(float64(v))

			return nil
		}

		switch v := value.(type) {
		case float32:
			builder.(*array.Float64Builder).Append(float64(v))
		case float64:
			builder.(*array.Float64Builder).Append(v)
		default:
			return fmt.Errorf("unexpected value %v of type %T", value, value)
		}
	case kindBool:
		builder.(*array.BooleanBuilder).Append(value.(bool))
	case kindTime:
		builder.(*array.TimestampBuilder).Append(arrow.Timestamp(value.(time.Time).UnixMicro()))
	default:
		builder.(*array.StringBuilder).Append(fmt.Sprint(value))
	}

	return nil
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	default:
		return 0, false
	}
}
