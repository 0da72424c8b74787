package client

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ydb-platform/ydb-connector-maxdb/app/handler"
)

const (
	formatTable = "table"
	formatArrow = "arrow"
)

func renderResponse(w io.Writer, resp *handler.Response, format string) error {
	switch resp.Type {
	case handler.ResponseError:
		return fmt.Errorf("%v: %s", resp.Status, resp.ErrorMessage)
	case handler.ResponseOK:
		_, _ = fmt.Fprintf(w, "OK (%d rows affected)\n", resp.AffectedRows)

		return nil
	}

	switch format {
	case formatArrow:
		if err := resp.WriteArrowIPC(w); err != nil {
			return fmt.Errorf("write arrow IPC stream: %w", err)
		}

		return nil
	case formatTable:
		renderTable(w, resp)

		return nil
	default:
		return fmt.Errorf("unknown output format '%s'", format)
	}
}

func renderTable(w io.Writer, resp *handler.Response) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(resp.Columns))
	for i, col := range resp.Columns {
		header[i] = col
	}

	t.AppendHeader(header)

	for _, values := range resp.Rows {
		row := make(table.Row, len(values))
		for i, v := range values {
			row[i] = formatValue(v)
		}

		t.AppendRow(row)
	}

	t.Render()

	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(resp.Rows))
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case time.Time:
		return val.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(val)
	}
}
