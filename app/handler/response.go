package handler

import (
	"github.com/ydb-platform/ydb-connector-maxdb/app/utils"
	"github.com/ydb-platform/ydb-go-genproto/protos/Ydb"
)

type ResponseType int

const (
	// ResponseTable carries a result set.
	ResponseTable ResponseType = iota
	// ResponseOK reports a statement that produced no result set.
	ResponseOK
	// ResponseError reports a failure; ErrorMessage and Status are set.
	ResponseError
)

func (t ResponseType) String() string {
	switch t {
	case ResponseTable:
		return "TABLE"
	case ResponseOK:
		return "OK"
	case ResponseError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Response is the outcome of a statement.
type Response struct {
	Type         ResponseType
	Columns      []string
	Rows         [][]any
	AffectedRows int64
	ErrorMessage string
	Status       Ydb.StatusIds_StatusCode
}

func NewTableResponse(columns []string, rows [][]any) *Response {
	return &Response{
		Type:    ResponseTable,
		Columns: columns,
		Rows:    rows,
		Status:  Ydb.StatusIds_SUCCESS,
	}
}

func NewOKResponse(affectedRows int64) *Response {
	return &Response{
		Type:         ResponseOK,
		AffectedRows: affectedRows,
		Status:       Ydb.StatusIds_SUCCESS,
	}
}

func NewErrorResponse(err error) *Response {
	return &Response{
		Type:         ResponseError,
		ErrorMessage: err.Error(),
		Status:       utils.StatusFromError(err),
	}
}

// StatusResponse is the outcome of a connection probe.
type StatusResponse struct {
	Success      bool
	ErrorMessage string
	Status       Ydb.StatusIds_StatusCode
}

func newStatusResponse(err error) *StatusResponse {
	if err == nil {
		return &StatusResponse{Success: true, Status: Ydb.StatusIds_SUCCESS}
	}

	return &StatusResponse{ErrorMessage: err.Error(), Status: utils.StatusFromError(err)}
}
