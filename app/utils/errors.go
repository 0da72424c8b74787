package utils

import (
	"context"
	"errors"

	"github.com/ydb-platform/ydb-connector-maxdb/app/config"
	"github.com/ydb-platform/ydb-connector-maxdb/library/go/core/log"
	"github.com/ydb-platform/ydb-go-genproto/protos/Ydb"
)

var (
	ErrConnect            = errors.New("connect")
	ErrDisconnect         = errors.New("disconnect")
	ErrExecute            = errors.New("execute statement")
	ErrRender             = errors.New("render statement")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrDriverNotSupported = errors.New("driver not supported")
)

// StatusFromError picks the status code reported to the federation layer.
func StatusFromError(err error) Ydb.StatusIds_StatusCode {
	switch {
	case err == nil:
		return Ydb.StatusIds_SUCCESS
	case errors.Is(err, context.DeadlineExceeded):
		return Ydb.StatusIds_TIMEOUT
	case errors.Is(err, context.Canceled):
		return Ydb.StatusIds_CANCELLED
	case errors.Is(err, ErrConnect):
		return Ydb.StatusIds_UNAVAILABLE
	case errors.Is(err, ErrRender), errors.Is(err, ErrInvalidRequest), errors.Is(err, config.ErrInvalidConfig):
		return Ydb.StatusIds_BAD_REQUEST
	case errors.Is(err, ErrDriverNotSupported):
		return Ydb.StatusIds_UNSUPPORTED
	case errors.Is(err, ErrExecute):
		return Ydb.StatusIds_GENERIC_ERROR
	default:
		return Ydb.StatusIds_INTERNAL_ERROR
	}
}

func ErrorToLogFields(err error) []log.Field {
	return []log.Field{
		log.Error(err),
		log.String("status", StatusFromError(err).String()),
	}
}
