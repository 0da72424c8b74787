package utils

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ydb-platform/ydb-connector-maxdb/app/config"
	"github.com/ydb-platform/ydb-go-genproto/protos/Ydb"
)

func TestStatusFromError(t *testing.T) {
	driverErr := errors.New("-4008 unknown user name/password combination")

	testCases := []struct {
		err    error
		status Ydb.StatusIds_StatusCode
	}{
		{nil, Ydb.StatusIds_SUCCESS},
		{fmt.Errorf("%w: %w", ErrConnect, driverErr), Ydb.StatusIds_UNAVAILABLE},
		{fmt.Errorf("%w: %w", ErrConnect, context.DeadlineExceeded), Ydb.StatusIds_TIMEOUT},
		{fmt.Errorf("query: %w", context.Canceled), Ydb.StatusIds_CANCELLED},
		{fmt.Errorf("%w: %w", ErrExecute, driverErr), Ydb.StatusIds_GENERIC_ERROR},
		{fmt.Errorf("%w: unsupported node", ErrRender), Ydb.StatusIds_BAD_REQUEST},
		{fmt.Errorf("validate: %w", config.ErrInvalidConfig), Ydb.StatusIds_BAD_REQUEST},
		{fmt.Errorf("pick: %w", ErrDriverNotSupported), Ydb.StatusIds_UNSUPPORTED},
		{driverErr, Ydb.StatusIds_INTERNAL_ERROR},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.status, StatusFromError(tc.err), "%v", tc.err)
	}
}
