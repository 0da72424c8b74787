package zap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ydb-platform/ydb-connector-maxdb/library/go/core/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapifyFields(t *testing.T) {
	out := zapifyFields(
		log.String("host", "db"),
		log.UInt32("port", 7210),
		log.Bool("use_tls", true),
		log.Error(errors.New("boom")),
		log.Any("args", []any{"DBA"}),
		log.Any("nothing", nil),
	)

	types := make([]zapcore.FieldType, 0, len(out))
	for _, f := range out {
		types = append(types, f.Type)
	}

	assert.Equal(t, []zapcore.FieldType{
		zapcore.StringType,
		zapcore.Uint64Type,
		zapcore.BoolType,
		zapcore.ErrorType,
		zapcore.ReflectType,
		zapcore.ReflectType,
	}, types)
}

func TestZapifyLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ZapifyLevel(log.TraceLevel))
	assert.Equal(t, zapcore.WarnLevel, ZapifyLevel(log.WarnLevel))
	assert.Panics(t, func() { ZapifyLevel(log.Level(100500)) })
}

func TestLoggerWith(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	var logger log.Logger = &Logger{L: zap.New(core)}

	logger = log.With(logger, log.String("method", "Connect"))
	logger.WithName("maxdb").Info("connected", log.UInt32("port", 7210))
	logger.Trace("list tables")

	entries := logs.All()
	require.Len(t, entries, 2)

	require.Equal(t, "connected", entries[0].Message)
	require.Equal(t, "maxdb", entries[0].LoggerName)
	require.Equal(t, map[string]any{"method": "Connect", "port": uint64(7210)}, entries[0].ContextMap())

	require.Equal(t, "list tables", entries[1].Message)
	require.Equal(t, zapcore.DebugLevel, entries[1].Level)
}
