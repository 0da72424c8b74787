package zap

import (
	"fmt"

	"github.com/ydb-platform/ydb-connector-maxdb/library/go/core/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var levels = map[log.Level]zapcore.Level{
	log.TraceLevel: zapcore.DebugLevel,
	log.DebugLevel: zapcore.DebugLevel,
	log.InfoLevel:  zapcore.InfoLevel,
	log.WarnLevel:  zapcore.WarnLevel,
	log.ErrorLevel: zapcore.ErrorLevel,
	log.FatalLevel: zapcore.FatalLevel,
}

// ZapifyLevel maps a connector log level onto zap. Trace has no zap
// counterpart and is written as debug.
func ZapifyLevel(level log.Level) zapcore.Level {
	zl, ok := levels[level]
	if !ok {
		panic(fmt.Sprintf("unknown log level: %d", level))
	}

	return zl
}

func zapifyFields(fields ...log.Field) []zapcore.Field {
	out := make([]zapcore.Field, len(fields))

	for i, f := range fields {
		switch f.Type() {
		case log.FieldTypeString:
			out[i] = zap.String(f.Key(), f.String())
		case log.FieldTypeBoolean:
			out[i] = zap.Bool(f.Key(), f.Bool())
		case log.FieldTypeUnsigned:
			out[i] = zap.Uint64(f.Key(), f.Unsigned())
		case log.FieldTypeError:
			out[i] = zap.NamedError(f.Key(), f.Error())
		default:
			out[i] = zap.Any(f.Key(), f.Interface())
		}
	}

	return out
}
