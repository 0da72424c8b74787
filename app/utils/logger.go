package utils

import (
	"fmt"
	"io"
	"testing"

	"github.com/ydb-platform/ydb-connector-maxdb/app/config"
	"github.com/ydb-platform/ydb-connector-maxdb/library/go/core/log"
	"github.com/ydb-platform/ydb-connector-maxdb/library/go/core/log/zap"
	"go.uber.org/zap/zaptest"
)

func AnnotateLogger(logger log.Logger, method string, dsc *config.DataSourceConfig) log.Logger {
	logger = log.With(logger, log.String("method", method))

	if dsc != nil {
		logger = log.With(logger,
			log.String("driver", string(dsc.Driver)),
			log.String("host", dsc.Host),
			log.UInt32("port", dsc.Port),
			log.String("database", dsc.Database),
			log.String("user", dsc.User),
			log.Bool("use_tls", dsc.TLS.Enabled),
		)
	}

	return logger
}

func LogCloserError(logger log.Logger, closer io.Closer, msg string) {
	if err := closer.Close(); err != nil {
		logger.Error(msg, log.Error(err))
	}
}

func NewLoggerFromConfig(cfg *config.LoggerConfig) (log.Logger, error) {
	if cfg == nil || cfg.Level == "" {
		return NewDefaultLogger()
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	return newConsoleLogger(level)
}

func NewDefaultLogger() (log.Logger, error) { return newConsoleLogger(log.InfoLevel) }

func newConsoleLogger(level log.Level) (log.Logger, error) {
	logger, err := zap.New(zap.ConsoleConfig(level))
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}

	return logger, nil
}

func NewTestLogger(t *testing.T) log.Logger { return &zap.Logger{L: zaptest.NewLogger(t)} }

type QueryLoggerFactory struct {
	enableQueryLogging bool
}

func NewQueryLoggerFactory(cfg *config.LoggerConfig) QueryLoggerFactory {
	return QueryLoggerFactory{enableQueryLogging: cfg != nil && cfg.EnableSQLQueryLogging}
}

func (f *QueryLoggerFactory) Make(logger log.Logger) QueryLogger {
	return QueryLogger{Logger: logger, enabled: f.enableQueryLogging}
}

type QueryLogger struct {
	log.Logger
	enabled bool
}

func (ql *QueryLogger) Dump(query string, args ...any) {
	if !ql.enabled {
		return
	}

	logFields := []log.Field{log.String("query", query)}
	if len(args) > 0 {
		logFields = append(logFields, log.Any("args", args))
	}

	ql.Debug("execute SQL query", logFields...)
}
