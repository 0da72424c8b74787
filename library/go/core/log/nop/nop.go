package nop

import (
	"github.com/ydb-platform/ydb-connector-maxdb/library/go/core/log"
)

// Logger that does nothing
type Logger struct{}

var _ log.Logger = &Logger{}

func (l *Logger) WithName(string) log.Logger { return l }

func (l *Logger) Trace(string, ...log.Field) {}
func (l *Logger) Debug(string, ...log.Field) {}
func (l *Logger) Info(string, ...log.Field)  {}
func (l *Logger) Warn(string, ...log.Field)  {}
func (l *Logger) Error(string, ...log.Field) {}
func (l *Logger) Fatal(string, ...log.Field) {}
