package log

import (
	"fmt"
	"strings"
)

// Level of logging
type Level int

// Standard log levels
const (
	TraceLevel Level = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// String values for standard log levels
const (
	TraceString = "trace"
	DebugString = "debug"
	InfoString  = "info"
	WarnString  = "warn"
	ErrorString = "error"
	FatalString = "fatal"
)

// String implements Stringer interface for Level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return TraceString
	case DebugLevel:
		return DebugString
	case InfoLevel:
		return InfoString
	case WarnLevel:
		return WarnString
	case ErrorLevel:
		return ErrorString
	case FatalLevel:
		return FatalString
	default:
		panic(fmt.Sprintf("unknown log level: %d", l))
	}
}

// ParseLevel parses log level from string.
func ParseLevel(l string) (Level, error) {
	switch strings.ToLower(l) {
	case TraceString:
		return TraceLevel, nil
	case DebugString:
		return DebugLevel, nil
	case InfoString:
		return InfoLevel, nil
	case WarnString, "warning":
		return WarnLevel, nil
	case ErrorString:
		return ErrorLevel, nil
	case FatalString:
		return FatalLevel, nil
	default:
		return FatalLevel, fmt.Errorf("unknown log level: %s", l)
	}
}
