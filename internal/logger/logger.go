package logger

import (
	"fmt"
	"sync"
)

// Log levels accepted in config and on the command line.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process-wide logger. The level of the first call wins.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level)
	})
	return globalLogger
}

// ValidateLevel rejects level strings the logger would silently map to debug.
func ValidateLevel(level string) error {
	switch level {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		return nil
	}
	return fmt.Errorf("unknown log level %q (want debug, info, warn or error)", level)
}
