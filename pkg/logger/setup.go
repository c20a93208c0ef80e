package logger

import (
	"io"
	"strings"
)

// ParseLevel maps a flag value to a LogLevel, defaulting to InfoLevel.
func ParseLevel(level string) LogLevel {
	switch LogLevel(strings.ToLower(strings.TrimSpace(level))) {
	case DebugLevel:
		return DebugLevel
	case WarnLevel:
		return WarnLevel
	case ErrorLevel:
		return ErrorLevel
	case DisabledLevel:
		return DisabledLevel
	default:
		return InfoLevel
	}
}

func SetupLogger(out io.Writer, logLevel string, logJSON, logSource bool) Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(logLevel)
	cfg.JSON = logJSON
	cfg.AddSource = logSource
	if out != nil {
		cfg.Output = out
	}
	return NewLogger(cfg)
}
