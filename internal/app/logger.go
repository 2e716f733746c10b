package app

import (
	"io"
	"log/slog"
	"strings"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLogLevel maps a level name to its slog level. Unknown names report
// false.
func ParseLogLevel(name string) (slog.Level, bool) {
	level, ok := logLevels[strings.ToLower(name)]
	return level, ok
}

// newLogger creates an isolated slog.Logger writing to outW. It never
// touches the global logger. Unknown levels fall back to info and any
// format other than "json" yields text.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, ok := ParseLogLevel(levelStr)
	if !ok {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(formatStr, "json") {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
