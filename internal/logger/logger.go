// Package logger wraps zap construction so both binaries configure
// structured logging the same way.
package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Logger carries the shared zap instance.
type Logger struct {
	Log *zap.Logger
}

// New returns a Logger with a no-op zap instance; call Init to activate it.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init replaces the no-op instance with a production logger at the given
// level ("Debug", "Info", "Warn", "Error").
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(strings.ToLower(level))
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	log, err := cfg.Build()
	if err != nil {
		return err
	}

	l.Log = log
	return nil
}
