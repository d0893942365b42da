package state

import (
	"log/slog"
	"sync"
)

var (
	logMu  sync.RWMutex
	global = slog.New(slog.DiscardHandler)
)

// SetLogger replaces the package logger used by containers created without
// an explicit logger. A nil logger restores the discard default.
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logMu.Lock()
	global = logger
	logMu.Unlock()
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return global
}

func loggerOr(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return Logger()
}
