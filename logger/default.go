package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
	initOnce      sync.Once
)

// Init arms the process-wide default logger. Only the first call does
// anything: it reports performed=true together with the construction
// result. Every later call reports performed=false and a nil error,
// even after a failed or shut-down first attempt.
func Init(cfg Config) (performed bool, err error) {
	initOnce.Do(func() {
		performed = true
		var l *Logger
		l, err = New(cfg)
		if err != nil {
			return
		}
		defaultMu.Lock()
		defaultLogger = l
		defaultMu.Unlock()
	})
	return performed, err
}

// InitGB arms the default logger with size limits given in gigabytes.
func InitGB(prefix string, maxFileGB, maxTotalGB float64, debug, console bool) (bool, error) {
	cfg := Config{
		Prefix:       prefix,
		Console:      console,
		MaxFileSize:  int64(maxFileGB * (1 << 30)),
		MaxTotalSize: int64(maxTotalGB * (1 << 30)),
	}
	if debug {
		cfg.Level = DebugLevel
	}
	return Init(cfg)
}

// Default returns the default logger, or nil before Init succeeds.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Shutdown closes the default logger and detaches it. The package-level
// functions become no-ops again; Init stays consumed.
func Shutdown() error {
	defaultMu.Lock()
	l := defaultLogger
	defaultLogger = nil
	defaultMu.Unlock()
	if l == nil {
		return nil
	}
	return l.Close()
}

// sugar returns the default logger's sugared core. The package-level
// functions wrap it one call deep, same as the Logger methods, so the
// caller annotation needs no extra skip.
func sugar() *zap.SugaredLogger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if defaultLogger == nil {
		return nil
	}
	return defaultLogger.sugar
}

// Package-level convenience functions using the default logger. All of
// them are safe no-ops while no default is armed.

// Debugf logs a formatted debug message using the default logger.
func Debugf(format string, args ...interface{}) {
	if s := sugar(); s != nil {
		s.Debugf(format, args...)
	}
}

// Infof logs a formatted info message using the default logger.
func Infof(format string, args ...interface{}) {
	if s := sugar(); s != nil {
		s.Infof(format, args...)
	}
}

// Warnf logs a formatted warning message using the default logger.
func Warnf(format string, args ...interface{}) {
	if s := sugar(); s != nil {
		s.Warnf(format, args...)
	}
}

// Errorf logs a formatted error message using the default logger.
func Errorf(format string, args ...interface{}) {
	if s := sugar(); s != nil {
		s.Errorf(format, args...)
	}
}

// SetLevel changes the default logger's minimum emitted level.
func SetLevel(lvl Level) {
	if l := Default(); l != nil {
		l.SetLevel(lvl)
	}
}

// GetLevel reports the default logger's minimum emitted level, or
// InfoLevel while no default is armed.
func GetLevel() Level {
	if l := Default(); l != nil {
		return l.Level()
	}
	return InfoLevel
}

// Sync flushes the default logger's streams.
func Sync() error {
	if l := Default(); l != nil {
		return l.Sync()
	}
	return nil
}
