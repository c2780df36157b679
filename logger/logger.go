package logger

import (
	"errors"
	"os"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/rotolog/rotation"
)

// A rotation.Sink is handed to zap cores as a write syncer.
var _ zapcore.WriteSyncer = (*rotation.Sink)(nil)

// streams lists the file streams a Logger maintains. Every stream
// receives the records at or above its floor, so a record can land in
// up to three files.
var streams = []struct {
	tag   string
	floor zapcore.Level
}{
	{"INFO", zapcore.DebugLevel},
	{"WARN", zapcore.WarnLevel},
	{"ERROR", zapcore.ErrorLevel},
}

// Logger fans formatted records out to the rotating file streams and,
// optionally, stderr. Methods are safe for concurrent use.
type Logger struct {
	sugar *zap.SugaredLogger
	level zap.AtomicLevel

	mu      sync.Mutex
	sinks   []*rotation.Sink
	buffers []*zapcore.BufferedWriteSyncer
	closed  bool
}

// streamEnabler gates a stream on its floor and the shared dynamic level.
func streamEnabler(floor zapcore.Level, level zap.AtomicLevel) zapcore.LevelEnabler {
	return zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= floor && level.Enabled(lvl)
	})
}

// New builds a Logger from cfg. It opens one rotating sink per stream
// under cfg.Prefix and fails if neither file nor console output is
// configured.
func New(cfg Config) (*Logger, error) {
	applyDefaults(&cfg)
	if cfg.Prefix == "" && !cfg.Console {
		return nil, errors.New("logger: config needs a file prefix or console output")
	}
	enc, err := newEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	l := &Logger{level: zap.NewAtomicLevelAt(cfg.Level)}
	var cores []zapcore.Core
	if cfg.Prefix != "" {
		for _, st := range streams {
			sink, err := rotation.NewSink(rotation.Config{
				Prefix:        cfg.Prefix,
				Tag:           st.tag,
				MaxFileSize:   cfg.MaxFileSize,
				MaxTotalSize:  cfg.MaxTotalSize,
				CheckInterval: cfg.CheckInterval,
			})
			if err != nil {
				l.Close()
				return nil, err
			}
			l.sinks = append(l.sinks, sink)

			ws := zapcore.WriteSyncer(sink)
			if cfg.BufferSize > 0 {
				buf := &zapcore.BufferedWriteSyncer{
					WS:            ws,
					Size:          cfg.BufferSize,
					FlushInterval: cfg.FlushInterval,
				}
				l.buffers = append(l.buffers, buf)
				ws = buf
			}
			cores = append(cores, zapcore.NewCore(enc.Clone(), ws, streamEnabler(st.floor, l.level)))
		}
	}
	if cfg.Console {
		ce := zapcore.NewConsoleEncoder(encoderConfig())
		cores = append(cores, zapcore.NewCore(ce, zapcore.Lock(os.Stderr), l.level))
	}

	var opts []zap.Option
	if !cfg.DisableCaller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(1))
	}
	l.sugar = zap.New(zapcore.NewTee(cores...), opts...).Sugar()
	return l, nil
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// SetLevel changes the minimum emitted level at runtime.
func (l *Logger) SetLevel(lvl Level) {
	l.level.SetLevel(lvl)
}

// Level reports the current minimum emitted level.
func (l *Logger) Level() Level {
	return l.level.Level()
}

// Sync flushes buffered records and forces the stream files to disk.
func (l *Logger) Sync() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	var err error
	if len(l.buffers) > 0 {
		// BufferedWriteSyncer.Sync drains the buffer and syncs the
		// sink underneath it.
		for _, b := range l.buffers {
			err = multierr.Append(err, b.Sync())
		}
		return err
	}
	for _, s := range l.sinks {
		err = multierr.Append(err, s.Sync())
	}
	return err
}

// Close flushes and closes every stream. Further writes are dropped by
// the closed sinks. Close is idempotent.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true

	var err error
	for _, b := range l.buffers {
		err = multierr.Append(err, b.Stop())
	}
	for _, s := range l.sinks {
		err = multierr.Append(err, s.Close())
	}
	l.buffers, l.sinks = nil, nil
	return err
}

// Stats returns a rotation counter snapshot per stream tag.
func (l *Logger) Stats() map[string]rotation.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]rotation.Snapshot, len(l.sinks))
	for _, s := range l.sinks {
		out[s.Tag()] = s.Stats()
	}
	return out
}
