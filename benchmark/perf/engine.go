package perf

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/philipp01105/rotolog/logger"
)

// Engine is one logging backend under load. log spreads a worker's
// records across the four levels by worker number.
type Engine struct {
	Name  string
	log   func(thread, iteration int)
	close func() error
}

// Close releases the engine's files and goroutines.
func (e *Engine) Close() error {
	if e.close == nil {
		return nil
	}
	return e.close()
}

// NewEngine builds the backend named by cfg.Engine.
func NewEngine(cfg Config) (*Engine, error) {
	switch cfg.Engine {
	case EngineRotolog:
		return newRotologEngine(cfg)
	case EngineZap:
		return newZapEngine(cfg)
	default:
		return nil, fmt.Errorf("perf: unknown engine %q", cfg.Engine)
	}
}

func newRotologEngine(cfg Config) (*Engine, error) {
	tmpl, err := buildTemplate(cfg.MessageSize)
	if err != nil {
		return nil, err
	}
	lcfg := logger.Config{
		Prefix:       filepath.Join(cfg.Dir, cfg.Name),
		Console:      cfg.Console,
		MaxFileSize:  cfg.MaxFileSize,
		MaxTotalSize: cfg.MaxTotalSize,
		BufferSize:   cfg.BufferSize,
	}
	if cfg.Debug {
		lcfg.Level = logger.DebugLevel
	}
	l, err := logger.New(lcfg)
	if err != nil {
		return nil, err
	}
	return &Engine{
		Name: EngineRotolog,
		log: func(thread, iteration int) {
			switch thread % 4 {
			case 0:
				l.Debugf(tmpl, thread, iteration)
			case 1:
				l.Infof(tmpl, thread, iteration)
			case 2:
				l.Warnf(tmpl, thread, iteration)
			default:
				l.Errorf(tmpl, thread, iteration)
			}
		},
		close: l.Close,
	}, nil
}

// newZapEngine wires zap over lumberjack as the ecosystem baseline.
func newZapEngine(cfg Config) (*Engine, error) {
	tmpl, err := buildTemplate(cfg.MessageSize)
	if err != nil {
		return nil, err
	}
	maxMB := int(cfg.MaxFileSize >> 20)
	if maxMB < 1 {
		maxMB = 1
	}
	lj := &lumberjack.Logger{
		Filename: filepath.Join(cfg.Dir, cfg.Name+".log"),
		MaxSize:  maxMB,
	}

	var ws zapcore.WriteSyncer = zapcore.AddSync(lj)
	var buf *zapcore.BufferedWriteSyncer
	if cfg.BufferSize > 0 {
		buf = &zapcore.BufferedWriteSyncer{WS: ws, Size: cfg.BufferSize}
		ws = buf
	}
	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	cores := []zapcore.Core{zapcore.NewCore(enc, ws, level)}
	if cfg.Console {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.Lock(os.Stderr), level))
	}
	s := zap.New(zapcore.NewTee(cores...)).Sugar()

	return &Engine{
		Name: EngineZap,
		log: func(thread, iteration int) {
			switch thread % 4 {
			case 0:
				s.Debugf(tmpl, thread, iteration)
			case 1:
				s.Infof(tmpl, thread, iteration)
			case 2:
				s.Warnf(tmpl, thread, iteration)
			default:
				s.Errorf(tmpl, thread, iteration)
			}
		},
		close: func() error {
			var first error
			if buf != nil {
				first = buf.Stop()
			}
			if err := lj.Close(); err != nil && first == nil {
				first = err
			}
			return first
		},
	}, nil
}
