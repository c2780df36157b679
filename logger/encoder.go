package logger

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

// timeLayout renders timestamps with microsecond resolution.
const timeLayout = "20060102 15:04:05.000000"

// levelLetter maps a level to its single-letter tag.
func levelLetter(l zapcore.Level) string {
	switch l {
	case zapcore.DebugLevel:
		return "D"
	case zapcore.InfoLevel:
		return "I"
	case zapcore.WarnLevel:
		return "W"
	case zapcore.ErrorLevel:
		return "E"
	default:
		return "F"
	}
}

// callerLabel renders an entry caller as "file::func() line".
func callerLabel(ec zapcore.EntryCaller) string {
	if !ec.Defined {
		return "???"
	}
	file := strings.TrimSuffix(filepath.Base(ec.File), ".go")
	fn := ec.Function
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		fn = fn[i+1:]
	}
	if i := strings.IndexByte(fn, '.'); i >= 0 {
		fn = fn[i+1:]
	}
	return fmt.Sprintf("%s::%s() %d", file, fn, ec.Line)
}

func encodeTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format(timeLayout))
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(levelLetter(l))
}

// encodeCaller closes the record header with "]" in console output.
func encodeCaller(ec zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(callerLabel(ec) + "]")
}

func encodeCallerJSON(ec zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(callerLabel(ec))
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		TimeKey:          "ts",
		CallerKey:        "caller",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       encodeTime,
		EncodeLevel:      encodeLevel,
		EncodeCaller:     encodeCaller,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

// newEncoder builds the encoder for a configured format.
func newEncoder(format string) (zapcore.Encoder, error) {
	switch format {
	case FormatConsole:
		return zapcore.NewConsoleEncoder(encoderConfig()), nil
	case FormatJSON:
		cfg := encoderConfig()
		cfg.EncodeCaller = encodeCallerJSON
		return zapcore.NewJSONEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("logger: unknown format %q", format)
	}
}
