package ui

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger keeps the printf-style surface the commands use on top of zap.
// Errors go to stderr, everything below to stdout.
type Logger struct {
	Debug bool
	z     *zap.SugaredLogger
}

func NewLogger(debug bool) *Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	lowest := zapcore.InfoLevel
	if debug {
		lowest = zapcore.DebugLevel
	}

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stdout), zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lowest <= lvl && lvl < zapcore.ErrorLevel
		})),
		zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= zapcore.ErrorLevel
		})),
	)

	return &Logger{Debug: debug, z: zap.New(core).Sugar()}
}

// NewLoggerFromCore wraps an existing core, e.g. an observer in tests.
func NewLoggerFromCore(core zapcore.Core, debug bool) *Logger {
	return &Logger{Debug: debug, z: zap.New(core).Sugar()}
}

// With returns a logger that attaches key=value to every entry.
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{Debug: l.Debug, z: l.z.With(key, value)}
}

func (l *Logger) Debugf(format string, args ...any) {
	if l.Debug {
		l.z.Debugf(trimNewline(format), args...)
	}
}

func (l *Logger) Infof(format string, args ...any) {
	l.z.Infof(trimNewline(format), args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.z.Errorf(trimNewline(format), args...)
}

func (l *Logger) Sync() {
	_ = l.z.Sync()
}

// zap terminates every entry itself
func trimNewline(format string) string {
	if n := len(format); n > 0 && format[n-1] == '\n' {
		return format[:n-1]
	}

	return format
}
