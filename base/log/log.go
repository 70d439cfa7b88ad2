// Package log is a thin structured logging facade over zap. Loggers
// are values, WithField returns a child and never mutates the parent,
// so one can be stashed in a ctx.Ctx and fanned out safely.
package log

import (
	"go.uber.org/zap"
)

// Fields is a batch of key value pairs attached with WithFields.
type Fields map[string]interface{}

var root *zap.SugaredLogger

func init() {
	// skip one frame so the caller annotation points at the call
	// site instead of this package
	l, _ := zap.NewProduction(zap.AddCallerSkip(1))
	root = l.Sugar()
}

// Logger emits structured records. The zero value is not usable, get
// one from Log.
type Logger struct {
	s *zap.SugaredLogger
}

// Log returns the process wide logger with no fields attached.
func Log() Logger {
	return Logger{s: root}
}

// WithField returns a child logger that also carries key/value.
func (l Logger) WithField(key string, value interface{}) Logger {
	return Logger{s: l.s.With(key, value)}
}

// WithFields returns a child logger that also carries every pair in kvs.
func (l Logger) WithFields(kvs Fields) Logger {
	args := make([]interface{}, 0, len(kvs)*2)
	for k, v := range kvs {
		args = append(args, k, v)
	}
	return Logger{s: l.s.With(args...)}
}

func (l Logger) Debug(args ...interface{}) {
	l.s.Debug(args...)
}

func (l Logger) Info(args ...interface{}) {
	l.s.Info(args...)
}

func (l Logger) Warn(args ...interface{}) {
	l.s.Warn(args...)
}

func (l Logger) Error(args ...interface{}) {
	l.s.Error(args...)
}

// Panic logs at panic level and then panics.
func (l Logger) Panic(args ...interface{}) {
	l.s.Panic(args...)
}
