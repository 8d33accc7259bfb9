// Package slog adapts a standard library log/slog logger to the tagjson
// Logger interface.
package slog

import (
	"context"
	stdslog "log/slog"

	"github.com/unkn0wn-root/tagjson"
)

// New wraps l as a tagjson.Logger.
func New(l *stdslog.Logger) tagjson.Logger { return logger{l: l} }

type logger struct{ l *stdslog.Logger }

func (s logger) Debug(msg string, f tagjson.Fields) { s.logAt(stdslog.LevelDebug, msg, f) }
func (s logger) Info(msg string, f tagjson.Fields)  { s.logAt(stdslog.LevelInfo, msg, f) }
func (s logger) Warn(msg string, f tagjson.Fields)  { s.logAt(stdslog.LevelWarn, msg, f) }
func (s logger) Error(msg string, f tagjson.Fields) { s.logAt(stdslog.LevelError, msg, f) }

func (s logger) logAt(level stdslog.Level, msg string, f tagjson.Fields) {
	attrs := make([]stdslog.Attr, 0, len(f))
	for k, v := range f {
		attrs = append(attrs, stdslog.Any(k, v))
	}
	s.l.LogAttrs(context.Background(), level, msg, attrs...)
}
