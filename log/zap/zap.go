// Package zap adapts a go.uber.org/zap logger to the tagjson Logger
// interface.
package zap

import (
	"github.com/unkn0wn-root/tagjson"
	"go.uber.org/zap"
)

// New wraps l as a tagjson.Logger.
func New(l *zap.Logger) tagjson.Logger { return logger{l: l} }

type logger struct{ l *zap.Logger }

func (z logger) Debug(msg string, f tagjson.Fields) { z.l.Debug(msg, fields(f)...) }
func (z logger) Info(msg string, f tagjson.Fields)  { z.l.Info(msg, fields(f)...) }
func (z logger) Warn(msg string, f tagjson.Fields)  { z.l.Warn(msg, fields(f)...) }
func (z logger) Error(msg string, f tagjson.Fields) { z.l.Error(msg, fields(f)...) }

func fields(f tagjson.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
