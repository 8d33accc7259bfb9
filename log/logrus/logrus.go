// Package logrus adapts a sirupsen/logrus entry to the tagjson Logger
// interface.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/tagjson"
)

// New wraps e as a tagjson.Logger.
func New(e *logrus.Entry) tagjson.Logger { return logger{e: e} }

type logger struct{ e *logrus.Entry }

func (l logger) Debug(msg string, f tagjson.Fields) { l.e.WithFields(logrus.Fields(f)).Debug(msg) }
func (l logger) Info(msg string, f tagjson.Fields)  { l.e.WithFields(logrus.Fields(f)).Info(msg) }
func (l logger) Warn(msg string, f tagjson.Fields)  { l.e.WithFields(logrus.Fields(f)).Warn(msg) }
func (l logger) Error(msg string, f tagjson.Fields) { l.e.WithFields(logrus.Fields(f)).Error(msg) }
