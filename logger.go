package jwtmiddleware

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// Logger defines an optional structured logging interface for the
// middleware. It is compatible with *log/slog.Logger, which satisfies it
// directly; adapters are provided for logrus, zap and zerolog. Arguments
// are alternating key/value pairs, slog style.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NewLogrusLogger returns a Logger backed by a logrus.FieldLogger.
func NewLogrusLogger(l logrus.FieldLogger) Logger {
	return &logrusLogger{l: l}
}

type logrusLogger struct{ l logrus.FieldLogger }

func (a *logrusLogger) Debug(msg string, args ...any) { a.l.WithFields(logrusFields(args)).Debug(msg) }
func (a *logrusLogger) Info(msg string, args ...any)  { a.l.WithFields(logrusFields(args)).Info(msg) }
func (a *logrusLogger) Warn(msg string, args ...any)  { a.l.WithFields(logrusFields(args)).Warn(msg) }
func (a *logrusLogger) Error(msg string, args ...any) { a.l.WithFields(logrusFields(args)).Error(msg) }

func logrusFields(args []any) logrus.Fields {
	fields := make(logrus.Fields, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		fields[key] = args[i+1]
	}
	return fields
}

// NewZapLogger returns a Logger backed by a zap.SugaredLogger.
func NewZapLogger(l *zap.SugaredLogger) Logger {
	return &zapLogger{l: l}
}

type zapLogger struct{ l *zap.SugaredLogger }

func (a *zapLogger) Debug(msg string, args ...any) { a.l.Debugw(msg, args...) }
func (a *zapLogger) Info(msg string, args ...any)  { a.l.Infow(msg, args...) }
func (a *zapLogger) Warn(msg string, args ...any)  { a.l.Warnw(msg, args...) }
func (a *zapLogger) Error(msg string, args ...any) { a.l.Errorw(msg, args...) }

// NewZerologLogger returns a Logger backed by a zerolog.Logger.
func NewZerologLogger(l zerolog.Logger) Logger {
	return &zerologLogger{l: l}
}

type zerologLogger struct{ l zerolog.Logger }

func (a *zerologLogger) Debug(msg string, args ...any) { zerologEmit(a.l.Debug(), msg, args) }
func (a *zerologLogger) Info(msg string, args ...any)  { zerologEmit(a.l.Info(), msg, args) }
func (a *zerologLogger) Warn(msg string, args ...any)  { zerologEmit(a.l.Warn(), msg, args) }
func (a *zerologLogger) Error(msg string, args ...any) { zerologEmit(a.l.Error(), msg, args) }

func zerologEmit(e *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		e = e.Interface(key, args[i+1])
	}
	e.Msg(msg)
}
