// Package logger builds the process logger and carries it through
// context.Context.
package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type loggerContextKey string

const loggerContextKeyVal = loggerContextKey("logrus.FieldLogger")

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatAuto = ""
)

// New returns a logrus logger writing to out at the given level.
//
// format is "text", "json" or "" (auto): auto picks coloured text when out
// is a terminal and JSON otherwise.
func New(level, format string, out io.Writer) (*logrus.Logger, error) {
	lvl := logrus.InfoLevel
	if level != "" {
		var err error
		if lvl, err = logrus.ParseLevel(level); err != nil {
			return nil, errors.Wrapf(err, "logger: level %q", level)
		}
	}

	var formatter logrus.Formatter
	switch strings.ToLower(format) {
	case FormatText:
		formatter = &logrus.TextFormatter{FullTimestamp: true, ForceColors: isTerminal(out)}
	case FormatJSON:
		formatter = &logrus.JSONFormatter{}
	case FormatAuto:
		if isTerminal(out) {
			formatter = &logrus.TextFormatter{FullTimestamp: true, ForceColors: true}
		} else {
			formatter = &logrus.JSONFormatter{}
		}
	default:
		return nil, errors.Errorf("logger: unknown format %q", format)
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(formatter)

	return l, nil
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// FromContext returns the logger stored in ctx, or the standard logger.
func FromContext(ctx context.Context) logrus.FieldLogger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerContextKeyVal).(logrus.FieldLogger); ok {
			return l
		}
	}

	return logrus.StandardLogger()
}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerContextKeyVal, l)
}
