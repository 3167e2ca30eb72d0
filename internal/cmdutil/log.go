// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns the stderr logger shared by every command. Warnings are
// shown by default, --verbose adds progress messages and --quiet keeps errors only.
func NewLogger(dst io.Writer, quiet, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(dst)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	switch {
	case quiet:
		l.SetLevel(logrus.ErrorLevel)
	case verbose:
		l.SetLevel(logrus.InfoLevel)
	default:
		l.SetLevel(logrus.WarnLevel)
	}
	return l
}

// Warnf logs a warning unless quiet is set.
func Warnf(l logrus.FieldLogger, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	l.Warnf(format, a...)
}
