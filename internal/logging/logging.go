// Package logging builds the logrus loggers shared by the CLI and plugins.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/conn-castle/bain-installer/internal/messages"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// New returns a text logger writing to w at the named level.
// An empty level selects DefaultLevel; a nil writer selects stderr.
func New(level string, w io.Writer) (*logrus.Logger, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		level = DefaultLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf(messages.LoggingInvalidLevelFmt, level, err)
	}
	if w == nil {
		w = os.Stderr
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(parsed)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})
	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// OrDiscard returns log, or a discarding logger when log is nil.
func OrDiscard(log logrus.FieldLogger) logrus.FieldLogger {
	if log == nil {
		return Discard()
	}
	return log
}
