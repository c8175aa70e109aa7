package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger creates a logger writing to out at the given level.
func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	return log
}
