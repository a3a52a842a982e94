// Package logging builds the process-wide structured logger.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logrus logger writing to stdout. Production mode logs JSON,
// anything else uses the human readable text formatter.
func New(level string, production bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if production {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		log.WithField("level", level).Warn("unknown log level, falling back to info")
	}
	log.SetLevel(lvl)

	return log
}
