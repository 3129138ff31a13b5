// Package logger builds the logrus logger used by the gridkit driver.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to out, configured from the environment:
//
//	LOG_LEVEL   logrus level name, default "info"
//	LOG_FORMAT  "json" for JSON lines, anything else for text
func New(out io.Writer) *logrus.Logger {
	return Configure(out, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// Configure is New with explicit settings. Unknown levels fall back to info.
func Configure(out io.Writer, level, format string) *logrus.Logger {
	log := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(out)

	return log
}

// Component tags every entry of l with the component name.
func Component(l logrus.FieldLogger, name string) *logrus.Entry {
	return l.WithField("component", name)
}
