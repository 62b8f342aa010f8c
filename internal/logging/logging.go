// Package logging emits structured JSON logs and carries per-request timing
// and data bundles through report builds.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging configures the process-wide JSON logger. Report builds are
// slow enough that info-level per-request lines are the main signal; debug
// stays off.
func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
				logrus.FieldKeyTime:  "timestamp",
			},
		},
		Out:   os.Stdout,
		Level: logrus.InfoLevel,
	}

	return &logger
}
