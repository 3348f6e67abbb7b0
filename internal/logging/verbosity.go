package logging

import (
	log "github.com/sirupsen/logrus"
	"strings"
)

// SetVerbosity defines the verbosity level of the application. Every `-v` raises the level by one,
// starting from panic.
func SetVerbosity(v []bool) {
	verbosity := log.Level(len(v))
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	log.SetLevel(verbosity)
}

// VerbosityName returns the name of the current log level
func VerbosityName() string {
	return strings.ToUpper(log.GetLevel().String())
}
