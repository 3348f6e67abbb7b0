package logging

import (
	"github.com/bokysan/b64/internal/args"
	"github.com/bokysan/b64/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"strings"
)

// logFile is the log file opened by the last SetupLogging, if any
var logFile *os.File

// SetupLogging configures logrus from the general options. Logs always go to stderr or the log file,
// never to stdout, as stdout carries the encoded / decoded data.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	hooks := make(log.LevelHooks)
	if args.General.LogReportCaller {
		hooks.Add(&ContextHook{})
	}
	log.StandardLogger().ReplaceHooks(hooks)

	if args.General.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		})
	} else {
		color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   color == "yes" || color == "true" || color == "1",
			DisableColors: color == "no" || color == "false" || color == "0",
			FullTimestamp: args.General.LogFullTimestamp,
		})
	}
	log.SetReportCaller(args.General.LogReportCaller)
	log.SetOutput(os.Stderr)
	if logFile != nil {
		if err := logFile.Close(); err != nil {
			log.Warnf("Could not close log file %s: %v", logFile.Name(), err)
		}
		logFile = nil
	}

	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := os.OpenFile(*args.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			util.MustErrorNilOrExit(errors.Wrapf(err, "Could not open log file %s", *args.General.LogFile))
		}
		logFile = f
		log.SetOutput(f)
	}

	log.Debugf("Verbosity level: %v", VerbosityName())
}
