// Package logger configures the standard logrus logger for every binary.
package logger

import (
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setup sets the level, formatter and output of the standard logger.
// Unknown levels fall back to info; "json" selects the JSON formatter and
// anything else the text formatter. A nil out leaves the output unchanged.
func Setup(level, format string, out io.Writer) log.Level {
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	if out != nil {
		log.SetOutput(out)
	}
	if err != nil && level != "" {
		log.WithField("level", level).Warn("unknown log level, using info")
	}
	return lvl
}
