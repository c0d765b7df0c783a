// Package logging configures the structured logging every RPC-handling
// subsystem (handler, transport) writes through. A plugin child process's
// stdout is reserved for the go-plugin handshake line (spec §4.8), so
// logs are always JSON on stderr, with a severity field a host's log
// collector can key on.
package logging

import (
	log "github.com/sirupsen/logrus"
)

// ConfigureLogrusJSON switches logger to JSON and attaches SeverityHook so
// every entry carries a normalized severity field even though logrus itself
// has no such concept. It leaves the logger's output as it is (stderr is
// logrus's default).
func ConfigureLogrusJSON(logger *log.Logger) {
	if logger == nil {
		return
	}

	logger.SetFormatter(&log.JSONFormatter{})
	logger.AddHook(SeverityHook{})
}

// SeverityHook derives a severity field from each entry's logrus level,
// using the naming Terraform's own logging convention and most log
// collectors already recognise (EMERGENCY down to DEBUG), rather than
// inventing a provider-specific scheme.
type SeverityHook struct{}

func (SeverityHook) Levels() []log.Level {
	return log.AllLevels
}

func (SeverityHook) Fire(entry *log.Entry) error {
	if entry == nil {
		return nil
	}
	if _, ok := entry.Data["severity"]; ok {
		return nil
	}

	entry.Data["severity"] = severityForLevel(entry.Level)
	return nil
}

func severityForLevel(level log.Level) string {
	switch level {
	case log.PanicLevel:
		return "EMERGENCY"
	case log.FatalLevel:
		return "CRITICAL"
	case log.ErrorLevel:
		return "ERROR"
	case log.WarnLevel:
		return "WARNING"
	case log.InfoLevel:
		return "INFO"
	case log.DebugLevel, log.TraceLevel:
		return "DEBUG"
	default:
		return "DEFAULT"
	}
}
