// Package log builds the charmbracelet loggers shared by the blockfall binaries.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w with the app name as prefix. Unknown or
// empty levels fall back to info.
func New(w io.Writer, appName, level string, caller bool) *log.Logger {
	logger := log.New(w)
	logger.SetPrefix(appName)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)
	logger.SetReportCaller(caller)
	logger.SetLevel(ParseLevel(level))
	return logger
}

// Stdout is New writing to os.Stdout.
func Stdout(appName, level string, caller bool) *log.Logger {
	return New(os.Stdout, appName, level, caller)
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel maps a config level name to a log level.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}
