/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package common contains logging infrastructure shared by every stage of
// the pipeline: the PDF extractor, the act segmenter, the structural
// parser, and the semantic extractor all log through the same Logger.
package common

import (
	"fmt"
	"os"
	"time"
)

// Logger is the interface used for logging in the hunlaw package.
type Logger interface {
	Error(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Notice(format string, args ...interface{})
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Trace(format string, args ...interface{})
	IsLogLevel(level LogLevel) bool
}

// LogLevel is the verbosity level for logging.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarning
	LogLevelNotice
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

// DummyLogger discards everything. It is the default so that library
// consumers don't get unsolicited output on stderr.
type DummyLogger struct{}

func (DummyLogger) Error(format string, args ...interface{})   {}
func (DummyLogger) Warning(format string, args ...interface{}) {}
func (DummyLogger) Notice(format string, args ...interface{})  {}
func (DummyLogger) Info(format string, args ...interface{})    {}
func (DummyLogger) Debug(format string, args ...interface{})   {}
func (DummyLogger) Trace(format string, args ...interface{})   {}
func (DummyLogger) IsLogLevel(level LogLevel) bool             { return false }

// ConsoleLogger writes to stderr with a level prefix and timestamp, up to
// a configured maximum level.
type ConsoleLogger struct {
	LogLevel LogLevel
}

// NewConsoleLogger returns a ConsoleLogger that logs at or below `level`.
func NewConsoleLogger(level LogLevel) *ConsoleLogger {
	return &ConsoleLogger{LogLevel: level}
}

func (c *ConsoleLogger) IsLogLevel(level LogLevel) bool {
	return c.LogLevel >= level
}

func (c *ConsoleLogger) output(level LogLevel, prefix, format string, args ...interface{}) {
	if !c.IsLogLevel(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "[%s] %-7s %s\n", time.Now().Format("15:04:05"), prefix, msg)
}

func (c *ConsoleLogger) Error(format string, args ...interface{}) {
	c.output(LogLevelError, "ERROR", format, args...)
}
func (c *ConsoleLogger) Warning(format string, args ...interface{}) {
	c.output(LogLevelWarning, "WARNING", format, args...)
}
func (c *ConsoleLogger) Notice(format string, args ...interface{}) {
	c.output(LogLevelNotice, "NOTICE", format, args...)
}
func (c *ConsoleLogger) Info(format string, args ...interface{}) {
	c.output(LogLevelInfo, "INFO", format, args...)
}
func (c *ConsoleLogger) Debug(format string, args ...interface{}) {
	c.output(LogLevelDebug, "DEBUG", format, args...)
}
func (c *ConsoleLogger) Trace(format string, args ...interface{}) {
	c.output(LogLevelTrace, "TRACE", format, args...)
}

// Log is the package-level logger used by every stage. Replace it with
// SetLogger before running the pipeline to enable diagnostics.
var Log Logger = DummyLogger{}

// SetLogger installs a new package-level logger.
func SetLogger(logger Logger) {
	Log = logger
}
