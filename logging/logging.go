package logging

import (
	"fmt"
	"log"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// Logger writes messages at or above a minimum level through the standard logger
type Logger struct {
	source   string
	minLevel int
}

// CreateLogger is a factory for Loggers. Messages below minLevel are discarded.
func CreateLogger(source string, minLevel int) *Logger {
	return &Logger{source: source, minLevel: minLevel}
}

// Log writes a formatted message at the given level
func (l *Logger) Log(level int, format string, args ...interface{}) {
	if l == nil || level < l.minLevel {
		return
	}
	log.Printf("%s: level [%s]: %s", l.source, LogLevelToString(level), fmt.Sprintf(format, args...))
}

// Debugf writes a formatted message at DebugLevel
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Log(DebugLevel, format, args...)
}

// Infof writes a formatted message at InfoLevel
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Log(InfoLevel, format, args...)
}

// Warnf writes a formatted message at WarnLevel
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Log(WarnLevel, format, args...)
}

// Errorf writes a formatted message at ErrorLevel
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Log(ErrorLevel, format, args...)
}
