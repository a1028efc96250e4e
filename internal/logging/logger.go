package logging

import (
	"log"
	"strings"
)

// Logger is the logging dependency injected into the physics sub-models.
// The core never writes to a global logger.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

// Level represents the logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel parses a string level (case-insensitive), defaulting to info.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// StdLogger is a leveled logger on top of the standard library log package.
type StdLogger struct {
	level Level
}

func New(level string) *StdLogger {
	return &StdLogger{level: ParseLevel(level)}
}

func (l *StdLogger) shouldLog(level Level) bool {
	return level >= l.level
}

func (l *StdLogger) Debugf(format string, v ...any) {
	if l.shouldLog(LevelDebug) {
		log.Printf("[DEBUG] "+format, v...)
	}
}

func (l *StdLogger) Infof(format string, v ...any) {
	if l.shouldLog(LevelInfo) {
		log.Printf("[INFO] "+format, v...)
	}
}

func (l *StdLogger) Warnf(format string, v ...any) {
	if l.shouldLog(LevelWarn) {
		log.Printf("[WARN] "+format, v...)
	}
}

func (l *StdLogger) Errorf(format string, v ...any) {
	if l.shouldLog(LevelError) {
		log.Printf("[ERROR] "+format, v...)
	}
}

// Nop is a logger that discards everything (useful in tests).
type Nop struct{}

func (Nop) Debugf(format string, v ...any) {}
func (Nop) Infof(format string, v ...any)  {}
func (Nop) Warnf(format string, v ...any)  {}
func (Nop) Errorf(format string, v ...any) {}
