package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// defaultLogger is the logger handed out when no explicit one is injected
	defaultLogger zerolog.Logger
)

// LogLevel represents the log level
type LogLevel string

const (
	// DebugLevel is for debug messages
	DebugLevel LogLevel = "debug"
	// InfoLevel is for informational messages
	InfoLevel LogLevel = "info"
	// WarnLevel is for warning messages
	WarnLevel LogLevel = "warn"
	// ErrorLevel is for error messages, including every rejected field
	ErrorLevel LogLevel = "error"
	// DisabledLevel turns logging off
	DisabledLevel LogLevel = "disabled"
)

// LookupLevel maps a level name onto a LogLevel. Matching ignores case and
// surrounding space; "warning" and "off" are accepted aliases.
func LookupLevel(s string) (LogLevel, bool) {
	switch LogLevel(strings.ToLower(strings.TrimSpace(s))) {
	case DebugLevel:
		return DebugLevel, true
	case InfoLevel:
		return InfoLevel, true
	case WarnLevel, "warning":
		return WarnLevel, true
	case ErrorLevel:
		return ErrorLevel, true
	case DisabledLevel, "off":
		return DisabledLevel, true
	default:
		return InfoLevel, false
	}
}

// ParseLevel is LookupLevel falling back to info for unknown names
func ParseLevel(s string) LogLevel {
	level, _ := LookupLevel(s)
	return level
}

func (l LogLevel) zerologLevel() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case DisabledLevel:
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Config represents logger configuration
type Config struct {
	// Level is the minimum level written
	Level LogLevel
	// Pretty enables human-readable console output instead of JSON lines
	Pretty bool
	// Output is the output writer (defaults to os.Stderr so CLI stdout stays clean)
	Output io.Writer
}

// New builds a logger from config without touching the package default
func New(config Config) zerolog.Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	var writer io.Writer = config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(writer).Level(config.Level.zerologLevel()).With().Timestamp().Logger()
}

// Configure replaces the package default logger and the zerolog global logger
func Configure(config Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	defaultLogger = New(config)
	log.Logger = defaultLogger
	return defaultLogger
}

// For derives a logger tagged with a component name
func For(component string) zerolog.Logger {
	return defaultLogger.With().Str("component", component).Logger()
}

// Error logs an error message
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

func init() {
	Configure(Config{
		Level:  InfoLevel,
		Pretty: false,
		Output: os.Stderr,
	})
}
