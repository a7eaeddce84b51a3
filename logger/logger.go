package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// FieldComponent tags events with the emitting component.
const FieldComponent = "component"

// Logger wraps zerolog.Logger.
type Logger struct {
	logger zerolog.Logger
}

// New creates a logger from config. Defaults are applied to zero fields.
func New(cfg Config) *Logger {
	cfg.ApplyDefaults()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if cfg.Format == "console" {
		zl = newConsoleLogger(cfg)
	} else {
		zl = zerolog.New(outputWriter(cfg.Output))
	}
	zl = zl.Level(level)

	if cfg.Timestamp && cfg.Format != "console" {
		zl = zl.With().Timestamp().Logger()
	}

	return &Logger{logger: zl}
}

// NewDefault creates a console logger at info level.
func NewDefault() *Logger {
	return New(Config{Level: "info", Format: "console", Output: "stderr", Timestamp: true})
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{logger: l.logger.With().Str(FieldComponent, name).Logger()}
}

// WithFields returns a logger with additional fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	zc := l.logger.With()
	for k, v := range fields {
		zc = zc.Interface(k, v)
	}
	return &Logger{logger: zc.Logger()}
}

// Z returns the underlying zerolog.Logger.
func (l *Logger) Z() zerolog.Logger {
	return l.logger
}

// Trace starts a trace-level event.
func (l *Logger) Trace() *zerolog.Event { return l.logger.Trace() }

// Debug starts a debug-level event.
func (l *Logger) Debug() *zerolog.Event { return l.logger.Debug() }

// Info starts an info-level event.
func (l *Logger) Info() *zerolog.Event { return l.logger.Info() }

// Warn starts a warn-level event.
func (l *Logger) Warn() *zerolog.Event { return l.logger.Warn() }

// Error starts an error-level event.
func (l *Logger) Error() *zerolog.Event { return l.logger.Error() }

// --- internal helpers ---

func outputWriter(output string) io.Writer {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}

func newConsoleLogger(cfg Config) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:        outputWriter(cfg.Output),
		TimeFormat: "15:04:05",
		NoColor:    cfg.NoColor,
		FormatLevel: func(i interface{}) string {
			lvl := strings.ToUpper(fmt.Sprintf("%s", i))
			tag := map[string]string{
				"TRACE": "[TRC]",
				"DEBUG": "[DBG]",
				"INFO":  "[INF]",
				"WARN":  "[WRN]",
				"ERROR": "[ERR]",
				"FATAL": "[FTL]",
			}[lvl]
			if tag == "" {
				tag = fmt.Sprintf("[%s]", lvl)
			}
			return tag
		},
	}
	zl := zerolog.New(cw)
	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}
	return zl
}
