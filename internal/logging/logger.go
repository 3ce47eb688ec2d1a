// Package logging owns the process logger. Call sites use the printf-style
// helpers; the backend is a zerolog logger writing to stderr.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

type Level = zerolog.Level

const (
	TraceLevel = zerolog.TraceLevel
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	Disabled   = zerolog.Disabled
)

// Config controls logger output.
type Config struct {
	Level     Level
	Timestamp bool
	NoColor   bool
	// Bypass writes raw JSON lines instead of console formatting.
	Bypass bool
	Out    io.Writer
}

func DefaultConfig() Config {
	fd := os.Stderr.Fd()
	return Config{
		Level:     InfoLevel,
		Timestamp: true,
		NoColor:   !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd),
		Out:       colorable.NewColorableStderr(),
	}
}

var (
	mu     sync.RWMutex
	logger = New(DefaultConfig())
)

// New builds a logger from cfg without installing it.
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if !cfg.Bypass {
		cw := zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    cfg.NoColor,
			TimeFormat: time.RFC3339,
		}
		if !cfg.Timestamp {
			cw.PartsExclude = []string{zerolog.TimestampFieldName}
		}
		out = cw
	}
	ctx := zerolog.New(out).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger().Level(cfg.Level)
}

// Configure replaces the process logger.
func Configure(cfg Config) {
	l := New(cfg)
	mu.Lock()
	logger = l
	mu.Unlock()
}

// SetLevel changes the level of the current logger.
func SetLevel(level Level) {
	mu.Lock()
	logger = logger.Level(level)
	mu.Unlock()
}

// Logger returns the current logger for structured call sites.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Tracef(format string, args ...any) {
	l := Logger()
	l.Trace().Msgf(format, args...)
}

func Debugf(format string, args ...any) {
	l := Logger()
	l.Debug().Msgf(format, args...)
}

func Infof(format string, args ...any) {
	l := Logger()
	l.Info().Msgf(format, args...)
}

func Warnf(format string, args ...any) {
	l := Logger()
	l.Warn().Msgf(format, args...)
}

func Errf(format string, args ...any) {
	l := Logger()
	l.Error().Msgf(format, args...)
}

// Logf writes regardless of level unless logging is disabled.
func Logf(format string, args ...any) {
	l := Logger()
	l.Log().Msgf(format, args...)
}
