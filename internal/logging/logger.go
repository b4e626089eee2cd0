// Package logging attaches a zerolog logger to a context.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wannabewayno/commitional/internal/storage"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 30
)

// Log levels - aliases for zerolog levels
const (
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
	TraceLevel = zerolog.TraceLevel
)

// Config defines the configuration for logger creation
type Config struct {
	Writer    io.Writer
	ProjectID string
	// Command names the CLI subcommand, omitted when empty
	Command string
	Level   zerolog.Level
}

// New creates a new context with a logger attached
// For production: provide fs and leave Writer nil for rotated file logging
// For tests: provide a custom Writer (like strings.Builder) for in-memory logging
func New(ctx context.Context, fs afero.Fs, config Config) (context.Context, error) {
	var writer io.Writer

	if config.Writer != nil {
		writer = config.Writer
	} else {
		if fs == nil {
			return nil, errors.New("filesystem required when no writer provided")
		}

		logFile, err := storage.New(fs).GetLogPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get log path: %w", err)
		}

		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
			MaxAge:     maxLogAgeDays,
		}
	}

	lc := zerolog.New(writer).With().
		Timestamp().
		Str("project_id", config.ProjectID)
	if config.Command != "" {
		lc = lc.Str("command", config.Command)
	}
	logger := lc.Logger().Level(config.Level)

	return logger.WithContext(ctx), nil
}

// Get retrieves the logger from the provided context
// Returns the logger associated with the context, or a disabled logger if none exists
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// ParseLevel maps a config level name onto a zerolog level, defaulting to info
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		return InfoLevel
	}
	return level
}

// WithLevel returns ctx with its logger switched to level
func WithLevel(ctx context.Context, level zerolog.Level) context.Context {
	logger := Get(ctx).Level(level)
	return logger.WithContext(ctx)
}
