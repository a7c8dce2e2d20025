package commands

import (
	"io"
	"time"

	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/rs/zerolog"
)

// consoleLogger adapts a zerolog console logger to cdg.Logger.
type consoleLogger struct {
	logger zerolog.Logger
}

// NewLogger returns a human-readable logger writing to w. Only warnings and errors are
// shown unless verbose is set.
func NewLogger(w io.Writer, verbose bool) cdg.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(w),
	}

	return &consoleLogger{
		logger: zerolog.New(output).Level(level).With().Timestamp().Logger(),
	}
}

func (l *consoleLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *consoleLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *consoleLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *consoleLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
