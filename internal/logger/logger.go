// Package logger provides a configured zerolog instance.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/overviewer-util/internal/service"
)

// Logger holds configuration options for the application logger.
type Logger struct {
	// Log level
	Level string `json:"level" default:"info"`

	// Log format: text or json
	Format string `json:"format" default:"text"`

	// Log output: stdout, stderr or a file path
	Output string `json:"output" default:"stderr"`
}

// Setup initializes the global logger based on provided configuration.
// An unknown level falls back to info. A log file that cannot be opened
// leaves the global logger untouched and returns the error.
func (l *Logger) Setup() error {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
	if l.Output == "" {
		l.Output = "stderr"
	}

	writer, err := l.writer()
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = l.build(writer)

	return nil
}

func (l *Logger) writer() (io.Writer, error) {
	switch l.Output {
	case "stdout":
		return os.Stdout, nil

	case "stderr":
		return os.Stderr, nil

	default:
		file, err := os.OpenFile(l.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", l.Output, err)
		}
		return file, nil
	}
}

func (l *Logger) build(writer io.Writer) zerolog.Logger {
	if l.Format == "json" {
		return zerolog.New(writer).With().Timestamp().Logger()
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        writer,
		TimeFormat: time.RFC3339,
	}

	// colour only for real terminals
	if f, ok := writer.(*os.File); ok {
		consoleWriter.NoColor = !service.CanUseANSIColors(f)
	} else {
		consoleWriter.NoColor = true
	}

	return zerolog.New(consoleWriter).With().Timestamp().Logger()
}
