// Package logging sets up the log file. The terminal belongs to the UI, so
// nothing is ever logged to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/JacquysBarbosadaSilva/Trezor-app/internal/config"
	"github.com/sirupsen/logrus"
)

// Setup opens the log file and returns a logger writing to it. The
// returned closer must be closed on exit. An empty file discards logs.
func Setup(s config.LogSettings) (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(s.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
		DisableColors:   true,
	})

	if s.File == "" {
		log.SetOutput(io.Discard)
		return log, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(s.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f, nil
}

// Discard returns a logger that drops everything, for tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
