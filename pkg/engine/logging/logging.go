// Package logging provides the shared logrus logger.
// The terminal belongs to the renderer, so output is discarded unless a log
// file is configured.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Configure points the logger at path (appending) and sets the level.
// An empty path keeps output discarded. The returned closer must be closed
// on shutdown.
func Configure(path string, debug bool) (io.Closer, error) {
	if debug {
		Log.SetLevel(logrus.DebugLevel)
	}
	if path == "" {
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	Log.SetOutput(f)
	return f, nil
}
