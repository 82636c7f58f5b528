// Package log wraps logrus behind package-level helpers. The browser
// owns stdout while it runs, so log output goes to a file under the
// user config dir; until Init succeeds the logger is silent.
package log

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Init points the logger at ~/.config/rota/rota.log, creating the
// directory if needed. Callers treat a failure as non-fatal: the
// browser works fine without a log file.
func Init(debug bool) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	dir := filepath.Join(home, ".config", "rota")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "rota.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	logger.SetOutput(f)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return nil
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetDebug toggles debug-level logging.
func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Infof logs a formatted message.
func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

// Warnf logs a formatted warning.
func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

// Errorf logs a formatted error.
func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
