// Package logging owns the process logger. The terminal belongs to the
// renderer, so log output goes to a file or nowhere.
package logging

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It discards everything until Setup is called.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup points Log at path with the given level. An empty path keeps output
// discarded. The returned closer flushes the log file.
func Setup(path, level string) (io.Closer, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	Log.SetLevel(lvl)

	if path == "" {
		Log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}
	Log.SetOutput(f)
	return f, nil
}

// Component returns an entry tagged with the component name
func Component(name string) *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"component": name,
	})
}
