// Package logging hands out component loggers writing to a shared log
// file. A fullscreen TUI owns stdout, so logs never go there; before
// Setup runs, everything is discarded.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu      sync.Mutex
	base    = newDiscardLogger()
	entries = make(map[string]*logrus.Entry)
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Setup opens (or creates) the log file and configures the shared
// logger. Unparseable levels fall back to info.
func Setup(path, level string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	l := logrus.New()
	l.SetOutput(f)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	base = l
	entries = make(map[string]*logrus.Entry)
	return nil
}

// Component returns a logger entry tagged with the component name.
// Entries are cached per component.
func Component(name string) *logrus.Entry {
	mu.Lock()
	defer mu.Unlock()

	if e, ok := entries[name]; ok {
		return e
	}
	e := base.WithField("component", name)
	entries[name] = e
	return e
}
