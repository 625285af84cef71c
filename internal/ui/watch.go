package ui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchDebounce absorbs the burst of events an editor save produces.
const watchDebounce = 100 * time.Millisecond

// Watcher reports changes to one presentation source file. It watches the
// file's directory because editors often replace a file rather than write
// to it in place.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *zap.Logger
}

// NewWatcher starts watching path.
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	logger.Debug("watching presentation", zap.String("path", abs))
	return &Watcher{path: abs, watcher: fw, logger: logger}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Wait returns a command that blocks until the file changes, then yields a
// SourceChangedMsg. Issue it again after each change to keep watching.
// It yields nil once the watcher is closed.
func (w *Watcher) Wait() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if !w.relevant(ev) {
					continue
				}
				w.logger.Debug("presentation changed", zap.String("op", ev.Op.String()))
				w.drain()
				return SourceChangedMsg{Path: w.path}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: fmt.Errorf("watch %s: %w", w.path, err)}
			}
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// drain swallows further events until the file has been quiet for watchDebounce.
func (w *Watcher) drain() {
	timer := time.NewTimer(watchDebounce)
	defer timer.Stop()
	for {
		select {
		case _, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			timer.Reset(watchDebounce)
		case <-timer.C:
			return
		}
	}
}
