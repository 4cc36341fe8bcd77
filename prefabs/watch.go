package prefabs

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long a file must stay quiet before its change is reported.
// Editors often write one save as several events.
const settle = 100 * time.Millisecond

// Watcher reports catalog and script files once they stop changing. Both of
// its channels close after Close or when fsnotify shuts down.
type Watcher struct {
	fsw     *fsnotify.Watcher
	changes chan string
	errs    chan error
	stop    chan struct{}
	stopped chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// NewWatcher watches each directory, non-recursively.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("prefabs: new watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("prefabs: watch %s: %w", dir, err)
		}
	}

	w := &Watcher{
		fsw:     fsw,
		changes: make(chan string, 16),
		errs:    make(chan error, 1),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Changes yields the path of each settled file change.
func (w *Watcher) Changes() <-chan string { return w.changes }

// Errors yields fsnotify errors. Errors are dropped while one is unread.
func (w *Watcher) Errors() <-chan error { return w.errs }

func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.stop)
		w.closeErr = w.fsw.Close()
		<-w.stopped
	})
	return w.closeErr
}

func (w *Watcher) loop() {
	defer close(w.stopped)
	defer close(w.errs)
	defer close(w.changes)

	pending := make(map[string]struct{})
	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			pending[ev.Name] = struct{}{}
			timer.Reset(settle)
		case <-timer.C:
			for _, name := range slices.Sorted(maps.Keys(pending)) {
				select {
				case w.changes <- name:
				case <-w.stop:
					return
				}
			}
			clear(pending)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case <-w.stop:
			return
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	return IsSpecFile(ev.Name) || IsScriptFile(ev.Name)
}

// IsSpecFile reports whether path looks like a YAML catalog.
func IsSpecFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// IsScriptFile reports whether path is a tengo selector script.
func IsScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
