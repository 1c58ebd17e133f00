// Package watch notifies on changes to a document file so callers can
// re-render it. Notifications are debounced: the write bursts and
// atomic-save renames editors produce collapse into one change event.
package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay is how long the file must stay quiet before a change fires.
const debounceDelay = 200 * time.Millisecond

// Watcher watches one file and reports coalesced change events.
type Watcher struct {
	fw      *fsnotify.Watcher
	path    string
	changes chan struct{}
	errs    chan error
	done    chan struct{}
}

// New starts watching path. The watch is registered on the parent directory,
// not the file itself, so files replaced by rename (the usual editor save)
// keep being watched.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch: %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fw:      fw,
		path:    abs,
		changes: make(chan struct{}, 1),
		errs:    make(chan error, 10),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.changes)
	defer close(w.errs)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounceDelay)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			select {
			case w.changes <- struct{}{}:
			case <-w.done:
				return
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			case <-w.done:
				return
			}
		}
	}
}

// Changes delivers one value per quiet-period of file activity. The channel
// closes when the watcher is closed.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors delivers watch errors. The channel closes when the watcher is
// closed.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
		close(w.done)
	}
	return w.fw.Close()
}
