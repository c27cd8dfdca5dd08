package document

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a file-backed document whenever the file changes on
// disk. Each reload produces a fresh immutable Document, so consumers
// can keep excerpting from the value they last received while a newer
// one is delivered.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan *Document
}

// NewWatcher creates a watcher for the document at path. The initial
// document is loaded immediately and delivered as the first update.
// Call Watch to start receiving reloads, and Close when done.
func NewWatcher(path string) (*Watcher, error) {
	doc, err := FromFile(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory rather than the file: editors replace files
	// by rename, which drops a watch on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		path:    path,
		watcher: fsw,
		updates: make(chan *Document, 1),
	}
	w.updates <- doc
	return w, nil
}

// Updates returns the channel on which reloaded documents arrive.
// The channel is closed when Watch returns.
func (w *Watcher) Updates() <-chan *Document {
	return w.updates
}

// Watch delivers a reloaded document for every write or rename of the
// watched file until ctx is cancelled or the underlying watcher closes.
// Rapid successive events are debounced so a save that produces several
// filesystem events yields one reload.
func (w *Watcher) Watch(ctx context.Context) error {
	defer close(w.updates)

	baseName := filepath.Base(w.path)
	var pending *time.Timer
	reload := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(50*time.Millisecond, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case <-reload:
			doc, err := FromFile(w.path)
			if err != nil {
				// File mid-replace; the next event retries.
				continue
			}
			select {
			case w.updates <- doc:
			default:
				// Consumer lagging: drop the stale update in favor
				// of the current one.
				select {
				case <-w.updates:
				default:
				}
				w.updates <- doc
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			// Usually recoverable; keep watching.
			_ = err
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
