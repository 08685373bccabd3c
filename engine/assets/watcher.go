// Package assets watches the uploaded-images directory and triggers a new
// conversion whenever its contents change.
package assets

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/photomesh/engine/core"
)

// Quiet period after the last filesystem event before the callback fires.
// Uploads often land as a burst of writes.
const debounceDelay = 500 * time.Millisecond

type Watcher struct {
	fsnotify *fsnotify.Watcher
	onChange func()

	mutex    sync.Mutex
	done     chan struct{}
	isClosed bool
}

func NewWatcher(onChange func()) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsnotify: fsWatch,
		onChange: onChange,
		done:     make(chan struct{}),
	}, nil
}

// Initialize starts watching the named directory and launches the event
// loop. It returns once the watch is registered.
func (w *Watcher) Initialize(dir string) error {
	if err := w.fsnotify.Add(dir); err != nil {
		return err
	}
	go w.start()
	core.LogInfo("watching %s for changes", dir)
	return nil
}

func (w *Watcher) start() {
	var timer *time.Timer
	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case event, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			core.LogDebug("fs event: %s", event)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, w.onChange)
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("watcher error: %v", err)
		}
	}
}

func (w *Watcher) Shutdown() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return nil
	}
	w.isClosed = true
	close(w.done)
	return w.fsnotify.Close()
}
