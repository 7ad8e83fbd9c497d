// Package watcher monitors the workspace directory and notifies
// registered callbacks of document changes.
package watcher

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// EventType represents the type of file system event.
type EventType int

// File system event types.
const (
	EventCreate EventType = iota
	EventWrite
	EventRemove
	EventRename
)

// String returns the event name used on the wire to the shell.
func (t EventType) String() string {
	switch t {
	case EventCreate:
		return "create"
	case EventWrite:
		return "update"
	case EventRemove:
		return "remove"
	case EventRename:
		return "rename"
	}
	return "unknown"
}

// Event represents a change to an immediate child of the workspace.
// IsDir is false for remove and rename events; the entry is gone and
// can no longer be stat'd.
type Event struct {
	Type  EventType
	Path  string
	IsDir bool
}

// Callback is invoked for each workspace change.
type Callback func(Event)

// Watcher observes the immediate children of the current workspace
// root. Watching is non-recursive, mirroring the shell's flat listing.
type Watcher struct {
	watcher   *fsnotify.Watcher
	callbacks []Callback
	mu        sync.RWMutex
	root      string
	done      chan struct{}
}

// New creates a Watcher. Call SetRoot to start watching a directory.
func New() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher: w,
		done:    make(chan struct{}),
	}, nil
}

// OnChange registers a callback for workspace change events.
func (w *Watcher) OnChange(cb Callback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, cb)
}

// SetRoot points the watcher at a new workspace directory, replacing
// any previously watched root. An empty root stops watching.
func (w *Watcher) SetRoot(root string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.root != "" {
		if err := w.watcher.Remove(w.root); err != nil {
			log.Printf("Warning: cannot unwatch %s: %v", w.root, err)
		}
		w.root = ""
	}
	if root == "" {
		return nil
	}
	if err := w.watcher.Add(root); err != nil {
		return err
	}
	w.root = root
	return nil
}

// Start begins delivering events to registered callbacks.
func (w *Watcher) Start() {
	go w.eventLoop()
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// isDocument reports whether the path names an Inkfinite document file.
func isDocument(path string) bool {
	return strings.HasSuffix(path, ".inkfinite.json")
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Remove and rename pass through for every immediate child: the
	// entry may have been a directory, which can no longer be stat'd
	// to tell, and the shell refreshes its listing either way.
	removal := event.Op&(fsnotify.Remove|fsnotify.Rename) != 0
	dir := false
	if !removal {
		dir = isDir(event.Name)
		if !dir && !isDocument(event.Name) {
			return
		}
	}

	var eventType EventType
	switch {
	case event.Op&fsnotify.Create == fsnotify.Create:
		eventType = EventCreate
	case event.Op&fsnotify.Write == fsnotify.Write:
		eventType = EventWrite
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		eventType = EventRemove
	case event.Op&fsnotify.Rename == fsnotify.Rename:
		eventType = EventRename
	default:
		return
	}

	e := Event{
		Type:  eventType,
		Path:  event.Name,
		IsDir: dir,
	}

	w.mu.RLock()
	callbacks := make([]Callback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, cb := range callbacks {
		cb(e)
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
