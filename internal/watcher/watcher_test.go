package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestWatcher(t *testing.T, root string) (*Watcher, chan Event) {
	t.Helper()
	w, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = w.Stop() })

	events := make(chan Event, 32)
	w.OnChange(func(e Event) { events <- e })

	if err := w.SetRoot(root); err != nil {
		t.Fatalf("SetRoot failed: %v", err)
	}
	w.Start()
	return w, events
}

// waitFor drains events until one satisfies match or the timeout expires.
func waitFor(t *testing.T, events chan Event, what string, match func(Event) bool) Event {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case e := <-events:
			if match(e) {
				return e
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s", what)
		}
	}
}

func TestWatcherDocumentCreate(t *testing.T) {
	root := t.TempDir()
	_, events := newTestWatcher(t, root)

	doc := filepath.Join(root, "a.inkfinite.json")
	if err := os.WriteFile(doc, []byte("{}"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	e := waitFor(t, events, "document create", func(e Event) bool {
		return e.Type == EventCreate && e.Path == doc
	})
	if e.IsDir {
		t.Error("expected IsDir false for a document")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	_, events := newTestWatcher(t, root)

	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	doc := filepath.Join(root, "b.inkfinite.json")
	if err := os.WriteFile(doc, []byte("{}"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// The .txt file was written first; if it were not filtered its
	// event would arrive before the document's.
	e := waitFor(t, events, "first event", func(e Event) bool { return true })
	if e.Path != doc {
		t.Errorf("expected first event for %s, got %s", doc, e.Path)
	}
}

func TestWatcherDirectoryRemove(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "drafts")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	_, events := newTestWatcher(t, root)

	if err := os.Remove(sub); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	waitFor(t, events, "directory remove", func(e Event) bool {
		return e.Type == EventRemove && e.Path == sub
	})
}

func TestWatcherFileRemove(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "stray.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, events := newTestWatcher(t, root)

	if err := os.Remove(file); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	// Removals reach the shell regardless of name; the entry can no
	// longer be stat'd to tell what it was.
	waitFor(t, events, "file remove", func(e Event) bool {
		return e.Type == EventRemove && e.Path == file
	})
}

func TestWatcherSetRootSwitch(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	w, events := newTestWatcher(t, first)

	if err := w.SetRoot(second); err != nil {
		t.Fatalf("SetRoot to second failed: %v", err)
	}

	doc := filepath.Join(second, "c.inkfinite.json")
	if err := os.WriteFile(doc, []byte("{}"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	e := waitFor(t, events, "create in new root", func(e Event) bool {
		return e.Type == EventCreate
	})
	if e.Path != doc {
		t.Errorf("expected event from new root, got %s", e.Path)
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		t    EventType
		want string
	}{
		{EventCreate, "create"},
		{EventWrite, "update"},
		{EventRemove, "remove"},
		{EventRename, "rename"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}
