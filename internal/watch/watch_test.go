package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReadText(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"single line", "hello", "hello"},
		{"trailing newline", "hello\n", "hello"},
		{"crlf", "hello\r\n", "hello"},
		{"only first line", "first\nsecond\nthird", "first"},
		{"empty file", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "text.txt")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}
			got, err := ReadText(path)
			if err != nil {
				t.Fatalf("ReadText failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadTextMissingFile(t *testing.T) {
	if _, err := ReadText(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWatcherReportsChangedText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "text.txt")
	if err := os.WriteFile(path, []byte("before"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	changed := make(chan string, 4)
	w, err := NewTextWatcher(path, func(text string) {
		changed <- text
	})
	if err != nil {
		t.Fatalf("NewTextWatcher failed: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	// Give the watcher a moment to settle before triggering events.
	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(path, []byte("after\nignored"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case text := <-changed:
		if text != "after" {
			t.Errorf("changed text = %q, want %q", text, "after")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

// A save with os.WriteFile truncates before writing, so the watcher sees
// an event while the file is empty. Reads must wait until events settle
// rather than fire on the first one, or reloads deliver empty or stale
// text.
func TestWatcherCoalescesRapidSaves(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "text.txt")
	if err := os.WriteFile(path, []byte("initial"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	changed := make(chan string, 16)
	w, err := NewTextWatcher(path, func(text string) {
		changed <- text
	})
	if err != nil {
		t.Fatalf("NewTextWatcher failed: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	for _, body := range []string{"one", "two", "three"} {
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	var got []string
	deadline := time.After(2 * time.Second)
wait:
	for {
		select {
		case text := <-changed:
			got = append(got, text)
			if text == "three" {
				break wait
			}
		case <-deadline:
			t.Fatalf("timed out waiting for final content, got %q", got)
		}
	}
	for _, text := range got {
		if text == "" {
			t.Errorf("delivered empty text mid-save, sequence %q", got)
		}
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "text.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	changed := make(chan string, 4)
	w, err := NewTextWatcher(path, func(text string) {
		changed <- text
	})
	if err != nil {
		t.Fatalf("NewTextWatcher failed: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("y"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case text := <-changed:
		t.Errorf("unexpected notification for sibling file: %q", text)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "text.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	w, err := NewTextWatcher(path, nil)
	if err != nil {
		t.Fatalf("NewTextWatcher failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
