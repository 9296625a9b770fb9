// Package watch reloads the marquee text when its source file changes.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/andyrewlee/marquee/internal/logging"
)

// TextWatcher watches a single text file and reports its new content
// whenever it changes.
type TextWatcher struct {
	path      string
	watcher   *fsnotify.Watcher
	onChanged func(text string)
	closeOnce sync.Once
	debounce  time.Duration
}

// NewTextWatcher creates a watcher for path. onChanged receives the
// file's first line after every change. We watch the parent directory
// rather than the file itself because editors do atomic saves (write
// temp file, then rename); fsnotify watches inodes, so a watch on the
// file would be lost on the first save.
func NewTextWatcher(path string, onChanged func(text string)) (*TextWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	return &TextWatcher{
		path:      abs,
		watcher:   watcher,
		onChanged: onChanged,
		debounce:  100 * time.Millisecond,
	}, nil
}

// Run processes file system events until the context is canceled or the
// watcher closes. Events for the watched file reset a quiet timer; the
// file is read only after no event has arrived for the debounce window.
// A truncating save fires separate events for the truncation and the
// write, so reading on the first event would deliver empty or partial
// content.
func (w *TextWatcher) Run(ctx context.Context) error {
	quiet := time.NewTimer(w.debounce)
	if !quiet.Stop() {
		<-quiet.C
	}
	defer quiet.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			if !quiet.Stop() {
				select {
				case <-quiet.C:
				default:
				}
			}
			quiet.Reset(w.debounce)

		case <-quiet.C:
			text, err := ReadText(w.path)
			if err != nil {
				logging.Warn("reload %s: %v", w.path, err)
				continue
			}
			if w.onChanged != nil {
				w.onChanged(text)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn("watcher error: %v", err)
		}
	}
}

// Close stops the watcher. Safe to call more than once.
func (w *TextWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.watcher.Close()
	})
	return err
}

// ReadText returns the first line of the file at path, without its line
// ending. A marquee scrolls a single line; anything after the first
// newline is ignored.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text := string(data)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimRight(text, "\r"), nil
}
