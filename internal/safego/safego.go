// Package safego runs goroutines with panic recovery so a crashing
// background task cannot take down the marquee mid-line.
package safego

import (
	"runtime/debug"

	"github.com/andyrewlee/marquee/internal/logging"
)

// Run executes fn and converts panics into logged errors. It does not
// recover from runtime-fatal errors (e.g., concurrent map writes).
func Run(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			label := name
			if label == "" {
				label = "goroutine"
			}
			logging.Error("panic in %s: %v\n%s", label, r, debug.Stack())
		}
	}()
	fn()
}

// Go runs fn in a new goroutine with panic recovery.
func Go(name string, fn func()) {
	go Run(name, fn)
}
