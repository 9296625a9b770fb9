package marquee

import (
	"fmt"
	"io"
	"os"
)

// Frame is one rendered viewport state, delivered to the sink on every
// step. Last is true exactly on the boundary frame of a pass, so the
// renderer owns the line-ending decision without reaching into engine
// state.
type Frame struct {
	Text  string
	Index int
	Last  bool
}

// Sink consumes rendered frames. An error aborts the step that produced
// the frame.
type Sink func(Frame) error

// LinePrinter is the default sink: it overwrites the current terminal
// line with each frame (carriage return, no newline) and terminates the
// line only on the boundary frame, producing a continuously-updating
// single-line marquee.
type LinePrinter struct {
	W      io.Writer
	Prefix string
	Suffix string
}

// NewLinePrinter returns a LinePrinter on stdout framed by "." on both
// sides.
func NewLinePrinter() *LinePrinter {
	return &LinePrinter{W: os.Stdout, Prefix: ".", Suffix: "."}
}

// Print writes one frame.
func (p *LinePrinter) Print(f Frame) error {
	end := ""
	if f.Last {
		end = "\n"
	}
	_, err := fmt.Fprintf(p.W, "\r%s%s%s%s", p.Prefix, f.Text, p.Suffix, end)
	return err
}
