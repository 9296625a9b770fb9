package marquee

import (
	"context"
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
)

// Options configures an Engine. Start from DefaultOptions and override.
type Options struct {
	// Width is the viewport size in display cells. Must be positive.
	Width int
	// Text is the string to scroll. May be empty; every frame is then
	// pure filler. The text is fixed for the engine's lifetime.
	Text string
	// Wait is the delay inserted after each rendered frame. Zero means
	// no delay; the engine never sleeps before the first frame.
	Wait time.Duration
	// Filler pads viewport cells the text does not cover. Must occupy
	// exactly one display cell. Zero value means space.
	Filler rune
	// Direction selects the scroll variant.
	Direction Direction
	// IncludeFirst and IncludeLast control whether the fully-before and
	// fully-after all-filler frames are part of the visitable range.
	IncludeFirst bool
	IncludeLast  bool
	// Sink consumes each rendered frame. Nil means a LinePrinter on
	// stdout with "." as prefix and suffix.
	Sink Sink
	// Sleep is the delay capability used between frames. Nil means a
	// real timer that honors context cancellation. Tests substitute a
	// no-op to step through frames without waiting.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultOptions returns options for a 40-cell space-padded marquee that
// scrolls left at roughly three frames per second.
func DefaultOptions(text string) Options {
	return Options{
		Width:        40,
		Text:         text,
		Wait:         300 * time.Millisecond,
		Filler:       ' ',
		Direction:    LeadingEdgeRight,
		IncludeFirst: true,
		IncludeLast:  true,
	}
}

// Engine owns the logical scroll index and the step/wrap policy. It is
// not safe for concurrent use; exactly one goroutine drives it.
type Engine struct {
	width        int
	text         []rune
	wait         time.Duration
	filler       rune
	direction    Direction
	includeFirst bool
	includeLast  bool
	sink         Sink
	sleep        func(ctx context.Context, d time.Duration) error

	index int
}

// New validates opts and returns an Engine positioned just before the
// first visitable frame, so the first StepForward lands exactly on it.
func New(opts Options) (*Engine, error) {
	if opts.Width <= 0 {
		return nil, fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, opts.Width)
	}
	if opts.Wait < 0 {
		return nil, fmt.Errorf("%w: wait must not be negative, got %v", ErrInvalidConfig, opts.Wait)
	}
	filler := opts.Filler
	if filler == 0 {
		filler = ' '
	}
	if runewidth.RuneWidth(filler) != 1 {
		return nil, fmt.Errorf("%w: filler %q must occupy exactly one display cell", ErrInvalidConfig, filler)
	}
	if !opts.Direction.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, int(opts.Direction))
	}
	sink := opts.Sink
	if sink == nil {
		sink = NewLinePrinter().Print
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = waitFor
	}

	e := &Engine{
		width:        opts.Width,
		text:         []rune(opts.Text),
		wait:         opts.Wait,
		filler:       filler,
		direction:    opts.Direction,
		includeFirst: opts.IncludeFirst,
		includeLast:  opts.IncludeLast,
		sink:         sink,
		sleep:        sleep,
	}
	e.index = e.minIndex() - 1
	return e, nil
}

// minIndex is the first visitable frame: 0 when the all-filler leading
// frame is included, otherwise 1.
func (e *Engine) minIndex() int {
	if e.includeFirst {
		return 0
	}
	return 1
}

// maxIndex is the last visitable frame: len(text)+width, minus one when
// the all-filler trailing frame is excluded.
func (e *Engine) maxIndex() int {
	m := len(e.text) + e.width
	if !e.includeLast {
		m--
	}
	return m
}

// Index reports the current logical scroll position.
func (e *Engine) Index() int { return e.index }

// MinIndex reports the first visitable index of a pass.
func (e *Engine) MinIndex() int { return e.minIndex() }

// Width reports the viewport width in display cells.
func (e *Engine) Width() int { return e.width }

// Direction reports the current scroll variant.
func (e *Engine) Direction() Direction { return e.direction }

// SetDirection switches the scroll variant in place. The change takes
// effect on the next step. Values outside the closed set are rejected.
func (e *Engine) SetDirection(d Direction) error {
	if !d.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}
	e.direction = d
	return nil
}

// FrameCount reports how many frames one full pass emits.
func (e *Engine) FrameCount() int {
	return e.maxIndex() - e.minIndex() + 1
}

// StepForward advances the index by one, wrapping past the last frame to
// the first, then renders: derive the display text, invoke the sink, and
// apply the configured delay. A sink error aborts the step after the
// index has advanced, so a caller that recovers continues from the next
// logical position.
func (e *Engine) StepForward(ctx context.Context) error {
	e.index++
	if e.index > e.maxIndex() {
		e.index = e.minIndex()
	}
	return e.render(ctx)
}

// StepBackward retreats the index by one, wrapping before the first
// frame to the last, with the same render sequence as StepForward.
func (e *Engine) StepBackward(ctx context.Context) error {
	e.index--
	if e.index < e.minIndex() {
		e.index = e.maxIndex()
	}
	return e.render(ctx)
}

// RunOnePass steps forward once per frame in the visitable range.
// Started fresh, it visits every index from the first frame to the
// boundary frame in order; the boundary frame's sink call carries
// Last=true.
func (e *Engine) RunOnePass(ctx context.Context) error {
	for i := 0; i < e.FrameCount(); i++ {
		if err := e.StepForward(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Repeat runs full passes until times reaches zero. A negative times
// repeats until ctx is cancelled.
func (e *Engine) Repeat(ctx context.Context, times int) error {
	for times != 0 {
		if err := e.RunOnePass(ctx); err != nil {
			return err
		}
		if times > 0 {
			times--
		}
	}
	return nil
}

// Restart resets the index to the pre-first sentinel and immediately
// steps forward, re-synchronizing to the first visitable frame without
// waiting for a pass boundary.
func (e *Engine) Restart(ctx context.Context) error {
	e.index = e.minIndex() - 1
	return e.StepForward(ctx)
}

func (e *Engine) render(ctx context.Context) error {
	frame := Frame{
		Text:  e.direction.derive(e.index, e.text, e.width, e.filler),
		Index: e.index,
		Last:  e.index == e.maxIndex(),
	}
	if err := e.sink(frame); err != nil {
		return err
	}
	return e.sleep(ctx, e.wait)
}

// waitFor blocks for d or until ctx is done, whichever comes first.
func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
