package marquee

import (
	"fmt"
	"strings"
)

// Direction selects which edge of the viewport the text appears to enter
// from. The set is closed; any other value is rejected at construction.
type Direction int

const (
	// LeadingEdgeRight makes the text enter at the viewport's right edge
	// and slide left: the viewport's left edge chases the text's start.
	LeadingEdgeRight Direction = iota
	// LeadingEdgeLeft makes the text enter at the viewport's left edge
	// and slide right: the viewport's right edge chases the text's end.
	LeadingEdgeLeft
)

func (d Direction) String() string {
	switch d {
	case LeadingEdgeRight:
		return "right"
	case LeadingEdgeLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Reversed returns the opposite direction.
func (d Direction) Reversed() Direction {
	if d == LeadingEdgeRight {
		return LeadingEdgeLeft
	}
	return LeadingEdgeRight
}

// ParseDirection maps the CLI/config spellings "left" and "right" to a
// Direction value.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return LeadingEdgeRight, nil
	case "left":
		return LeadingEdgeLeft, nil
	default:
		return 0, fmt.Errorf("%w: %q (want \"left\" or \"right\")", ErrUnknownDirection, s)
	}
}

func (d Direction) valid() bool {
	return d == LeadingEdgeRight || d == LeadingEdgeLeft
}

// derive computes the display text for one frame. Both variants derive
// (begin, end) from the live index so they can never be fed mismatched
// offsets for a stale position.
func (d Direction) derive(index int, text []rune, width int, filler rune) string {
	begin, end := Window(index, width, len(text))
	switch d {
	case LeadingEdgeRight:
		return deriveRight(text, begin, end, filler)
	default:
		return deriveLeft(text, index, begin, end, filler)
	}
}

// deriveRight renders the variant whose text enters at the right edge.
func deriveRight(text []rune, begin, end int, filler rune) string {
	n := len(text)
	switch {
	case begin < 0 && end < 0:
		return pad(filler, -begin) + string(text) + pad(filler, -end)
	case begin < 0:
		if end == 0 {
			return pad(filler, -begin) + string(text)
		}
		return pad(filler, -begin) + string(text[:n-end])
	case end < 0:
		return string(text[begin:]) + pad(filler, -end)
	default:
		if end == 0 {
			return string(text[begin:])
		}
		return string(text[begin : n-end])
	}
}

// deriveLeft renders the variant whose text enters at the left edge.
func deriveLeft(text []rune, index, begin, end int, filler rune) string {
	n := len(text)
	switch {
	case begin < 0 && end < 0:
		return pad(filler, -end) + string(text) + pad(filler, -begin)
	case begin < 0:
		if index == 0 {
			return pad(filler, -begin)
		}
		return string(text[n-index:]) + pad(filler, -begin)
	case end < 0:
		if begin == 0 {
			return pad(filler, -end) + string(text)
		}
		return pad(filler, -end) + string(text[:n-begin])
	default:
		if begin == 0 {
			return string(text[end:])
		}
		return string(text[end : n-begin])
	}
}

func pad(filler rune, count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(string(filler), count)
}
