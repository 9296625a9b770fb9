// Package marquee renders a fixed-width sliding window over a longer
// string, producing the frame sequence of a single-line terminal marquee.
package marquee

// Window maps a logical scroll index to the (begin, end) offsets that
// describe how the viewport overlaps the text. begin is the offset of the
// viewport's left edge relative to the text's start; end is the distance
// from the viewport's right edge to the text's end. Negative begin means
// the left edge is still left of the text; negative end means the right
// edge is past it.
func Window(index, width, textLen int) (begin, end int) {
	return index - width, textLen - index
}
