package marquee

import "errors"

// ErrInvalidConfig is the sentinel for configuration rejected at
// construction time. Stepping never raises it.
var ErrInvalidConfig = errors.New("invalid marquee configuration")

// ErrUnknownDirection is the sentinel for a Direction value outside the
// closed {LeadingEdgeRight, LeadingEdgeLeft} set.
var ErrUnknownDirection = errors.New("unknown scroll direction")
