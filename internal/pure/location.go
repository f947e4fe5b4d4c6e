// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pure

// Location is a byte range within a Source. Locations are immutable after
// construction; the combinators below return new values.
type Location struct {
	src   *Source
	Start int
	End   int
}

// NewLocation returns the location [start, end) within src.
func NewLocation(src *Source, start, end int) Location {
	return Location{src: src, Start: start, End: end}
}

// PointLocation returns the zero-width location at offset p.
func PointLocation(src *Source, p int) Location {
	return Location{src: src, Start: p, End: p}
}

// Source returns the source this location points into.
func (l Location) Source() *Source { return l.src }

// Join returns the smallest location covering both l and o.
func (l Location) Join(o Location) Location {
	start, end := l.Start, l.End
	if o.Start < start {
		start = o.Start
	}
	if o.End > end {
		end = o.End
	}
	return Location{src: l.src, Start: start, End: end}
}

// Trim returns a location whose end has been walked back over trailing
// blank and comment-only lines.
func (l Location) Trim() Location {
	end := l.src.Trim(l.End)
	if end < l.Start {
		end = l.Start
	}
	return Location{src: l.src, Start: l.Start, End: end}
}

// Point returns the zero-width location at l's start.
func (l Location) Point() Location {
	return Location{src: l.src, Start: l.Start, End: l.Start}
}

// Text returns the bytes the location covers.
func (l Location) Text() string {
	return string(l.src.data[l.Start:l.End])
}

// StartPosition returns the 0-based line and column of the start offset.
func (l Location) StartPosition() (line, column int) {
	return l.src.Position(l.Start)
}

// EndPosition returns the 0-based line and column of the end offset.
func (l Location) EndPosition() (line, column int) {
	return l.src.Position(l.End)
}

// Contains reports whether o lies within l; shared endpoints count.
func (l Location) Contains(o Location) bool {
	return l.Start <= o.Start && o.End <= l.End
}

// Before reports whether l ends at or before o starts.
func (l Location) Before(o Location) bool {
	return l.End <= o.Start
}

// After reports whether l starts at or after o ends.
func (l Location) After(o Location) bool {
	return l.Start >= o.End
}
