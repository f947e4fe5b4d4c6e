// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The cursor tracks the current position within the input buffer. Advancing
// the position is the only state change the cursor performs; every grammar
// rule that may fail saves and restores it.

package pure

import "bytes"

// Cursor holds the UTF-8 input and the current byte position.
type Cursor struct {
	src   *Source
	input []byte
	pos   int

	// bare is set while a bare document body is being parsed. A bare
	// document has no explicit framing, so the cursor refuses to consume
	// input at a line that starts with a document boundary marker.
	bare bool
}

// NewCursor returns a cursor positioned at the start of src.
func NewCursor(src *Source) *Cursor {
	return &Cursor{src: src, input: src.Data()}
}

// Pos returns the current byte position.
func (c *Cursor) Pos() int { return c.pos }

// SetPos rewinds (or advances) the cursor to position p.
func (c *Cursor) SetPos(p int) { c.pos = p }

// EOF reports whether the cursor has consumed the whole input.
func (c *Cursor) EOF() bool { return c.pos >= len(c.input) }

// Byte returns the byte at the cursor, or 0 at end of input.
func (c *Cursor) Byte() byte {
	if c.pos >= len(c.input) {
		return 0
	}
	return c.input[c.pos]
}

// ByteAt returns the byte at offset i, or 0 past the end of input.
func (c *Cursor) ByteAt(i int) byte {
	if i < 0 || i >= len(c.input) {
		return 0
	}
	return c.input[i]
}

// AtLineStart reports whether the cursor sits at the start of a line.
func (c *Cursor) AtLineStart() bool {
	return c.pos == 0 || c.input[c.pos-1] == '\n'
}

// atDocumentBoundary reports whether the current line begins with "---" or
// "..." followed by whitespace or end of input, and the cursor sits at the
// start of that marker.
func (c *Cursor) atDocumentBoundary() bool {
	if !c.AtLineStart() {
		return false
	}
	rest := c.input[c.pos:]
	if !bytes.HasPrefix(rest, []byte("---")) && !bytes.HasPrefix(rest, []byte("...")) {
		return false
	}
	if len(rest) == 3 {
		return true
	}
	switch rest[3] {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// guarded reports whether matching is currently forbidden at the cursor.
// While inside a bare document, consuming input at a document boundary would
// swallow the marker mid-grammar, so matching refuses instead.
func (c *Cursor) guarded() bool {
	return c.bare && c.atDocumentBoundary()
}

// SetBare toggles the bare-document guard and returns the previous setting.
func (c *Cursor) SetBare(bare bool) bool {
	prev := c.bare
	c.bare = bare
	return prev
}

// Match consumes lit if the input at the cursor starts with it.
func (c *Cursor) Match(lit string) bool {
	if c.guarded() {
		return false
	}
	if !bytes.HasPrefix(c.input[c.pos:], []byte(lit)) {
		return false
	}
	c.pos += len(lit)
	return true
}

// MatchByte consumes b if it is the byte at the cursor.
func (c *Cursor) MatchByte(b byte) bool {
	if c.guarded() {
		return false
	}
	if c.pos >= len(c.input) || c.input[c.pos] != b {
		return false
	}
	c.pos++
	return true
}

// MatchFunc consumes one byte satisfying pred.
func (c *Cursor) MatchFunc(pred func(byte) bool) bool {
	if c.guarded() {
		return false
	}
	if c.pos >= len(c.input) || !pred(c.input[c.pos]) {
		return false
	}
	c.pos++
	return true
}

// MatchWhile consumes the longest run of bytes satisfying pred and returns
// its length.
func (c *Cursor) MatchWhile(pred func(byte) bool) int {
	if c.guarded() {
		return 0
	}
	n := 0
	for c.pos < len(c.input) && pred(c.input[c.pos]) {
		c.pos++
		n++
	}
	return n
}

// Check reports whether the input at the cursor starts with lit, without
// advancing.
func (c *Cursor) Check(lit string) bool {
	if c.guarded() {
		return false
	}
	return bytes.HasPrefix(c.input[c.pos:], []byte(lit))
}

// CheckByte reports whether b is the byte at the cursor, without advancing.
func (c *Cursor) CheckByte(b byte) bool {
	if c.guarded() {
		return false
	}
	return c.pos < len(c.input) && c.input[c.pos] == b
}

// Try runs block and restores the position when it returns false.
// This is the backtracking primitive.
func (c *Cursor) Try(block func() bool) bool {
	pos := c.pos
	if block() {
		return true
	}
	c.pos = pos
	return false
}

// Peek runs block and always restores the position, returning block's
// result.
func (c *Cursor) Peek(block func() bool) bool {
	pos := c.pos
	ok := block()
	c.pos = pos
	return ok
}
