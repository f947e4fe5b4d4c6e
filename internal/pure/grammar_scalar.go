// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Flow scalar productions: plain, single-quoted, and double-quoted
// scalars, including line folding and escape decoding.

package pure

import (
	"strings"
	"unicode/utf8"
)

// isPlainSafeAt reports whether the byte at offset i may appear in a plain
// scalar in context c.
func (p *parser) isPlainSafeAt(i int, c context) bool {
	in := p.cursor.input
	if i >= len(in) {
		return false
	}
	b := in[i]
	if !isNsChar(b) {
		return false
	}
	if (c == flowIn || c == flowKey) && isFlowIndicator(b) {
		return false
	}
	return true
}

// plainFirst matches ns-plain-first(c): a safe first character, or one of
// "-?:" when followed by a safe character.
func (p *parser) plainFirst(c context) bool {
	if p.cursor.guarded() || p.cursor.EOF() {
		return false
	}
	b := p.cursor.Byte()
	if b == '-' || b == '?' || b == ':' {
		if !p.isPlainSafeAt(p.cursor.Pos()+1, c) {
			return false
		}
		p.cursor.SetPos(p.cursor.Pos() + 1)
		return true
	}
	if !isNsChar(b) || isIndicator(b) {
		return false
	}
	p.cursor.SetPos(p.cursor.Pos() + 1)
	return true
}

// plainChar matches ns-plain-char(c): ':' only when followed by a safe
// character, '#' only when directly preceded by a non-space character.
func (p *parser) plainChar(c context) bool {
	i := p.cursor.Pos()
	if !p.isPlainSafeAt(i, c) {
		return false
	}
	switch p.cursor.input[i] {
	case ':':
		if !p.isPlainSafeAt(i+1, c) {
			return false
		}
	case '#':
		if i == 0 || !isNsChar(p.cursor.input[i-1]) {
			return false
		}
	}
	p.cursor.SetPos(i + 1)
	return true
}

// plainInLine consumes nb-ns-plain-in-line(c): runs of whitespace followed
// by plain characters, stopping before trailing whitespace.
func (p *parser) plainInLine(c context) {
	for {
		save := p.cursor.Pos()
		p.cursor.MatchWhile(isWhite)
		if !p.plainChar(c) {
			p.cursor.SetPos(save)
			return
		}
	}
}

// parsePlain matches ns-plain(n,c), dispatching on the context between the
// one-line and multi-line forms.
func (p *parser) parsePlain(n int, c context) bool {
	switch c {
	case blockKey, flowKey:
		return p.parsePlainOneLine(c)
	default:
		return p.parsePlainMultiLine(n, c)
	}
}

// parsePlainOneLine matches ns-plain-one-line(c) and emits the scalar.
func (p *parser) parsePlainOneLine(c context) bool {
	return p.try(func() bool {
		start := p.cursor.Pos()
		if !p.plainFirst(c) {
			return false
		}
		p.plainInLine(c)
		end := p.cursor.Pos()
		p.emitScalarAt(start, end, string(p.cursor.input[start:end]), PlainStyle)
		return true
	})
}

// parsePlainMultiLine matches ns-plain-multi-line(n,c): the first line
// plus any number of folded continuation lines indented by at least n.
func (p *parser) parsePlainMultiLine(n int, c context) bool {
	return p.try(func() bool {
		start := p.cursor.Pos()
		if !p.plainFirst(c) {
			return false
		}
		p.plainInLine(c)
		end := p.cursor.Pos()

		segments := []string{string(p.cursor.input[start:end])}
		var breaks []int
		for {
			seg, nbreaks, ok := p.plainNextLine(n, c)
			if !ok {
				break
			}
			segments = append(segments, seg)
			breaks = append(breaks, nbreaks)
			end = p.cursor.Pos()
		}
		p.cursor.SetPos(end)

		p.emitScalarAt(start, end, foldSegments(segments, breaks), PlainStyle)
		return true
	})
}

// plainNextLine matches s-ns-plain-next-line(n,c): folded breaks, the line
// prefix, and at least one more plain character. It returns the new
// segment and the number of breaks folded before it.
func (p *parser) plainNextLine(n int, c context) (string, int, bool) {
	seg, nbreaks := "", 0
	ok := p.try(func() bool {
		p.cursor.MatchWhile(isWhite)
		if !p.parseBreak() {
			return false
		}
		nbreaks = 1
		for {
			if !p.try(func() bool {
				p.cursor.MatchWhile(isWhite)
				return p.parseBreak()
			}) {
				break
			}
			nbreaks++
		}
		if !p.parseIndent(n) {
			return false
		}
		p.cursor.MatchWhile(isWhite)
		if p.cursor.guarded() {
			return false
		}
		segStart := p.cursor.Pos()
		if !p.plainChar(c) {
			return false
		}
		p.plainInLine(c)
		seg = string(p.cursor.input[segStart:p.cursor.Pos()])
		return true
	})
	return seg, nbreaks, ok
}

// foldSegments joins scalar line segments: a single break folds to one
// space, a run of k breaks folds to k-1 newlines.
func foldSegments(segments []string, breaks []int) string {
	var b strings.Builder
	b.WriteString(segments[0])
	for i, seg := range segments[1:] {
		if breaks[i] == 1 {
			b.WriteByte(' ')
		} else {
			b.WriteString(strings.Repeat("\n", breaks[i]-1))
		}
		b.WriteString(seg)
	}
	return b.String()
}

//
// Single-quoted scalars
//

// parseSingleQuoted matches c-single-quoted(n,c).
func (p *parser) parseSingleQuoted(n int, c context) bool {
	return p.try(func() bool {
		start := p.cursor.Pos()
		if !p.cursor.MatchByte('\'') {
			return false
		}
		value, ok := p.scanSingleQuoted(n, c)
		if !ok {
			return false
		}
		p.emitScalarAt(start, p.cursor.Pos(), value, SingleQuotedStyle)
		return true
	})
}

func (p *parser) scanSingleQuoted(n int, c context) (string, bool) {
	oneLine := c == blockKey || c == flowKey
	var b strings.Builder
	for {
		if p.cursor.EOF() {
			p.raiseIn("single quoted scalar", "unexpected end of input")
		}
		ch := p.cursor.Byte()
		switch {
		case ch == '\'':
			p.cursor.SetPos(p.cursor.Pos() + 1)
			if p.cursor.CheckByte('\'') {
				p.cursor.SetPos(p.cursor.Pos() + 1)
				b.WriteByte('\'')
				continue
			}
			return b.String(), true
		case isBreak(ch):
			if oneLine {
				return "", false
			}
			p.foldQuotedBreaks(&b, n)
		default:
			b.WriteByte(ch)
			p.cursor.SetPos(p.cursor.Pos() + 1)
		}
	}
}

// foldQuotedBreaks handles an unescaped line break within a quoted scalar:
// trailing whitespace is stripped, the break run is folded, and the next
// line's leading whitespace is skipped.
func (p *parser) foldQuotedBreaks(b *strings.Builder, n int) {
	trimTrailingWhite(b)
	p.parseBreak()
	nbreaks := 1
	for {
		if !p.try(func() bool {
			p.cursor.MatchWhile(isWhite)
			return p.parseBreak()
		}) {
			break
		}
		nbreaks++
	}
	if p.cursor.atDocumentBoundary() {
		p.raiseIn("quoted scalar", "unexpected document boundary")
	}
	p.cursor.MatchWhile(isWhite)
	if nbreaks == 1 {
		b.WriteByte(' ')
	} else {
		b.WriteString(strings.Repeat("\n", nbreaks-1))
	}
}

// trimTrailingWhite removes trailing spaces and tabs from the builder.
func trimTrailingWhite(b *strings.Builder) {
	s := b.String()
	i := len(s)
	for i > 0 && isWhite(s[i-1]) {
		i--
	}
	if i != len(s) {
		b.Reset()
		b.WriteString(s[:i])
	}
}

//
// Double-quoted scalars
//

// parseDoubleQuoted matches c-double-quoted(n,c).
func (p *parser) parseDoubleQuoted(n int, c context) bool {
	return p.try(func() bool {
		start := p.cursor.Pos()
		if !p.cursor.MatchByte('"') {
			return false
		}
		value, ok := p.scanDoubleQuoted(n, c)
		if !ok {
			return false
		}
		p.emitScalarAt(start, p.cursor.Pos(), value, DoubleQuotedStyle)
		return true
	})
}

func (p *parser) scanDoubleQuoted(n int, c context) (string, bool) {
	oneLine := c == blockKey || c == flowKey
	var b strings.Builder
	for {
		if p.cursor.EOF() {
			p.raiseIn("double quoted scalar", "unexpected end of input")
		}
		ch := p.cursor.Byte()
		switch {
		case ch == '"':
			p.cursor.SetPos(p.cursor.Pos() + 1)
			return b.String(), true
		case ch == '\\':
			next := p.cursor.ByteAt(p.cursor.Pos() + 1)
			if isBreak(next) {
				if oneLine {
					return "", false
				}
				// An escaped break: the break and the following
				// indentation vanish; interior empty lines keep their
				// newlines.
				p.cursor.SetPos(p.cursor.Pos() + 1)
				p.parseBreak()
				for {
					if !p.try(func() bool {
						p.cursor.MatchWhile(isWhite)
						return p.parseBreak()
					}) {
						break
					}
					b.WriteByte('\n')
				}
				p.cursor.MatchWhile(isWhite)
				continue
			}
			p.decodeEscape(&b)
		case isBreak(ch):
			if oneLine {
				return "", false
			}
			p.foldQuotedBreaks(&b, n)
		default:
			b.WriteByte(ch)
			p.cursor.SetPos(p.cursor.Pos() + 1)
		}
	}
}

// decodeEscape decodes one backslash escape at the cursor into b.
func (p *parser) decodeEscape(b *strings.Builder) {
	p.cursor.SetPos(p.cursor.Pos() + 1) // consume '\'
	if p.cursor.EOF() {
		p.raiseIn("double quoted scalar", "unexpected end of input in escape sequence")
	}
	ch := p.cursor.Byte()
	p.cursor.SetPos(p.cursor.Pos() + 1)
	switch ch {
	case '0':
		b.WriteByte(0x00)
	case 'a':
		b.WriteByte(0x07)
	case 'b':
		b.WriteByte(0x08)
	case 't', '\t':
		b.WriteByte(0x09)
	case 'n':
		b.WriteByte(0x0a)
	case 'v':
		b.WriteByte(0x0b)
	case 'f':
		b.WriteByte(0x0c)
	case 'r':
		b.WriteByte(0x0d)
	case 'e':
		b.WriteByte(0x1b)
	case ' ':
		b.WriteByte(0x20)
	case '"':
		b.WriteByte('"')
	case '/':
		b.WriteByte('/')
	case '\\':
		b.WriteByte('\\')
	case 'N':
		b.WriteRune(0x85)
	case '_':
		b.WriteRune(0xa0)
	case 'L':
		b.WriteRune(0x2028)
	case 'P':
		b.WriteRune(0x2029)
	case 'x':
		b.WriteRune(p.decodeHexEscape(2))
	case 'u':
		b.WriteRune(p.decodeHexEscape(4))
	case 'U':
		b.WriteRune(p.decodeHexEscape(8))
	default:
		p.raiseIn("double quoted scalar", "unknown escape character")
	}
}

func (p *parser) decodeHexEscape(width int) rune {
	var r rune
	for i := 0; i < width; i++ {
		ch := p.cursor.Byte()
		if !isHex(ch) {
			p.raiseIn("double quoted scalar", "invalid hexadecimal escape sequence")
		}
		r = r<<4 | rune(hexValue(ch))
		p.cursor.SetPos(p.cursor.Pos() + 1)
	}
	if r > utf8.MaxRune {
		p.raiseIn("double quoted scalar", "escape sequence is not a valid character")
	}
	return r
}
