// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Stream and document framing: prefixes, suffixes, directives, and the
// explicit/bare document forms.

package pure

import "fmt"

// parseStream parses l-yaml-stream, the top-level production.
func (p *parser) parseStream() {
	p.deliver(&Event{Type: StreamStartEvent, Location: PointLocation(p.source, 0)})

	for {
		p.parseDocumentPrefixes()
		if p.cursor.EOF() {
			break
		}
		if p.parseDocumentSuffix() {
			continue
		}
		p.startDocument()
		if !p.parseAnyDocument() {
			break
		}
	}

	if !p.cursor.EOF() {
		p.raise("parser finished before end of input")
	}
	p.finishDocument(true)
	p.deliver(&Event{Type: StreamEndEvent, Location: PointLocation(p.source, p.cursor.Pos())})
}

// parseDocumentPrefixes consumes a byte order mark and any blank or
// comment-only lines between documents.
func (p *parser) parseDocumentPrefixes() {
	p.cursor.Match("\xef\xbb\xbf")
	p.star(func() bool { return p.parseLComment() })
}

// parseDocumentSuffix matches c-document-end ("...") followed by comments,
// closing the armed document explicitly.
func (p *parser) parseDocumentSuffix() bool {
	return p.try(func() bool {
		if !p.cursor.Match("...") {
			return false
		}
		if b := p.cursor.Byte(); !p.cursor.EOF() && !isBlank(b) {
			return false
		}
		p.finishDocument(false)
		return p.parseSLComments()
	})
}

// parseAnyDocument matches l-any-document: an optional run of directives
// followed by an explicit or bare document. Directives attach to whichever
// document starts next.
func (p *parser) parseAnyDocument() bool {
	p.star(func() bool { return p.parseDirective() })
	if p.parseExplicitDocument() {
		return true
	}
	// A directive not followed by "---" is out of spec; any directives
	// parsed above still attach to the document that starts here.
	return p.parseBareDocument()
}

// parseDirective matches a %YAML, %TAG, or reserved directive line.
func (p *parser) parseDirective() bool {
	return p.try(func() bool {
		if !p.cursor.AtLineStart() || !p.cursor.MatchByte('%') {
			return false
		}
		nameStart := p.cursor.Pos()
		p.cursor.MatchWhile(func(b byte) bool { return isNsChar(b) })
		name := string(p.cursor.input[nameStart:p.cursor.Pos()])
		switch name {
		case "YAML":
			p.parseYAMLDirective()
		case "TAG":
			p.parseTagDirective()
		default:
			// Reserved directives are consumed and ignored.
			p.cursor.MatchWhile(func(b byte) bool { return !isBreak(b) })
		}
		if !p.parseSLComments() {
			p.raise(fmt.Sprintf("expected end of line after %%%s directive", name))
		}
		return true
	})
}

func (p *parser) parseYAMLDirective() {
	if p.versionSeen {
		p.raise("duplicate %YAML directive")
	}
	p.cursor.MatchWhile(isWhite)
	major, ok := p.matchNumber()
	if !ok || !p.cursor.MatchByte('.') {
		p.raise("expected a version number in %YAML directive")
	}
	minor, ok := p.matchNumber()
	if !ok {
		p.raise("expected a version number in %YAML directive")
	}
	p.version = &Version{Major: major, Minor: minor}
	p.versionSeen = true
}

func (p *parser) parseTagDirective() {
	p.cursor.MatchWhile(isWhite)
	handleStart := p.cursor.Pos()
	if !p.cursor.MatchByte('!') {
		p.raise("expected a tag handle in %TAG directive")
	}
	if !p.cursor.MatchByte('!') {
		p.cursor.MatchWhile(isWordChar)
		p.cursor.MatchByte('!')
	}
	handle := string(p.cursor.input[handleStart:p.cursor.Pos()])
	if p.cursor.MatchWhile(isWhite) == 0 {
		p.raise("expected a tag prefix in %TAG directive")
	}
	prefixStart := p.cursor.Pos()
	if p.cursor.MatchWhile(isURIChar) == 0 {
		p.raise("expected a tag prefix in %TAG directive")
	}
	prefix := string(p.cursor.input[prefixStart:p.cursor.Pos()])
	if _, dup := p.tagDirectives[handle]; dup && handle != "!" && handle != "!!" {
		p.raise(fmt.Sprintf("duplicate %%TAG directive for handle %q", handle))
	}
	p.tagDirectives[handle] = decodeURIEscapes(prefix)
}

func (p *parser) matchNumber() (int, bool) {
	start := p.cursor.Pos()
	if p.cursor.MatchWhile(isDecimal) == 0 {
		return 0, false
	}
	n := 0
	for _, b := range p.cursor.input[start:p.cursor.Pos()] {
		n = n*10 + int(b-'0')
	}
	return n, true
}

// parseExplicitDocument matches c-directives-end ("---") followed by a bare
// document body or an empty node.
func (p *parser) parseExplicitDocument() bool {
	return p.try(func() bool {
		start := p.cursor.Pos()
		if !p.cursor.AtLineStart() || !p.cursor.Match("---") {
			return false
		}
		if b := p.cursor.Byte(); !p.cursor.EOF() && !isBlank(b) {
			return false
		}
		if p.docStart != nil {
			p.docStart.Implicit = false
			p.docStart.Location = NewLocation(p.source, start, p.cursor.Pos())
		}
		if p.parseBareDocument() {
			return true
		}
		// An empty explicit document.
		pos := p.cursor.Pos()
		if !p.parseSLComments() {
			return false
		}
		p.emitEmptyScalar(pos)
		return true
	})
}

// parseBareDocument matches the document body: a block node at the virtual
// indentation level -1. The cursor's document-boundary guard is active for
// the whole body so that "---" and "..." lines are never swallowed
// mid-grammar.
func (p *parser) parseBareDocument() bool {
	prev := p.cursor.SetBare(true)
	ok := p.parseBlockNode(-1, blockIn)
	p.cursor.SetBare(prev)
	return ok
}
