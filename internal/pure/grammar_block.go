// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Block-context productions: block nodes, block sequences and mappings,
// compact collections, and the literal/folded block scalars.

package pure

import "strings"

// parseBlockNode matches s-l+block-node(n,c).
func (p *parser) parseBlockNode(n int, c context) bool {
	return p.parseBlockInBlock(n, c) || p.parseFlowInBlock(n)
}

// parseBlockInBlock matches s-l+block-in-block(n,c).
func (p *parser) parseBlockInBlock(n int, c context) bool {
	return p.parseBlockScalar(n, c) || p.parseBlockCollection(n, c)
}

// parseFlowInBlock matches s-l+flow-in-block(n): a flow node embedded in
// block context, terminated by comments.
func (p *parser) parseFlowInBlock(n int) bool {
	return p.cached(func() bool {
		if !p.parseSeparate(n+1, flowOut) {
			return false
		}
		if !p.parseFlowNode(n+1, flowOut) {
			return false
		}
		return p.parseSLComments()
	})
}

// parseBlockScalar matches s-l+block-scalar(n,c): separation, optional
// properties, then a literal or folded scalar.
func (p *parser) parseBlockScalar(n int, c context) bool {
	return p.cached(func() bool {
		if !p.parseSeparate(n+1, c) {
			return false
		}
		p.try(func() bool {
			return p.parseProperties(n+1, c) && p.parseSeparate(n+1, c)
		})
		return p.parseLiteral(n) || p.parseFolded(n)
	})
}

// parseBlockCollection matches s-l+block-collection(n,c). Properties apply
// to the collection only when nothing but comments follows them on the
// line.
func (p *parser) parseBlockCollection(n int, c context) bool {
	return p.cached(func() bool {
		p.try(func() bool {
			if !p.parseSeparate(n+1, c) {
				return false
			}
			if !p.parseProperties(n+1, c) {
				return false
			}
			return p.peek(func() bool { return p.parseSLComments() })
		})
		if !p.parseSLComments() {
			return false
		}
		return p.parseBlockSequence(seqSpaces(n, c)) || p.parseBlockMapping(n)
	})
}

// checkSeqEntryIndicator reports a '-' indicator at the cursor that is not
// the start of a plain scalar.
func (p *parser) checkSeqEntryIndicator() bool {
	if !p.cursor.CheckByte('-') {
		return false
	}
	return !isNsChar(p.cursor.ByteAt(p.cursor.Pos() + 1))
}

// parseBlockSequence matches l+block-sequence(n): one or more "- entry"
// lines at a detected indent n+m.
func (p *parser) parseBlockSequence(n int) bool {
	return p.cached(func() bool {
		m := p.detectIndent(n)
		if m <= 0 {
			return false
		}
		if !p.peek(func() bool {
			return p.parseIndent(n+m) && p.checkSeqEntryIndicator()
		}) {
			return false
		}
		p.emitCollectionStart(SequenceStartEvent, p.cursor.Pos()+n+m, BlockStyle, true)
		ok := p.plus(func() bool {
			return p.parseIndent(n+m) && p.parseBlockSeqEntry(n+m)
		})
		if !ok {
			return false
		}
		p.emitCollectionEnd(SequenceEndEvent, p.cursor.Pos())
		return true
	})
}

// parseBlockSeqEntry matches c-l-block-seq-entry(n): a "-" indicator
// followed by indented block content.
func (p *parser) parseBlockSeqEntry(n int) bool {
	return p.try(func() bool {
		if !p.cursor.MatchByte('-') {
			return false
		}
		if isNsChar(p.cursor.Byte()) {
			return false
		}
		return p.parseBlockIndented(n, blockIn)
	})
}

// parseBlockIndented matches s-l+block-indented(n,c): a compact collection
// on the same line, a full block node, or an empty node.
func (p *parser) parseBlockIndented(n int, c context) bool {
	if p.try(func() bool {
		m := p.cursor.MatchWhile(func(b byte) bool { return b == ' ' })
		return p.parseCompactSequence(n+1+m) || p.parseCompactMapping(n+1+m)
	}) {
		return true
	}
	if p.parseBlockNode(n, c) {
		return true
	}
	return p.try(func() bool {
		pos := p.cursor.Pos()
		if !p.parseSLComments() {
			return false
		}
		p.emitEmptyScalar(pos)
		return true
	})
}

// parseCompactSequence matches ns-l-compact-sequence(n): sequence entries
// starting on the current line.
func (p *parser) parseCompactSequence(n int) bool {
	return p.cached(func() bool {
		if !p.checkSeqEntryIndicator() {
			return false
		}
		p.emitCollectionStart(SequenceStartEvent, p.cursor.Pos(), BlockStyle, true)
		if !p.parseBlockSeqEntry(n) {
			return false
		}
		p.star(func() bool {
			return p.parseIndent(n) && p.parseBlockSeqEntry(n)
		})
		p.emitCollectionEnd(SequenceEndEvent, p.cursor.Pos())
		return true
	})
}

// parseCompactMapping matches ns-l-compact-mapping(n): mapping entries
// starting on the current line.
func (p *parser) parseCompactMapping(n int) bool {
	return p.cached(func() bool {
		p.emitCollectionStart(MappingStartEvent, p.cursor.Pos(), BlockStyle, true)
		if !p.parseBlockMapEntry(n) {
			return false
		}
		p.star(func() bool {
			return p.parseIndent(n) && p.parseBlockMapEntry(n)
		})
		p.emitCollectionEnd(MappingEndEvent, p.cursor.Pos())
		return true
	})
}

// parseBlockMapping matches l+block-mapping(n): entries at a detected
// indent n+m.
func (p *parser) parseBlockMapping(n int) bool {
	return p.cached(func() bool {
		m := p.detectIndent(n)
		if m <= 0 {
			return false
		}
		p.emitCollectionStart(MappingStartEvent, p.cursor.Pos()+n+m, BlockStyle, true)
		ok := p.plus(func() bool {
			return p.parseIndent(n+m) && p.parseBlockMapEntry(n+m)
		})
		if !ok {
			return false
		}
		p.emitCollectionEnd(MappingEndEvent, p.cursor.Pos())
		return true
	})
}

// parseBlockMapEntry matches ns-l-block-map-entry(n).
func (p *parser) parseBlockMapEntry(n int) bool {
	return p.parseBlockMapExplicitEntry(n) || p.parseBlockMapImplicitEntry(n)
}

// parseBlockMapExplicitEntry matches "? key" with an optional ": value"
// line.
func (p *parser) parseBlockMapExplicitEntry(n int) bool {
	return p.cached(func() bool {
		if !p.cursor.MatchByte('?') {
			return false
		}
		if isNsChar(p.cursor.Byte()) {
			return false
		}
		if !p.parseBlockIndented(n, blockOut) {
			return false
		}
		if p.try(func() bool {
			if !p.parseIndent(n) || !p.cursor.MatchByte(':') {
				return false
			}
			if isNsChar(p.cursor.Byte()) {
				return false
			}
			return p.parseBlockIndented(n, blockOut)
		}) {
			return true
		}
		p.emitEmptyScalar(p.cursor.Pos())
		return true
	})
}

// parseBlockMapImplicitEntry matches "key: value" with the restricted
// implicit key forms.
func (p *parser) parseBlockMapImplicitEntry(n int) bool {
	return p.cached(func() bool {
		if !p.parseBlockMapImplicitKey() {
			p.emitEmptyScalar(p.cursor.Pos())
		}
		if !p.cursor.MatchByte(':') {
			return false
		}
		if p.parseBlockNode(n, blockOut) {
			return true
		}
		pos := p.cursor.Pos()
		if !p.parseSLComments() {
			return false
		}
		p.emitEmptyScalar(pos)
		return true
	})
}

// parseBlockMapImplicitKey matches an implicit key: a JSON-style or plain
// one-line node of at most 1024 bytes.
func (p *parser) parseBlockMapImplicitKey() bool {
	return p.try(func() bool {
		start := p.cursor.Pos()
		if !p.parseImplicitJSONKey(blockKey) && !p.parseImplicitYAMLKey(blockKey) {
			return false
		}
		return p.cursor.Pos()-start <= maxImplicitKeyLength
	})
}

//
// Literal and folded block scalars
//

// chomping selects what happens to a block scalar's trailing newlines.
type chomping int8

const (
	clipChomping  chomping = iota // a single trailing newline
	stripChomping                 // no trailing newlines
	keepChomping                  // all trailing newlines
)

// parseLiteral matches c-l+literal(n).
func (p *parser) parseLiteral(n int) bool {
	return p.try(func() bool {
		start := p.cursor.Pos()
		if !p.cursor.MatchByte('|') {
			return false
		}
		m, chomp := p.parseBlockHeader()
		value := p.scanBlockScalar(n, m, chomp, false)
		p.emitScalarAt(start, p.cursor.Pos(), value, LiteralStyle)
		return true
	})
}

// parseFolded matches c-l+folded(n).
func (p *parser) parseFolded(n int) bool {
	return p.try(func() bool {
		start := p.cursor.Pos()
		if !p.cursor.MatchByte('>') {
			return false
		}
		m, chomp := p.parseBlockHeader()
		value := p.scanBlockScalar(n, m, chomp, true)
		p.emitScalarAt(start, p.cursor.Pos(), value, FoldedStyle)
		return true
	})
}

// parseBlockHeader matches c-b-block-header: an optional indentation
// indicator 1..9 and an optional chomping indicator in either order, then
// the rest of the line.
func (p *parser) parseBlockHeader() (m int, chomp chomping) {
	for {
		b := p.cursor.Byte()
		switch {
		case b >= '1' && b <= '9':
			if m != 0 {
				p.raise("duplicate indentation indicator in block scalar header")
			}
			m = int(b - '0')
			p.cursor.MatchByte(b)
			continue
		case b == '-':
			if chomp != clipChomping {
				p.raise("duplicate chomping indicator in block scalar header")
			}
			chomp = stripChomping
			p.cursor.MatchByte(b)
			continue
		case b == '+':
			if chomp != clipChomping {
				p.raise("duplicate chomping indicator in block scalar header")
			}
			chomp = keepChomping
			p.cursor.MatchByte(b)
			continue
		}
		break
	}
	if !p.parseSBComment() {
		p.raise("invalid block scalar header")
	}
	return m, chomp
}

// blockLine is one raw line of a block scalar before indentation
// stripping.
type blockLine struct {
	spaces int    // leading space count
	text   string // content past the leading spaces, empty for blank lines
}

// scanBlockScalar reads the indented lines of a literal or folded scalar,
// determining the content indentation either from the explicit indicator
// (relative to n) or from the first non-empty line.
func (p *parser) scanBlockScalar(n, explicitM int, chomp chomping, folded bool) string {
	indent := -1
	if explicitM > 0 {
		indent = n + explicitM
	}

	var raw []blockLine
	maxEmpty := 0
	for !p.cursor.EOF() {
		if p.cursor.atDocumentBoundary() {
			break
		}
		lineStart := p.cursor.Pos()
		spaces := 0
		for p.cursor.ByteAt(lineStart+spaces) == ' ' {
			spaces++
		}
		rest := lineStart + spaces
		if isBreak(p.cursor.ByteAt(rest)) || rest >= len(p.cursor.input) {
			// A blank line; it may belong to the scalar regardless of
			// its indentation.
			p.cursor.SetPos(rest)
			if !p.parseBreak() {
				break
			}
			raw = append(raw, blockLine{spaces: spaces})
			if indent < 0 && spaces > maxEmpty {
				maxEmpty = spaces
			}
			continue
		}
		if indent < 0 {
			if spaces <= n {
				break
			}
			indent = spaces
			if maxEmpty > indent {
				p.raiseAt(lineStart, "invalid indentation in block scalar")
			}
		}
		if spaces < indent {
			break
		}
		end := rest
		for end < len(p.cursor.input) && !isBreak(p.cursor.ByteAt(end)) {
			end++
		}
		raw = append(raw, blockLine{
			spaces: spaces,
			text:   string(p.cursor.input[lineStart+indent : end]),
		})
		p.cursor.SetPos(end)
		if !p.parseBreak() {
			break
		}
	}

	if indent < 0 {
		indent = n + 1
		if indent < 1 {
			indent = 1
		}
	}

	lines := make([]string, len(raw))
	for i, rl := range raw {
		if rl.text != "" {
			lines[i] = rl.text
			continue
		}
		if rl.spaces > indent {
			lines[i] = strings.Repeat(" ", rl.spaces-indent)
		}
	}

	if folded {
		return foldBlockLines(lines, chomp)
	}
	return joinBlockLines(lines, chomp)
}

// joinBlockLines assembles a literal scalar's value and applies chomping.
func joinBlockLines(lines []string, chomp chomping) string {
	k := len(lines)
	for k > 0 && lines[k-1] == "" {
		k--
	}
	content := strings.Join(lines[:k], "\n")
	return applyChomping(content, len(lines)-k, k > 0, chomp)
}

// foldBlockLines assembles a folded scalar's value: adjacent non-indented
// content lines join with one space, indented lines keep their breaks, and
// empty lines become newlines.
func foldBlockLines(lines []string, chomp chomping) string {
	var b strings.Builder
	emitted := false
	prevIndented := false
	pendingEmpty := 0
	for _, line := range lines {
		if line == "" {
			pendingEmpty++
			continue
		}
		indented := line[0] == ' ' || line[0] == '\t'
		switch {
		case !emitted:
			b.WriteString(strings.Repeat("\n", pendingEmpty))
		case pendingEmpty > 0:
			b.WriteString(strings.Repeat("\n", pendingEmpty))
		case prevIndented || indented:
			b.WriteByte('\n')
		default:
			b.WriteByte(' ')
		}
		b.WriteString(line)
		emitted = true
		prevIndented = indented
		pendingEmpty = 0
	}
	return applyChomping(b.String(), pendingEmpty, emitted, chomp)
}

// applyChomping attaches the trailing newlines selected by the chomping
// indicator: strip drops them all, clip keeps exactly one, keep preserves
// every one.
func applyChomping(content string, trailingEmpty int, hasContent bool, chomp chomping) string {
	switch chomp {
	case stripChomping:
		return content
	case keepChomping:
		n := trailingEmpty
		if hasContent {
			n++
		}
		return content + strings.Repeat("\n", n)
	default:
		if content == "" {
			return ""
		}
		return content + "\n"
	}
}
