// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The grammar engine: a backtracking recursive-descent parser over the
// YAML 1.2 productions. Rules return false to let an enclosing alternation
// try the next branch; unrecoverable problems raise a *SyntaxError through
// the panic funnel.
//
// The overall shape follows the YAML 1.2 production set:
//
// l-yaml-stream        ::= l-document-prefix* l-any-document?
//                          ( l-document-suffix+ l-document-prefix* l-any-document?
//                          | l-document-prefix* l-explicit-document? )*
// s-l+block-node(n,c)  ::= s-l+block-in-block(n,c) | s-l+flow-in-block(n)
// s-l+block-in-block   ::= s-l+block-scalar(n,c) | s-l+block-collection(n,c)
// ns-flow-node(n,c)    ::= c-ns-alias-node | ns-flow-content(n,c)
//                          | c-ns-properties(n,c)
//                            ( s-separate(n,c) ns-flow-content(n,c) | e-scalar )
//
// A six-value context threads through most rules and selects which sub-rule
// applies at each point.

package pure

import (
	"fmt"
	"sort"
	"strings"
)

// context selects which sub-rule applies at a given point in the grammar.
type context int8

const (
	blockOut context = iota
	blockIn
	blockKey
	flowOut
	flowIn
	flowKey
)

func (c context) String() string {
	switch c {
	case blockOut:
		return "block-out"
	case blockIn:
		return "block-in"
	case blockKey:
		return "block-key"
	case flowOut:
		return "flow-out"
	case flowIn:
		return "flow-in"
	case flowKey:
		return "flow-key"
	}
	return "unknown"
}

// inFlow demotes a context for parsing inside a flow collection.
func inFlow(c context) context {
	switch c {
	case blockKey, flowKey:
		return flowKey
	default:
		return flowIn
	}
}

// maxImplicitKeyLength bounds the byte length of implicit mapping keys.
const maxImplicitKeyLength = 1024

// defaultTagDirectives is restored at every document boundary.
func defaultTagDirectives() map[string]string {
	return map[string]string{
		"!":  "!",
		"!!": "tag:yaml.org,2002:",
	}
}

// parser owns all state of a single parse: one cursor, one event cache, one
// pending anchor/tag pair, one directive table, and one comment map.
type parser struct {
	source   *Source
	cursor   *Cursor
	handler  Handler
	comments *commentCollector

	cache eventCache

	// Pending node properties, captured by c-ns-properties and flushed
	// onto the next content event. propStart is the offset where the
	// property run began, or -1.
	anchor    string
	tag       string
	propStart int

	tagDirectives map[string]string
	version       *Version
	versionSeen   bool

	// docStart is the queued DocumentStart, flushed right before the
	// first content event of the document. docEnd records that a
	// DocumentEnd is armed.
	docStart *Event
	docEnd   bool
}

func newParser(source *Source, h Handler, comments *commentCollector) *parser {
	return &parser{
		source:        source,
		cursor:        NewCursor(source),
		handler:       h,
		comments:      comments,
		propStart:     -1,
		tagDirectives: defaultTagDirectives(),
	}
}

// raise aborts the parse with a syntax error at the cursor.
func (p *parser) raise(msg string) {
	p.raiseAt(p.cursor.Pos(), msg)
}

func (p *parser) raiseAt(pos int, msg string) {
	line, col := p.source.Position(pos)
	Raise(&SyntaxError{
		Filename: p.source.Name(),
		Line:     line + 1,
		Column:   col + 1,
		Offset:   pos,
		Message:  msg,
	})
}

// raiseIn reports a failure with the surrounding construct named, e.g.
// "while parsing a flow sequence".
func (p *parser) raiseIn(construct, msg string) {
	p.raise(fmt.Sprintf("while parsing a %s: %s", construct, msg))
}

//
// Combinators
//

// try saves the cursor position and pending properties, runs block, and
// restores both when the block returns false.
func (p *parser) try(block func() bool) bool {
	pos := p.cursor.Pos()
	anchor, tag, propStart := p.anchor, p.tag, p.propStart
	if block() {
		return true
	}
	p.cursor.SetPos(pos)
	p.anchor, p.tag, p.propStart = anchor, tag, propStart
	return false
}

// peek runs block and always restores the saved state, returning the
// block's result.
func (p *parser) peek(block func() bool) bool {
	pos := p.cursor.Pos()
	anchor, tag, propStart := p.anchor, p.tag, p.propStart
	ok := block()
	p.cursor.SetPos(pos)
	p.anchor, p.tag, p.propStart = anchor, tag, propStart
	return ok
}

// star repeats block while it succeeds and the cursor advances.
// It is always true.
func (p *parser) star(block func() bool) bool {
	for {
		pos := p.cursor.Pos()
		if !p.try(block) || p.cursor.Pos() == pos {
			return true
		}
	}
}

// plus is star with at least one required success.
func (p *parser) plus(block func() bool) bool {
	if !p.try(block) {
		return false
	}
	return p.star(block)
}

// cached runs block inside a speculative event frame. Events emitted by the
// block are flushed to the enclosing frame (or the handler) on success and
// discarded on failure.
func (p *parser) cached(block func() bool) bool {
	p.cache.Push()
	if p.try(block) {
		p.cache.Flush(p.deliver)
		return true
	}
	p.cache.Pop()
	return false
}

//
// Event emission
//

// emit buffers e in the open cache frame, or delivers it directly.
func (p *parser) emit(e *Event) {
	p.cache.Add(e, p.deliver)
}

// deliver hands a committed event to the handler. The first content event
// of a pending document flushes the queued DocumentStart first and arms the
// matching DocumentEnd.
func (p *parser) deliver(e *Event) {
	switch e.Type {
	case ScalarEvent, SequenceStartEvent, MappingStartEvent, AliasEvent:
		p.flushDocumentStart(e.Location)
	}
	e.Accept(p.handler)
}

func (p *parser) flushDocumentStart(loc Location) {
	if p.docStart == nil {
		return
	}
	e := p.docStart
	p.docStart = nil
	if e.Location.Source() == nil {
		e.Location = loc.Point()
	}
	e.Version = p.version
	e.TagDirectives = p.directiveList()
	e.Accept(p.handler)
	p.docEnd = true
}

func (p *parser) directiveList() []TagDirective {
	handles := make([]string, 0, len(p.tagDirectives))
	for h := range p.tagDirectives {
		handles = append(handles, h)
	}
	sort.Strings(handles)
	list := make([]TagDirective, 0, len(handles))
	for _, h := range handles {
		list = append(list, TagDirective{Handle: h, Prefix: p.tagDirectives[h]})
	}
	return list
}

// takeProperties moves the pending anchor and tag onto e and clears them.
func (p *parser) takeProperties(e *Event) {
	e.Anchor = p.anchor
	e.Tag = p.tag
	p.anchor, p.tag, p.propStart = "", "", -1
}

// eventStart widens start to cover the pending property run, if any.
func (p *parser) eventStart(start int) int {
	if p.propStart >= 0 && p.propStart < start {
		return p.propStart
	}
	return start
}

func (p *parser) emitScalarAt(start, end int, value string, style ScalarStyle) {
	e := &Event{
		Type:     ScalarEvent,
		Location: NewLocation(p.source, p.eventStart(start), end),
		Value:    value,
		Style:    style,
	}
	p.takeProperties(e)
	e.PlainImplicit = e.Tag == "" && style == PlainStyle
	e.QuotedImplicit = e.Tag == "" || e.Tag == "!"
	p.emit(e)
}

// emitEmptyScalar emits the e-node production: a zero-width plain scalar.
func (p *parser) emitEmptyScalar(pos int) {
	p.emitScalarAt(pos, pos, "", PlainStyle)
}

func (p *parser) emitCollectionStart(t EventType, start int, style CollectionStyle, withProps bool) {
	e := &Event{
		Type:            t,
		Location:        PointLocation(p.source, p.eventStart(start)),
		CollectionStyle: style,
	}
	if withProps {
		p.takeProperties(e)
	}
	p.emit(e)
}

// emitCollectionEnd ends a collection at the trimmed end offset, so that
// trailing blank and comment-only lines do not belong to the collection.
func (p *parser) emitCollectionEnd(t EventType, end int) {
	p.emit(&Event{Type: t, Location: PointLocation(p.source, p.source.Trim(end))})
}

//
// Document start/end machinery
//

// startDocument finishes any armed document and queues a DocumentStart for
// the one about to be parsed.
func (p *parser) startDocument() {
	p.finishDocument(true)
	p.docStart = &Event{Type: DocumentStartEvent, Implicit: true}
}

// finishDocument emits the armed DocumentEnd, if any, and resets the
// per-document directive state.
func (p *parser) finishDocument(implicit bool) {
	if p.docEnd {
		end := p.source.Trim(p.cursor.Pos())
		p.deliver(&Event{
			Type:     DocumentEndEvent,
			Location: PointLocation(p.source, end),
			Implicit: implicit,
		})
		p.docEnd = false
	}
	p.docStart = nil
	p.version = nil
	p.versionSeen = false
	p.tagDirectives = defaultTagDirectives()
}

//
// Separation, comments, and indentation
//

// parseBreak consumes one line break.
func (p *parser) parseBreak() bool {
	if p.cursor.Match("\r\n") {
		return true
	}
	return p.cursor.MatchByte('\r') || p.cursor.MatchByte('\n')
}

// parseSeparateInLine matches s-white+ or an empty match at a line start.
func (p *parser) parseSeparateInLine() bool {
	if p.cursor.MatchWhile(isWhite) > 0 {
		return true
	}
	return p.cursor.AtLineStart()
}

// parseIndent matches exactly n spaces.
func (p *parser) parseIndent(n int) bool {
	return p.try(func() bool {
		for i := 0; i < n; i++ {
			if !p.cursor.MatchByte(' ') {
				return false
			}
		}
		return true
	})
}

// parseCommentText consumes a '#' comment to the end of the line and
// records it. Backtracking may re-encounter the same comment; the collector
// keeps only the first record for each offset.
func (p *parser) parseCommentText() {
	start := p.cursor.Pos()
	inline := false
	for i := start - 1; i >= 0; i-- {
		b := p.cursor.ByteAt(i)
		if isBreak(b) {
			break
		}
		if !isWhite(b) {
			inline = true
			break
		}
	}
	p.cursor.MatchByte('#')
	p.cursor.MatchWhile(func(b byte) bool { return !isBreak(b) })
	loc := NewLocation(p.source, start, p.cursor.Pos())
	if p.comments == nil {
		return
	}
	if _, fresh := p.comments.Record(loc, loc.Text(), inline); fresh {
		p.handler.Comment(&Event{Type: CommentEvent, Location: loc, Value: loc.Text(), Inline: inline})
	}
}

// parseSBComment matches optional in-line separation plus an optional
// comment, ending at a break or the end of input.
func (p *parser) parseSBComment() bool {
	return p.try(func() bool {
		if p.parseSeparateInLine() && p.cursor.CheckByte('#') {
			p.parseCommentText()
		}
		return p.parseBreak() || p.cursor.EOF()
	})
}

// parseLComment matches a line holding only separation and an optional
// comment.
func (p *parser) parseLComment() bool {
	return p.try(func() bool {
		if !p.parseSeparateInLine() {
			return false
		}
		if p.cursor.CheckByte('#') {
			p.parseCommentText()
		}
		return p.parseBreak() || p.cursor.EOF()
	})
}

// parseSLComments matches s-b-comment (or a bare line start) followed by
// any number of comment lines.
func (p *parser) parseSLComments() bool {
	return p.try(func() bool {
		if !p.parseSBComment() && !p.cursor.AtLineStart() {
			return false
		}
		p.star(func() bool { return p.parseLComment() })
		return true
	})
}

// parseFlowLinePrefix matches s-indent(n) plus optional trailing
// whitespace.
func (p *parser) parseFlowLinePrefix(n int) bool {
	return p.try(func() bool {
		if !p.parseIndent(n) {
			return false
		}
		p.cursor.MatchWhile(isWhite)
		return true
	})
}

// parseSeparate dispatches s-separate(n,c) on the context.
func (p *parser) parseSeparate(n int, c context) bool {
	switch c {
	case blockKey, flowKey:
		return p.parseSeparateInLine()
	default:
		return p.parseSeparateLines(n)
	}
}

// parseSeparateLines matches comment lines followed by a flow line prefix,
// or plain in-line separation.
func (p *parser) parseSeparateLines(n int) bool {
	if p.try(func() bool { return p.parseSLComments() && p.parseFlowLinePrefix(n) }) {
		return true
	}
	return p.parseSeparateInLine()
}

func (p *parser) trySeparate(n int, c context) bool {
	return p.try(func() bool { return p.parseSeparate(n, c) })
}

// detectIndent inspects the current and following lines and returns the
// number of columns by which the coming block is indented past n, or 0 when
// the block cannot be more deeply indented. Blank and comment-only lines do
// not participate.
func (p *parser) detectIndent(n int) int {
	in := p.cursor.input
	i := p.cursor.Pos()

	if !p.cursor.AtLineStart() {
		j := i
		for j < len(in) && in[j] == ' ' {
			j++
		}
		if j < len(in) && !isBreak(in[j]) && in[j] != '#' {
			m := p.source.Column(j) - n
			if m < 0 {
				m = 0
			}
			return m
		}
		for j < len(in) && !isBreak(in[j]) {
			j++
		}
		i = j + 1
	}

	for i < len(in) {
		j := i
		for j < len(in) && in[j] == ' ' {
			j++
		}
		if j < len(in) && !isBreak(in[j]) && in[j] != '#' {
			m := (j - i) - n
			if m < 0 {
				m = 0
			}
			return m
		}
		for j < len(in) && !isBreak(in[j]) {
			j++
		}
		i = j + 1
	}
	return 0
}

// seqSpaces compensates for the "- " indicator counting as indentation in
// the block-out context.
func seqSpaces(n int, c context) int {
	if c == blockOut {
		return n - 1
	}
	return n
}

//
// Node properties
//

// parseProperties matches c-ns-properties(n,c): a tag and/or an anchor in
// either order. The captured values stay pending until the next content
// event takes them.
func (p *parser) parseProperties(n int, c context) bool {
	return p.try(func() bool {
		switch {
		case p.parseTagProperty():
			p.try(func() bool { return p.parseSeparate(n, c) && p.parseAnchorProperty() })
		case p.parseAnchorProperty():
			p.try(func() bool { return p.parseSeparate(n, c) && p.parseTagProperty() })
		default:
			return false
		}
		return true
	})
}

func (p *parser) markProperty(start int) {
	if p.propStart < 0 || start < p.propStart {
		p.propStart = start
	}
}

// parseTagProperty matches a verbatim, shorthand, or non-specific tag.
func (p *parser) parseTagProperty() bool {
	return p.try(func() bool {
		start := p.cursor.Pos()
		if !p.cursor.MatchByte('!') {
			return false
		}

		// Verbatim: !<uri>
		if p.cursor.MatchByte('<') {
			uriStart := p.cursor.Pos()
			if p.cursor.MatchWhile(isURIChar) == 0 {
				p.raise("expected a tag URI in a verbatim tag")
			}
			uri := string(p.cursor.input[uriStart:p.cursor.Pos()])
			if !p.cursor.MatchByte('>') {
				p.raise("expected '>' to close a verbatim tag")
			}
			p.markProperty(start)
			p.tag = decodeURIEscapes(uri)
			return true
		}

		handle := "!"
		if p.cursor.MatchByte('!') {
			handle = "!!"
		} else {
			p.try(func() bool {
				nameStart := p.cursor.Pos()
				if p.cursor.MatchWhile(isWordChar) == 0 {
					return false
				}
				name := string(p.cursor.input[nameStart:p.cursor.Pos()])
				if !p.cursor.MatchByte('!') {
					return false
				}
				handle = "!" + name + "!"
				return true
			})
		}

		suffixStart := p.cursor.Pos()
		sn := p.cursor.MatchWhile(isTagChar)
		suffix := string(p.cursor.input[suffixStart:p.cursor.Pos()])

		if sn == 0 {
			if handle != "!" {
				p.raise(fmt.Sprintf("expected a suffix after tag handle %q", handle))
			}
			// Non-specific tag.
			p.markProperty(start)
			p.tag = "!"
			return true
		}

		p.markProperty(start)
		p.tag = p.resolveTagHandle(handle) + decodeURIEscapes(suffix)
		return true
	})
}

// resolveTagHandle maps a tag handle to its prefix using the current
// %TAG directives, falling back to the built-in primary and secondary
// defaults.
func (p *parser) resolveTagHandle(handle string) string {
	if prefix, ok := p.tagDirectives[handle]; ok {
		return prefix
	}
	switch handle {
	case "!":
		return "!"
	case "!!":
		return "tag:yaml.org,2002:"
	}
	p.raise(fmt.Sprintf("undefined tag handle %q", handle))
	return ""
}

// decodeURIEscapes resolves %HH escapes in a tag URI or suffix.
func decodeURIEscapes(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(byte(hexValue(s[i+1])<<4 | hexValue(s[i+2])))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// parseAnchorProperty matches &name and stores it pending.
func (p *parser) parseAnchorProperty() bool {
	return p.try(func() bool {
		start := p.cursor.Pos()
		if !p.cursor.MatchByte('&') {
			return false
		}
		nameStart := p.cursor.Pos()
		if p.cursor.MatchWhile(isAnchorChar) == 0 {
			return false
		}
		p.markProperty(start)
		p.anchor = string(p.cursor.input[nameStart:p.cursor.Pos()])
		return true
	})
}

// parseAlias matches *name and emits an Alias event immediately.
func (p *parser) parseAlias() bool {
	return p.try(func() bool {
		start := p.cursor.Pos()
		if !p.cursor.MatchByte('*') {
			return false
		}
		nameStart := p.cursor.Pos()
		if p.cursor.MatchWhile(isAnchorChar) == 0 {
			p.raise("expected an alias name after '*'")
		}
		name := string(p.cursor.input[nameStart:p.cursor.Pos()])
		p.emit(&Event{
			Type:     AliasEvent,
			Location: NewLocation(p.source, start, p.cursor.Pos()),
			Value:    name,
		})
		return true
	})
}
