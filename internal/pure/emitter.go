// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The emitter walks a node tree and writes a YAML stream. Layout is
// line-oriented: block collections indent, flow collections wrap at the
// configured line width, and trailing inline comments ride as trailers on
// the line they belong to.

package pure

import (
	"bytes"
	"fmt"
	"strings"
)

// Emitter writes node trees as YAML text.
type Emitter struct {
	// Indent is the number of spaces per nesting level.
	Indent int

	// SequenceIndent is the indentation applied to block sequence
	// entries under a mapping key.
	SequenceIndent int

	// LineWidth is the column at which flow collections wrap.
	LineWidth int

	// ExplicitStart forces a "---" marker before every document.
	ExplicitStart bool

	w lineWriter
}

// NewEmitter returns an emitter with the conventional defaults: two-space
// indentation and a 79-column line width.
func NewEmitter() *Emitter {
	return &Emitter{Indent: 2, SequenceIndent: 2, LineWidth: 79}
}

// EmitStream writes every document to a single YAML stream.
func (e *Emitter) EmitStream(docs []*Node) (out []byte, err error) {
	defer HandleErr(&err)
	e.w.reset()
	for i, doc := range docs {
		e.emitDocument(doc, i > 0)
	}
	return e.w.bytes(), nil
}

// EmitDocument writes a single document.
func (e *Emitter) EmitDocument(doc *Node) ([]byte, error) {
	return e.EmitStream([]*Node{doc})
}

func (e *Emitter) emitDocument(doc *Node, separator bool) {
	e.emitComments(doc.Leading, 0)
	root := doc.Root()
	marker := separator || e.ExplicitStart || !doc.ImplicitStart
	if root == nil {
		if marker {
			e.w.text("---")
			e.w.newline()
		}
		return
	}
	if marker {
		e.w.text("---")
		if e.blockValue(root) {
			e.w.newline()
			e.emitBlockNode(root, 0)
		} else {
			e.w.text(" ")
			e.emitInlineNode(root, 0)
			e.emitTrailers(root)
			e.w.newline()
			e.emitTrailingComments(root, 0)
		}
	} else {
		e.emitBlockNode(root, 0)
	}
	e.emitComments(doc.Trailing, 0)
}

// blockValue reports whether a node renders as an indented block of its
// own rather than inline after its parent.
func (e *Emitter) blockValue(n *Node) bool {
	switch n.Kind {
	case MappingNode, SequenceNode:
		return n.CollectionStyle != FlowStyle && len(n.Children) > 0
	case ScalarNode:
		return e.blockScalar(n)
	}
	return false
}

// blockScalar reports whether a scalar is written in a literal block.
func (e *Emitter) blockScalar(n *Node) bool {
	if n.Style != LiteralStyle && n.Style != FoldedStyle {
		return false
	}
	return strings.Contains(n.Value, "\n") && strings.TrimSuffix(n.Value, "\n") != ""
}

// emitBlockNode writes a node in block layout at the given indentation.
func (e *Emitter) emitBlockNode(n *Node, indent int) {
	switch n.Kind {
	case MappingNode, SequenceNode:
		if prefix := nodePrefix(n); prefix != "" {
			e.w.indentTo(indent)
			e.w.text(strings.TrimSuffix(prefix, " "))
			e.w.newline()
		}
		e.emitBlockCollection(n, indent)
	default:
		e.w.indentTo(indent)
		if n.Kind == ScalarNode && e.blockScalar(n) {
			e.emitLiteralScalar(n, indent+e.Indent)
			return
		}
		e.emitInlineNode(n, indent)
		e.emitTrailers(n)
		e.w.newline()
		e.emitTrailingComments(n, indent)
	}
}

func (e *Emitter) emitBlockCollection(n *Node, indent int) {
	if n.Kind == MappingNode {
		e.emitBlockMapping(n, indent)
		return
	}
	e.emitBlockSequence(n, indent)
}

func (e *Emitter) emitBlockMapping(n *Node, indent int) {
	for _, pair := range n.Pairs() {
		key, value := pair[0], pair[1]
		e.emitComments(key.Leading, indent)
		e.w.indentTo(indent)
		if e.complexKey(key) {
			e.w.text("? ")
			e.emitInlineNode(key, indent)
			e.emitTrailers(key)
			e.w.newline()
			e.w.indentTo(indent)
			e.w.text(":")
		} else {
			e.emitInlineNode(key, indent)
			e.w.text(":")
			e.emitTrailers(key)
		}
		e.emitBlockChild(value, indent)
		e.emitTrailingComments(key, indent)
	}
}

func (e *Emitter) emitBlockSequence(n *Node, indent int) {
	for _, item := range n.Children {
		e.emitComments(item.Leading, indent)
		e.w.indentTo(indent)
		e.w.text("-")
		if e.blockValue(item) && item.Kind != ScalarNode && nodePrefix(item) == "" {
			// A collection item continues compactly on the "- " line.
			e.emitBlockCollection(item, indent+e.Indent)
			continue
		}
		e.emitBlockChild(item, indent)
	}
}

// emitBlockChild writes a value that follows an indicator ("-" or "key:")
// on the current line: inline when it fits the form, as a nested block
// otherwise.
func (e *Emitter) emitBlockChild(v *Node, indent int) {
	childIndent := indent + e.Indent
	if v.Kind == SequenceNode && e.blockValue(v) {
		childIndent = indent + e.SequenceIndent
	}
	switch {
	case e.blockValue(v) && v.Kind == ScalarNode:
		e.w.text(" ")
		e.emitLiteralScalar(v, childIndent)
	case e.blockValue(v):
		if prefix := nodePrefix(v); prefix != "" {
			e.w.text(" ")
			e.w.text(strings.TrimSuffix(prefix, " "))
		}
		e.emitTrailers(v)
		e.w.newline()
		e.emitComments(v.Leading, childIndent)
		e.emitBlockCollection(v, childIndent)
	default:
		e.w.text(" ")
		e.emitInlineNode(v, indent)
		e.emitTrailers(v)
		e.w.newline()
		e.emitTrailingComments(v, childIndent)
	}
}

// complexKey reports whether a mapping key needs the explicit "? " form.
func (e *Emitter) complexKey(n *Node) bool {
	if n.Kind == MappingNode || n.Kind == SequenceNode {
		return true
	}
	return n.Kind == ScalarNode && strings.Contains(n.Value, "\n")
}

// emitInlineNode writes a node on the current line.
func (e *Emitter) emitInlineNode(n *Node, indent int) {
	switch n.Kind {
	case AliasNode:
		e.w.text("*" + aliasName(n))
	case ScalarNode:
		e.w.text(nodePrefix(n))
		e.w.text(e.scalarText(n))
	case SequenceNode:
		e.w.text(nodePrefix(n))
		if len(n.Children) == 0 {
			e.w.text("[]")
			return
		}
		e.w.text("[")
		for i, item := range n.Children {
			if i > 0 {
				e.w.text(",")
				e.breakable(indent)
				e.w.text(" ")
			}
			e.emitInlineNode(item, indent)
		}
		e.w.text("]")
	case MappingNode:
		e.w.text(nodePrefix(n))
		if len(n.Children) == 0 {
			e.w.text("{}")
			return
		}
		e.w.text("{")
		for i, pair := range n.Pairs() {
			if i > 0 {
				e.w.text(",")
				e.breakable(indent)
			}
			e.w.text(" ")
			e.emitInlineNode(pair[0], indent)
			e.w.text(": ")
			e.emitInlineNode(pair[1], indent)
		}
		e.w.text(" }")
	default:
		Raise(&EmitterError{Message: fmt.Sprintf("cannot emit a %s node inline", n.Kind)})
	}
}

// breakable wraps the current flow line when it has grown past the
// configured width.
func (e *Emitter) breakable(indent int) {
	if e.LineWidth > 0 && e.w.column() >= e.LineWidth {
		e.w.newline()
		e.w.indentTo(indent + e.Indent)
		e.w.trimTrailingSpace()
	}
}

// emitLiteralScalar writes a multi-line scalar in literal block form.
func (e *Emitter) emitLiteralScalar(n *Node, indent int) {
	value := n.Value
	trailing := 0
	for strings.HasSuffix(value, "\n") {
		value = strings.TrimSuffix(value, "\n")
		trailing++
	}
	header := "|"
	switch {
	case trailing == 0:
		header = "|-"
	case trailing > 1:
		header = "|+"
	}
	if prefix := nodePrefix(n); prefix != "" {
		e.w.text(prefix)
	}
	e.w.text(header)
	e.emitTrailers(n)
	e.w.newline()
	for _, line := range strings.Split(value, "\n") {
		if line != "" {
			e.w.indentTo(indent)
			e.w.text(line)
		}
		e.w.newline()
	}
	for i := 1; i < trailing; i++ {
		e.w.newline()
	}
}

// scalarText renders a scalar for inline use, falling back to double
// quotes when the recorded style cannot represent the value on one line.
func (e *Emitter) scalarText(n *Node) string {
	value := n.Value
	style := n.Style
	if style == AnyScalarStyle {
		style = PlainStyle
	}
	switch style {
	case PlainStyle:
		if value != "" && !unsafePlain(value) {
			return value
		}
		if value == "" && n.Tag == "" {
			return "null"
		}
		return escapeDouble(value)
	case SingleQuotedStyle:
		if strings.ContainsAny(value, "\n") {
			return escapeDouble(value)
		}
		return "'" + strings.ReplaceAll(value, "'", "''") + "'"
	default:
		return escapeDouble(value)
	}
}

// nodePrefix renders the anchor and tag properties, trailing space
// included.
func nodePrefix(n *Node) string {
	var b strings.Builder
	if n.Anchor != "" {
		b.WriteString("&")
		b.WriteString(n.Anchor)
		b.WriteString(" ")
	}
	if n.Tag != "" && n.Tag != "!" {
		b.WriteString(tagShorthand(n.Tag))
		b.WriteString(" ")
	}
	return b.String()
}

// tagShorthand writes a tag in its most compact form.
func tagShorthand(tag string) string {
	if suffix, ok := strings.CutPrefix(tag, "tag:yaml.org,2002:"); ok {
		return "!!" + suffix
	}
	if strings.HasPrefix(tag, "!") && !strings.ContainsAny(tag, " ") {
		return tag
	}
	return "!<" + tag + ">"
}

func aliasName(n *Node) string {
	if n.Target != nil && n.Target.Anchor != "" {
		return n.Target.Anchor
	}
	return n.Value
}

// escapeDouble renders s as a double-quoted scalar.
func escapeDouble(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case 0:
			b.WriteString(`\0`)
		default:
			if r < 0x20 {
				b.WriteString(fmt.Sprintf(`\x%02x`, r))
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

//
// Comments
//

// emitComments writes each comment on its own line at the given indent.
func (e *Emitter) emitComments(comments []*Comment, indent int) {
	for _, c := range comments {
		if e.w.midLine() {
			e.w.newline()
		}
		e.w.indentTo(indent)
		e.w.text(commentText(c))
		e.w.newline()
	}
}

// emitTrailers registers the node's inline trailing comments to be written
// at the end of the current line. Non-inline trailing comments are left to
// emitTrailingComments.
func (e *Emitter) emitTrailers(n *Node) {
	for _, c := range n.Trailing {
		if c.Inline {
			e.w.trailer(commentText(c))
		}
	}
}

// emitTrailingComments writes the node's non-inline trailing comments on
// their own lines.
func (e *Emitter) emitTrailingComments(n *Node, indent int) {
	for _, c := range n.Trailing {
		if c.Inline {
			continue
		}
		e.w.indentTo(indent)
		e.w.text(commentText(c))
		e.w.newline()
	}
}

func commentText(c *Comment) string {
	text := c.Text
	if !strings.HasPrefix(text, "#") {
		text = "# " + text
	}
	return text
}

//
// Line writer
//

// lineWriter assembles output line by line so that trailer callbacks can
// append to a line right before it ends.
type lineWriter struct {
	buf      bytes.Buffer
	line     []byte
	trailers []string
}

func (w *lineWriter) reset() {
	w.buf.Reset()
	w.line = w.line[:0]
	w.trailers = w.trailers[:0]
}

func (w *lineWriter) text(s string) {
	w.line = append(w.line, s...)
}

func (w *lineWriter) indentTo(indent int) {
	for len(w.line) < indent {
		w.line = append(w.line, ' ')
	}
}

func (w *lineWriter) column() int { return len(w.line) }

func (w *lineWriter) midLine() bool { return len(w.line) > 0 }

func (w *lineWriter) trailer(text string) {
	w.trailers = append(w.trailers, text)
}

func (w *lineWriter) trimTrailingSpace() {
	for len(w.line) > 0 && w.line[len(w.line)-1] == ' ' {
		w.line = w.line[:len(w.line)-1]
	}
}

func (w *lineWriter) newline() {
	for _, t := range w.trailers {
		if len(w.line) > 0 {
			w.line = append(w.line, ' ')
		}
		w.line = append(w.line, t...)
	}
	w.trailers = w.trailers[:0]
	w.buf.Write(w.line)
	w.buf.WriteByte('\n')
	w.line = w.line[:0]
}

func (w *lineWriter) bytes() []byte {
	if len(w.line) > 0 || len(w.trailers) > 0 {
		w.newline()
	}
	return w.buf.Bytes()
}
