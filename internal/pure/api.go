// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Top-level entry points for the grammar engine.

package pure

// Parser drives one parse over one input. A Parser owns its cursor, event
// cache, directive table, and comment map; independent Parser values may
// run concurrently.
type Parser struct {
	source   *Source
	comments *commentCollector
}

// NewParser prepares a parse of data. The name is reported in syntax
// errors, usually as a filename. When withComments is set, comments are
// recorded and reported to the handler.
func NewParser(name string, data []byte, withComments bool) (*Parser, error) {
	source, err := NewSource(name, data)
	if err != nil {
		return nil, err
	}
	p := &Parser{source: source}
	if withComments {
		p.comments = newCommentCollector()
	}
	return p, nil
}

// Source returns the indexed input.
func (p *Parser) Source() *Source { return p.source }

// Parse runs the grammar over the input, reporting events to h. It returns
// a *SyntaxError when the input is not well-formed YAML; no event cache
// frames are left open across a failure.
func (p *Parser) Parse(h Handler) (err error) {
	defer HandleErr(&err)
	gp := newParser(p.source, h, p.comments)
	gp.parseStream()
	return nil
}

// Comments returns every comment collected during Parse, in source order.
func (p *Parser) Comments() []*Comment {
	if p.comments == nil {
		return nil
	}
	return p.comments.All()
}

// ParseDocuments parses the input into document trees, attaching collected
// comments to their nearest nodes when withComments is set.
func ParseDocuments(name string, data []byte, withComments, resolveAliases bool) (docs []*Node, err error) {
	p, err := NewParser(name, data, withComments)
	if err != nil {
		return nil, err
	}
	builder := NewTreeBuilder(resolveAliases)
	if err := p.Parse(builder); err != nil {
		return nil, err
	}
	defer HandleErr(&err)
	docs = builder.Documents()
	if p.comments != nil {
		p.comments.Attach(docs)
	}
	return docs, nil
}
