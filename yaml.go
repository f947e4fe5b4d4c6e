// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package pureyaml is a pure Go YAML 1.2 processor.
//
// The parser is a backtracking recursive-descent implementation of the
// YAML 1.2 grammar. It reports a linear event stream annotated with
// byte-precise source locations and, optionally, interleaved comment
// records; the companion emitter serialises value trees back to YAML text.
//
// Source code and other details for the project are available at GitHub:
//
//	https://github.com/yaml/go-pureyaml
package pureyaml

import (
	"go.yaml.in/pureyaml/internal/pure"
)

// Parse parses the first document in the input and returns its tree, or
// nil when the input holds no document.
func Parse(in []byte, opts ...Option) (*Node, error) {
	docs, err := ParseStream(in, opts...)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

// ParseStream parses every document in the input into a tree. When
// comments are enabled, each comment is attached to its nearest node.
func ParseStream(in []byte, opts ...Option) ([]*Node, error) {
	o := applyOptions(opts)
	return pure.ParseDocuments(o.filename, in, o.comments, o.loadAliases())
}

// Load decodes the first document in the input into a Go value:
// map[string]any for mappings, []any for sequences, and resolved scalar
// types for scalars. An input with no document yields the configured
// fallback value, nil by default.
func Load(in []byte, opts ...Option) (any, error) {
	o := applyOptions(opts)
	return load(in, o, nil)
}

// SafeLoad is Load restricted to the core schema plus any explicitly
// permitted tags. Aliases are rejected unless enabled with WithAliases.
func SafeLoad(in []byte, opts ...Option) (any, error) {
	o := applyOptions(opts)
	o.safe = true
	return load(in, o, pure.SafePermitted(o.permittedTags))
}

// UnsafeLoad is Load with every tag permitted.
func UnsafeLoad(in []byte, opts ...Option) (any, error) {
	return Load(in, opts...)
}

// LoadStream decodes every document in the input.
func LoadStream(in []byte, opts ...Option) ([]any, error) {
	o := applyOptions(opts)
	docs, err := pure.ParseDocuments(o.filename, in, o.comments, o.loadAliases())
	if err != nil {
		return nil, err
	}
	var permitted func(string) bool
	if o.safe {
		permitted = pure.SafePermitted(o.permittedTags)
	}
	out := make([]any, 0, len(docs))
	for _, doc := range docs {
		c := &pure.Constructor{
			Aliases:        o.loadAliases(),
			StrictIntegers: o.strictIntegers,
			Permitted:      permitted,
		}
		v, err := c.Construct(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func load(in []byte, o *options, permitted func(string) bool) (any, error) {
	docs, err := pure.ParseDocuments(o.filename, in, o.comments, o.loadAliases())
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 || docs[0].Root() == nil {
		return o.fallback, nil
	}
	c := &pure.Constructor{
		Aliases:        o.loadAliases(),
		StrictIntegers: o.strictIntegers,
		Permitted:      permitted,
	}
	return c.Construct(docs[0])
}

// Dump serialises a value as a YAML document. Repeated objects are
// written once and referenced with anchors and aliases.
func Dump(in any, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)
	return dump([]any{in}, o, false)
}

// SafeDump is Dump restricted to plain data values. Aliases are rejected
// unless enabled with WithAliases.
func SafeDump(in any, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)
	return dump([]any{in}, o, true)
}

// DumpStream serialises each value as one document of a YAML stream.
func DumpStream(in []any, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)
	return dump(in, o, false)
}

func dump(in []any, o *options, safe bool) ([]byte, error) {
	docs := make([]*Node, 0, len(in))
	for _, v := range in {
		doc, err := representValue(v, o, safe)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	e := &pure.Emitter{
		Indent:         o.indent,
		SequenceIndent: o.sequenceIndent,
		LineWidth:      o.lineWidth,
		ExplicitStart:  o.explicitStart,
	}
	return e.EmitStream(docs)
}

func representValue(v any, o *options, safe bool) (*Node, error) {
	if n, ok := v.(*Node); ok && n != nil {
		if n.Kind == pure.DocumentNode {
			return n, nil
		}
		return &Node{
			Kind:          pure.DocumentNode,
			Children:      []*Node{n},
			ImplicitStart: true,
			ImplicitEnd:   true,
		}, nil
	}
	r := &pure.Representer{Aliases: o.dumpAliases(safe), Safe: safe}
	return r.Represent(v)
}

// ScanEvents parses the input and streams its events to h without
// building a tree.
func ScanEvents(in []byte, h Handler, opts ...Option) error {
	o := applyOptions(opts)
	p, err := pure.NewParser(o.filename, in, o.comments)
	if err != nil {
		return err
	}
	return p.Parse(h)
}
