// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Construction of Go values from document trees.

package pure

import "fmt"

// Constructor converts node trees into Go values. The zero value permits
// every tag but rejects aliases; the safe loader installs a Permitted
// callback.
type Constructor struct {
	// Aliases allows alias nodes; when false, any alias is a
	// *BadAliasError.
	Aliases bool

	// StrictIntegers disables underscore separators in numbers.
	StrictIntegers bool

	// Permitted, when non-nil, vets every explicit tag. Returning false
	// raises a *DisallowedError.
	Permitted func(tag string) bool

	memo map[*Node]any
}

// Construct converts a document tree into a Go value.
func (c *Constructor) Construct(doc *Node) (v any, err error) {
	defer HandleErr(&err)
	root := doc.Root()
	if root == nil {
		return nil, nil
	}
	c.memo = make(map[*Node]any)
	return c.construct(root), nil
}

func (c *Constructor) construct(n *Node) any {
	if v, ok := c.memo[n]; ok {
		return v
	}
	switch n.Kind {
	case ScalarNode:
		return c.constructScalar(n)
	case SequenceNode:
		return c.constructSequence(n)
	case MappingNode:
		return c.constructMapping(n)
	case AliasNode:
		return c.constructAlias(n)
	default:
		Raise(&InternalError{Message: fmt.Sprintf("cannot construct a %s node", n.Kind)})
		return nil
	}
}

func (c *Constructor) constructScalar(n *Node) any {
	c.checkTag(n.Tag)
	v, err := ResolveScalar(n.Tag, n.Value, n.Style, c.StrictIntegers)
	if err != nil {
		line, col := n.Location.StartPosition()
		Raise(&SyntaxError{
			Filename: n.Location.Source().Name(),
			Line:     line + 1,
			Column:   col + 1,
			Offset:   n.Location.Start,
			Message:  err.Error(),
		})
	}
	c.memo[n] = v
	return v
}

func (c *Constructor) constructSequence(n *Node) any {
	c.checkTag(n.Tag)
	out := make([]any, 0, len(n.Children))
	c.memo[n] = out
	for _, child := range n.Children {
		out = append(out, c.construct(child))
	}
	// The slice header changed while appending; memoize the final value
	// so later aliases observe the full sequence.
	c.memo[n] = out
	return out
}

func (c *Constructor) constructMapping(n *Node) any {
	c.checkTag(n.Tag)
	pairs := n.Pairs()
	stringKeys := true
	keys := make([]any, len(pairs))
	for i, pair := range pairs {
		keys[i] = c.construct(pair[0])
		switch keys[i].(type) {
		case map[string]any, map[any]any, []any, []byte:
			line, col := pair[0].Location.StartPosition()
			Raise(&SyntaxError{
				Filename: pair[0].Location.Source().Name(),
				Line:     line + 1,
				Column:   col + 1,
				Offset:   pair[0].Location.Start,
				Message:  "mapping key is not hashable",
			})
		}
		if _, ok := keys[i].(string); !ok {
			stringKeys = false
		}
	}
	// The map is memoized before its values are built so that aliases to
	// the enclosing mapping resolve to it.
	if stringKeys {
		out := make(map[string]any, len(pairs))
		c.memo[n] = out
		for i, pair := range pairs {
			out[keys[i].(string)] = c.construct(pair[1])
		}
		return out
	}
	out := make(map[any]any, len(pairs))
	c.memo[n] = out
	for i, pair := range pairs {
		out[keys[i]] = c.construct(pair[1])
	}
	return out
}

func (c *Constructor) constructAlias(n *Node) any {
	if !c.Aliases {
		Raise(&BadAliasError{Anchor: n.Value})
	}
	if n.Target == nil {
		Raise(&BadAliasError{Anchor: n.Value})
	}
	return c.construct(n.Target)
}

func (c *Constructor) checkTag(tag string) {
	if tag == "" || tag == "!" || c.Permitted == nil {
		return
	}
	if !c.Permitted(tag) {
		Raise(&DisallowedError{Kind: "tag", Name: tag})
	}
}
