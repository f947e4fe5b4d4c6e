// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The value builder: a Handler that turns the event stream into document
// node trees, resolving anchors as it goes.

package pure

// TreeBuilder consumes events and produces a tree of Nodes per document.
type TreeBuilder struct {
	NopHandler

	resolveAliases bool

	docs    []*Node
	stack   []*Node
	anchors map[string]*Node
}

// NewTreeBuilder returns a builder. When resolveAliases is set, alias
// nodes carry a Target pointing at the anchored node they refer to.
func NewTreeBuilder(resolveAliases bool) *TreeBuilder {
	return &TreeBuilder{
		resolveAliases: resolveAliases,
		anchors:        make(map[string]*Node),
	}
}

// Documents returns the trees built so far, one per document.
func (b *TreeBuilder) Documents() []*Node { return b.docs }

func (b *TreeBuilder) DocumentStart(e *Event) {
	doc := &Node{
		Kind:          DocumentNode,
		Location:      e.Location,
		ImplicitStart: e.Implicit,
		Version:       e.Version,
	}
	b.stack = append(b.stack, doc)
}

func (b *TreeBuilder) DocumentEnd(e *Event) {
	doc := b.pop()
	doc.Location = doc.Location.Join(e.Location)
	doc.ImplicitEnd = e.Implicit
	b.docs = append(b.docs, doc)
}

func (b *TreeBuilder) SequenceStart(e *Event) {
	b.push(&Node{
		Kind:            SequenceNode,
		Location:        e.Location,
		Anchor:          e.Anchor,
		Tag:             e.Tag,
		CollectionStyle: e.CollectionStyle,
	})
}

func (b *TreeBuilder) SequenceEnd(e *Event) {
	node := b.pop()
	node.Location = node.Location.Join(e.Location)
	b.attach(node)
}

func (b *TreeBuilder) MappingStart(e *Event) {
	b.push(&Node{
		Kind:            MappingNode,
		Location:        e.Location,
		Anchor:          e.Anchor,
		Tag:             e.Tag,
		CollectionStyle: e.CollectionStyle,
	})
}

func (b *TreeBuilder) MappingEnd(e *Event) {
	node := b.pop()
	node.Location = node.Location.Join(e.Location)
	b.attach(node)
}

func (b *TreeBuilder) Scalar(e *Event) {
	node := &Node{
		Kind:     ScalarNode,
		Location: e.Location,
		Value:    e.Value,
		Anchor:   e.Anchor,
		Tag:      e.Tag,
		Style:    e.Style,
	}
	b.register(node)
	b.attach(node)
}

func (b *TreeBuilder) Alias(e *Event) {
	node := &Node{
		Kind:     AliasNode,
		Location: e.Location,
		Value:    e.Value,
	}
	if b.resolveAliases {
		node.Target = b.anchors[e.Value]
	}
	b.attach(node)
}

// push opens a collection node, registering its anchor before any children
// arrive so that self-referential aliases resolve.
func (b *TreeBuilder) push(node *Node) {
	b.register(node)
	b.stack = append(b.stack, node)
}

func (b *TreeBuilder) pop() *Node {
	if len(b.stack) == 0 {
		Raise(&InternalError{Message: "unbalanced event stream"})
	}
	node := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return node
}

func (b *TreeBuilder) register(node *Node) {
	if node.Anchor != "" {
		b.anchors[node.Anchor] = node
	}
}

// attach adds a completed node to the collection being built.
func (b *TreeBuilder) attach(node *Node) {
	if len(b.stack) == 0 {
		Raise(&InternalError{Message: "content event outside a document"})
	}
	parent := b.stack[len(b.stack)-1]
	parent.Children = append(parent.Children, node)
	parent.Location = parent.Location.Join(node.Location)
}
