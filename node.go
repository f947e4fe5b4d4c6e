// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pureyaml

import "go.yaml.in/pureyaml/internal/pure"

// -----------------------------------------------------------------------------
// Node-related type aliases and constants
// -----------------------------------------------------------------------------

type (
	// Node is one element of a parsed document tree. A DocumentNode holds
	// its root in Children; a MappingNode interleaves keys and values in
	// Children; a SequenceNode lists its items. Nodes carry byte-precise
	// source locations and, when comments are enabled, their attached
	// leading and trailing comments.
	Node = pure.Node

	// Kind identifies the type of a Node.
	Kind = pure.Kind

	// Comment is a single "# ..." record attached to a node.
	Comment = pure.Comment

	// Location is a byte range within a parsed source.
	Location = pure.Location

	// Source is an indexed input buffer.
	Source = pure.Source

	// Event is one record of the parser's event stream.
	Event = pure.Event

	// EventType identifies the kind of an Event.
	EventType = pure.EventType

	// Handler receives the event stream from ScanEvents.
	Handler = pure.Handler

	// NopHandler implements Handler with empty callbacks, for embedding.
	NopHandler = pure.NopHandler

	// ScalarStyle identifies how a scalar was written.
	ScalarStyle = pure.ScalarStyle

	// CollectionStyle identifies how a mapping or sequence was written.
	CollectionStyle = pure.CollectionStyle
)

// Kind constants define the different types of nodes.
const (
	DocumentNode = pure.DocumentNode
	MappingNode  = pure.MappingNode
	SequenceNode = pure.SequenceNode
	ScalarNode   = pure.ScalarNode
	AliasNode    = pure.AliasNode
)

// Event type constants.
const (
	StreamStartEvent   = pure.StreamStartEvent
	StreamEndEvent     = pure.StreamEndEvent
	DocumentStartEvent = pure.DocumentStartEvent
	DocumentEndEvent   = pure.DocumentEndEvent
	AliasEvent         = pure.AliasEvent
	ScalarEvent        = pure.ScalarEvent
	SequenceStartEvent = pure.SequenceStartEvent
	SequenceEndEvent   = pure.SequenceEndEvent
	MappingStartEvent  = pure.MappingStartEvent
	MappingEndEvent    = pure.MappingEndEvent
	CommentEvent       = pure.CommentEvent
)

// Scalar style constants.
const (
	PlainStyle        = pure.PlainStyle
	SingleQuotedStyle = pure.SingleQuotedStyle
	DoubleQuotedStyle = pure.DoubleQuotedStyle
	LiteralStyle      = pure.LiteralStyle
	FoldedStyle       = pure.FoldedStyle
)

// Collection style constants.
const (
	BlockStyle = pure.BlockStyle
	FlowStyle  = pure.FlowStyle
)
