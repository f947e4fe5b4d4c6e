// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The event model. The parser reports a linear sequence of structural
// events; their emission order defines the document tree.

package pure

import "fmt"

// EventType identifies the kind of a parsing event.
type EventType int8

// Event types.
const (
	// An empty event.
	NoEvent EventType = iota

	StreamStartEvent   // A STREAM-START event.
	StreamEndEvent     // A STREAM-END event.
	DocumentStartEvent // A DOCUMENT-START event.
	DocumentEndEvent   // A DOCUMENT-END event.
	AliasEvent         // An ALIAS event.
	ScalarEvent        // A SCALAR event.
	SequenceStartEvent // A SEQUENCE-START event.
	SequenceEndEvent   // A SEQUENCE-END event.
	MappingStartEvent  // A MAPPING-START event.
	MappingEndEvent    // A MAPPING-END event.
	CommentEvent       // A COMMENT record.
)

var eventStrings = []string{
	NoEvent:            "none",
	StreamStartEvent:   "stream start",
	StreamEndEvent:     "stream end",
	DocumentStartEvent: "document start",
	DocumentEndEvent:   "document end",
	AliasEvent:         "alias",
	ScalarEvent:        "scalar",
	SequenceStartEvent: "sequence start",
	SequenceEndEvent:   "sequence end",
	MappingStartEvent:  "mapping start",
	MappingEndEvent:    "mapping end",
	CommentEvent:       "comment",
}

func (e EventType) String() string {
	if e < 0 || int(e) >= len(eventStrings) {
		return fmt.Sprintf("unknown event %d", e)
	}
	return eventStrings[e]
}

// ScalarStyle identifies how a scalar was written in the source.
type ScalarStyle int8

// Scalar styles.
const (
	AnyScalarStyle ScalarStyle = iota

	PlainStyle        // The plain scalar style.
	SingleQuotedStyle // The single-quoted scalar style.
	DoubleQuotedStyle // The double-quoted scalar style.
	LiteralStyle      // The literal scalar style.
	FoldedStyle       // The folded scalar style.
)

// String returns a string representation of a [ScalarStyle].
func (s ScalarStyle) String() string {
	switch s {
	case PlainStyle:
		return "Plain"
	case SingleQuotedStyle:
		return "Single"
	case DoubleQuotedStyle:
		return "Double"
	case LiteralStyle:
		return "Literal"
	case FoldedStyle:
		return "Folded"
	default:
		return ""
	}
}

// CollectionStyle identifies how a mapping or sequence was written.
type CollectionStyle int8

// Collection styles.
const (
	AnyCollectionStyle CollectionStyle = iota

	BlockStyle // The indentation-delimited style.
	FlowStyle  // The bracketed JSON-like style.
)

// String returns a string representation of a [CollectionStyle].
func (s CollectionStyle) String() string {
	switch s {
	case BlockStyle:
		return "Block"
	case FlowStyle:
		return "Flow"
	default:
		return ""
	}
}

// Version holds a %YAML directive's version number.
type Version struct {
	Major int
	Minor int
}

// TagDirective holds one %TAG directive's handle/prefix pair.
type TagDirective struct {
	Handle string
	Prefix string
}

// Event holds information about a single parsing event.
type Event struct {
	// The event type.
	Type EventType

	// The byte range the event covers.
	Location Location

	// The version directive (for DocumentStartEvent).
	Version *Version

	// The tag directives in effect (for DocumentStartEvent).
	TagDirectives []TagDirective

	// Whether the document start/end indicator was implied rather than
	// written (for DocumentStartEvent, DocumentEndEvent).
	Implicit bool

	// The anchor (for ScalarEvent, SequenceStartEvent, MappingStartEvent).
	Anchor string

	// The resolved tag (for ScalarEvent, SequenceStartEvent,
	// MappingStartEvent).
	Tag string

	// The scalar value, alias name, or comment text.
	Value string

	// Whether the tag may be omitted for the plain style, and for any
	// non-plain style (for ScalarEvent).
	PlainImplicit  bool
	QuotedImplicit bool

	// The scalar style (for ScalarEvent).
	Style ScalarStyle

	// The collection style (for SequenceStartEvent, MappingStartEvent).
	CollectionStyle CollectionStyle

	// Whether the comment shares its line with node content to its left
	// (for CommentEvent).
	Inline bool
}

// Handler receives the event stream. Every event carries its Location, so
// handlers that care about positions read them off the event itself.
type Handler interface {
	StreamStart(e *Event)
	StreamEnd(e *Event)
	DocumentStart(e *Event)
	DocumentEnd(e *Event)
	SequenceStart(e *Event)
	SequenceEnd(e *Event)
	MappingStart(e *Event)
	MappingEnd(e *Event)
	Scalar(e *Event)
	Alias(e *Event)
	Comment(e *Event)
}

// Accept invokes the handler callback matching the event's type.
func (e *Event) Accept(h Handler) {
	switch e.Type {
	case StreamStartEvent:
		h.StreamStart(e)
	case StreamEndEvent:
		h.StreamEnd(e)
	case DocumentStartEvent:
		h.DocumentStart(e)
	case DocumentEndEvent:
		h.DocumentEnd(e)
	case SequenceStartEvent:
		h.SequenceStart(e)
	case SequenceEndEvent:
		h.SequenceEnd(e)
	case MappingStartEvent:
		h.MappingStart(e)
	case MappingEndEvent:
		h.MappingEnd(e)
	case ScalarEvent:
		h.Scalar(e)
	case AliasEvent:
		h.Alias(e)
	case CommentEvent:
		h.Comment(e)
	default:
		Raise(&InternalError{Message: fmt.Sprintf("cannot dispatch %s event", e.Type)})
	}
}

// NopHandler implements Handler with empty callbacks. It is intended for
// embedding by handlers that care about a subset of the stream.
type NopHandler struct{}

func (NopHandler) StreamStart(*Event)   {}
func (NopHandler) StreamEnd(*Event)     {}
func (NopHandler) DocumentStart(*Event) {}
func (NopHandler) DocumentEnd(*Event)   {}
func (NopHandler) SequenceStart(*Event) {}
func (NopHandler) SequenceEnd(*Event)   {}
func (NopHandler) MappingStart(*Event)  {}
func (NopHandler) MappingEnd(*Event)    {}
func (NopHandler) Scalar(*Event)        {}
func (NopHandler) Alias(*Event)         {}
func (NopHandler) Comment(*Event)       {}
