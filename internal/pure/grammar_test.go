// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventRecorder keeps every event it receives, in order.
type eventRecorder struct {
	events []*Event
}

func (r *eventRecorder) record(e *Event)        { r.events = append(r.events, e) }
func (r *eventRecorder) StreamStart(e *Event)   { r.record(e) }
func (r *eventRecorder) StreamEnd(e *Event)     { r.record(e) }
func (r *eventRecorder) DocumentStart(e *Event) { r.record(e) }
func (r *eventRecorder) DocumentEnd(e *Event)   { r.record(e) }
func (r *eventRecorder) SequenceStart(e *Event) { r.record(e) }
func (r *eventRecorder) SequenceEnd(e *Event)   { r.record(e) }
func (r *eventRecorder) MappingStart(e *Event)  { r.record(e) }
func (r *eventRecorder) MappingEnd(e *Event)    { r.record(e) }
func (r *eventRecorder) Scalar(e *Event)        { r.record(e) }
func (r *eventRecorder) Alias(e *Event)         { r.record(e) }
func (r *eventRecorder) Comment(e *Event)       { r.record(e) }

func parseEvents(t *testing.T, input string) []*Event {
	t.Helper()
	p, err := NewParser("test.yaml", []byte(input), false)
	require.NoError(t, err)
	rec := &eventRecorder{}
	require.NoError(t, p.Parse(rec))
	return rec.events
}

func parseError(t *testing.T, input string) error {
	t.Helper()
	p, err := NewParser("test.yaml", []byte(input), false)
	require.NoError(t, err)
	err = p.Parse(&eventRecorder{})
	require.Error(t, err)
	return err
}

func eventTypes(events []*Event) []EventType {
	types := make([]EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}

func scalarValues(events []*Event) []string {
	var values []string
	for _, e := range events {
		if e.Type == ScalarEvent {
			values = append(values, e.Value)
		}
	}
	return values
}

func TestParseScalarDocument(t *testing.T) {
	events := parseEvents(t, "1")
	assert.Equal(t, []EventType{
		StreamStartEvent, DocumentStartEvent, ScalarEvent,
		DocumentEndEvent, StreamEndEvent,
	}, eventTypes(events))
	assert.Equal(t, "1", events[2].Value)
	assert.Equal(t, PlainStyle, events[2].Style)
	assert.True(t, events[1].Implicit)
	assert.True(t, events[3].Implicit)
}

func TestParseBlockMapping(t *testing.T) {
	events := parseEvents(t, "a: 1")
	assert.Equal(t, []EventType{
		StreamStartEvent, DocumentStartEvent, MappingStartEvent,
		ScalarEvent, ScalarEvent, MappingEndEvent,
		DocumentEndEvent, StreamEndEvent,
	}, eventTypes(events))
	assert.Equal(t, []string{"a", "1"}, scalarValues(events))
	assert.Equal(t, BlockStyle, events[2].CollectionStyle)
}

func TestParseFlowMapping(t *testing.T) {
	events := parseEvents(t, "{a: 1}")
	assert.Equal(t, []EventType{
		StreamStartEvent, DocumentStartEvent, MappingStartEvent,
		ScalarEvent, ScalarEvent, MappingEndEvent,
		DocumentEndEvent, StreamEndEvent,
	}, eventTypes(events))
	assert.Equal(t, FlowStyle, events[2].CollectionStyle)
}

func TestParseBlockSequence(t *testing.T) {
	events := parseEvents(t, "- 1\n- 2\n")
	assert.Equal(t, []EventType{
		StreamStartEvent, DocumentStartEvent, SequenceStartEvent,
		ScalarEvent, ScalarEvent, SequenceEndEvent,
		DocumentEndEvent, StreamEndEvent,
	}, eventTypes(events))
	assert.Equal(t, []string{"1", "2"}, scalarValues(events))
	assert.Equal(t, BlockStyle, events[2].CollectionStyle)
}

func TestParseFlowSequence(t *testing.T) {
	events := parseEvents(t, "[1]")
	assert.Equal(t, []EventType{
		StreamStartEvent, DocumentStartEvent, SequenceStartEvent,
		ScalarEvent, SequenceEndEvent,
		DocumentEndEvent, StreamEndEvent,
	}, eventTypes(events))
	assert.Equal(t, FlowStyle, events[2].CollectionStyle)
}

func TestParseAnchorAndAlias(t *testing.T) {
	events := parseEvents(t, "- &a 1\n- *a\n")
	assert.Equal(t, []EventType{
		StreamStartEvent, DocumentStartEvent, SequenceStartEvent,
		ScalarEvent, AliasEvent, SequenceEndEvent,
		DocumentEndEvent, StreamEndEvent,
	}, eventTypes(events))
	assert.Equal(t, "a", events[3].Anchor)
	assert.Equal(t, "1", events[3].Value)
	assert.Equal(t, "a", events[4].Value)
}

func TestParseNestedCollections(t *testing.T) {
	events := parseEvents(t, "a:\n  - 1\n  - b: 2\nc: [x, {y: z}]\n")
	depth := 0
	for _, e := range events {
		switch e.Type {
		case MappingStartEvent, SequenceStartEvent, DocumentStartEvent, StreamStartEvent:
			depth++
		case MappingEndEvent, SequenceEndEvent, DocumentEndEvent, StreamEndEvent:
			depth--
			assert.GreaterOrEqual(t, depth, 0)
		}
	}
	assert.Equal(t, 0, depth)
}

func TestParseFlowPairEmitsSyntheticMapping(t *testing.T) {
	events := parseEvents(t, "[a: 1]")
	assert.Equal(t, []EventType{
		StreamStartEvent, DocumentStartEvent, SequenceStartEvent,
		MappingStartEvent, ScalarEvent, ScalarEvent, MappingEndEvent,
		SequenceEndEvent, DocumentEndEvent, StreamEndEvent,
	}, eventTypes(events))
}

func TestParseExplicitDocuments(t *testing.T) {
	events := parseEvents(t, "---\na\n---\nb\n...\n")
	assert.Equal(t, []EventType{
		StreamStartEvent,
		DocumentStartEvent, ScalarEvent, DocumentEndEvent,
		DocumentStartEvent, ScalarEvent, DocumentEndEvent,
		StreamEndEvent,
	}, eventTypes(events))
	assert.False(t, events[1].Implicit)
	assert.True(t, events[3].Implicit)
	assert.False(t, events[6].Implicit)
	assert.Equal(t, []string{"a", "b"}, scalarValues(events))
}

func TestParseBareThenExplicitDocument(t *testing.T) {
	events := parseEvents(t, "a\n---\nb\n")
	assert.Equal(t, []EventType{
		StreamStartEvent,
		DocumentStartEvent, ScalarEvent, DocumentEndEvent,
		DocumentStartEvent, ScalarEvent, DocumentEndEvent,
		StreamEndEvent,
	}, eventTypes(events))
	assert.True(t, events[1].Implicit)
	assert.False(t, events[4].Implicit)
}

func TestParseEmptyStream(t *testing.T) {
	events := parseEvents(t, "")
	assert.Equal(t, []EventType{StreamStartEvent, StreamEndEvent}, eventTypes(events))
}

func TestParseCommentOnlyStream(t *testing.T) {
	events := parseEvents(t, "# nothing here\n")
	assert.Equal(t, []EventType{StreamStartEvent, StreamEndEvent}, eventTypes(events))
}

func TestParseYAMLDirective(t *testing.T) {
	events := parseEvents(t, "%YAML 1.2\n---\na\n")
	require.Equal(t, DocumentStartEvent, events[1].Type)
	require.NotNil(t, events[1].Version)
	assert.Equal(t, 1, events[1].Version.Major)
	assert.Equal(t, 2, events[1].Version.Minor)
	assert.False(t, events[1].Implicit)
}

func TestParseTagDirective(t *testing.T) {
	events := parseEvents(t, "%TAG !e! tag:example.com,2000:app/\n---\n!e!foo bar\n")
	var scalar *Event
	for _, e := range events {
		if e.Type == ScalarEvent {
			scalar = e
		}
	}
	require.NotNil(t, scalar)
	assert.Equal(t, "tag:example.com,2000:app/foo", scalar.Tag)
	assert.Equal(t, "bar", scalar.Value)
}

func TestParseSecondaryTagShorthand(t *testing.T) {
	events := parseEvents(t, "!!str 1\n")
	scalar := events[2]
	require.Equal(t, ScalarEvent, scalar.Type)
	assert.Equal(t, "tag:yaml.org,2002:str", scalar.Tag)
	assert.False(t, scalar.PlainImplicit)
}

func TestParseVerbatimTag(t *testing.T) {
	events := parseEvents(t, "!<tag:example.com,2002:x> v\n")
	scalar := events[2]
	require.Equal(t, ScalarEvent, scalar.Type)
	assert.Equal(t, "tag:example.com,2002:x", scalar.Tag)
}

func TestTagDirectivesResetPerDocument(t *testing.T) {
	err := parseError(t, "%TAG !e! tag:example.com,2000:\n---\n!e!a 1\n---\n!e!b 2\n")
	assert.Contains(t, err.Error(), "undefined tag handle")
}

func TestUndefinedNamedHandleIsError(t *testing.T) {
	err := parseError(t, "!nope!suffix value\n")
	assert.Contains(t, err.Error(), "undefined tag handle")
}

func TestDuplicateVersionDirectiveIsError(t *testing.T) {
	err := parseError(t, "%YAML 1.2\n%YAML 1.2\n---\na\n")
	assert.Contains(t, err.Error(), "duplicate %YAML directive")
}

func TestUnclosedFlowSequenceError(t *testing.T) {
	err := parseError(t, "servers: [a, b")
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Contains(t, syntaxErr.Message, "flow sequence")
	assert.Equal(t, "test.yaml", syntaxErr.Filename)
	assert.Greater(t, syntaxErr.Line, 0)
	assert.Greater(t, syntaxErr.Column, 0)
}

func TestUnclosedFlowMappingError(t *testing.T) {
	err := parseError(t, "{a: 1")
	assert.Contains(t, err.Error(), "flow mapping")
}

func TestOverlongImplicitKeyIsError(t *testing.T) {
	input := strings.Repeat("k", maxImplicitKeyLength+1) + ": 1\n"
	parseError(t, input)

	// A key of exactly the limit still parses.
	input = strings.Repeat("k", maxImplicitKeyLength) + ": 1\n"
	events := parseEvents(t, input)
	assert.Equal(t, MappingStartEvent, events[2].Type)
}

func TestEventLocationsAreWellFormed(t *testing.T) {
	inputs := []string{
		"a: 1\n",
		"- 1\n- [2, 3]\n",
		"a:\n  b:\n    - 1\n",
		"--- |\n text\n",
		"{a: [1, 2], b: {c: d}}\n",
	}
	for _, input := range inputs {
		for _, e := range parseEvents(t, input) {
			assert.LessOrEqual(t, e.Location.Start, e.Location.End, "input %q", input)
			assert.LessOrEqual(t, e.Location.End, len(input), "input %q", input)
			assert.GreaterOrEqual(t, e.Location.Start, 0, "input %q", input)
		}
	}
}

func TestParseExplicitBlockMappingEntry(t *testing.T) {
	events := parseEvents(t, "? complex key\n: its value\n")
	assert.Equal(t, []string{"complex key", "its value"}, scalarValues(events))
}

func TestParseEmptyValueInBlockMapping(t *testing.T) {
	events := parseEvents(t, "a:\nb: 2\n")
	assert.Equal(t, []string{"a", "", "b", "2"}, scalarValues(events))
}

func TestParserFinishedBeforeEndOfInput(t *testing.T) {
	err := parseError(t, "'a' trailing\n")
	assert.Contains(t, err.Error(), "before end of input")
}
