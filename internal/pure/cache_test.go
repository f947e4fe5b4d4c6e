// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cacheEvent(t EventType) *Event { return &Event{Type: t} }

func TestEventCacheDirectDelivery(t *testing.T) {
	var got []EventType
	sink := func(e *Event) { got = append(got, e.Type) }

	var c eventCache
	c.Add(cacheEvent(ScalarEvent), sink)
	assert.Equal(t, []EventType{ScalarEvent}, got)
}

func TestEventCacheFlushCommitsToSink(t *testing.T) {
	var got []EventType
	sink := func(e *Event) { got = append(got, e.Type) }

	var c eventCache
	c.Push()
	c.Add(cacheEvent(MappingStartEvent), sink)
	c.Add(cacheEvent(ScalarEvent), sink)
	assert.Empty(t, got)

	c.Flush(sink)
	assert.Equal(t, []EventType{MappingStartEvent, ScalarEvent}, got)
	assert.Equal(t, 0, c.Depth())
}

func TestEventCachePopDiscards(t *testing.T) {
	var got []EventType
	sink := func(e *Event) { got = append(got, e.Type) }

	var c eventCache
	c.Push()
	c.Add(cacheEvent(ScalarEvent), sink)
	c.Pop()
	c.Add(cacheEvent(StreamEndEvent), sink)
	assert.Equal(t, []EventType{StreamEndEvent}, got)
}

func TestEventCacheNestedFrames(t *testing.T) {
	var got []EventType
	sink := func(e *Event) { got = append(got, e.Type) }

	var c eventCache
	c.Push()
	c.Add(cacheEvent(SequenceStartEvent), sink)

	// An inner speculative frame that fails leaves the outer frame
	// untouched.
	c.Push()
	c.Add(cacheEvent(MappingStartEvent), sink)
	c.Pop()

	// An inner frame that succeeds folds into its parent.
	c.Push()
	c.Add(cacheEvent(ScalarEvent), sink)
	c.Flush(sink)
	assert.Empty(t, got)

	c.Add(cacheEvent(SequenceEndEvent), sink)
	c.Flush(sink)
	assert.Equal(t, []EventType{SequenceStartEvent, ScalarEvent, SequenceEndEvent}, got)
}
