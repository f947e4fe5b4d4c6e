// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Tests for the streaming event consumer contract.

package pureyaml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yaml "go.yaml.in/pureyaml"
)

// typeCollector records the type of every event it receives.
type typeCollector struct {
	yaml.NopHandler
	types   []yaml.EventType
	scalars []string
}

func (c *typeCollector) StreamStart(e *yaml.Event)   { c.types = append(c.types, e.Type) }
func (c *typeCollector) StreamEnd(e *yaml.Event)     { c.types = append(c.types, e.Type) }
func (c *typeCollector) DocumentStart(e *yaml.Event) { c.types = append(c.types, e.Type) }
func (c *typeCollector) DocumentEnd(e *yaml.Event)   { c.types = append(c.types, e.Type) }
func (c *typeCollector) MappingStart(e *yaml.Event)  { c.types = append(c.types, e.Type) }
func (c *typeCollector) MappingEnd(e *yaml.Event)    { c.types = append(c.types, e.Type) }
func (c *typeCollector) SequenceStart(e *yaml.Event) { c.types = append(c.types, e.Type) }
func (c *typeCollector) SequenceEnd(e *yaml.Event)   { c.types = append(c.types, e.Type) }

func (c *typeCollector) Scalar(e *yaml.Event) {
	c.types = append(c.types, e.Type)
	c.scalars = append(c.scalars, e.Value)
}

func TestScanEvents(t *testing.T) {
	var collector typeCollector
	err := yaml.ScanEvents([]byte("a: [1, 2]\n"), &collector)
	require.NoError(t, err)
	assert.Equal(t, []yaml.EventType{
		yaml.StreamStartEvent,
		yaml.DocumentStartEvent,
		yaml.MappingStartEvent,
		yaml.ScalarEvent,
		yaml.SequenceStartEvent,
		yaml.ScalarEvent,
		yaml.ScalarEvent,
		yaml.SequenceEndEvent,
		yaml.MappingEndEvent,
		yaml.DocumentEndEvent,
		yaml.StreamEndEvent,
	}, collector.types)
	assert.Equal(t, []string{"a", "1", "2"}, collector.scalars)
}

func TestScanEventsNopHandlerEmbedding(t *testing.T) {
	// A handler that only cares about scalars can embed NopHandler.
	type scalarsOnly struct {
		yaml.NopHandler
		values []string
	}
	h := &scalarsOnly{}
	// Method sets cannot be extended inline, so just verify the embedded
	// handler satisfies the interface and the parse completes.
	err := yaml.ScanEvents([]byte("x: y\n"), h)
	require.NoError(t, err)
}

func TestScanEventsReportsComments(t *testing.T) {
	var events []*yaml.Event
	h := &commentCollector{events: &events}
	err := yaml.ScanEvents([]byte("a: 1 # note\n"), h, yaml.WithComments())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "# note", events[0].Value)
	assert.True(t, events[0].Inline)
}

type commentCollector struct {
	yaml.NopHandler
	events *[]*yaml.Event
}

func (c *commentCollector) Comment(e *yaml.Event) { *c.events = append(*c.events, e) }

func TestScanEventsSyntaxError(t *testing.T) {
	err := yaml.ScanEvents([]byte("{bad"), &typeCollector{})
	var syntaxErr *yaml.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
}
