// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTree(t *testing.T, input string) []*Node {
	t.Helper()
	docs, err := ParseDocuments("", []byte(input), true, true)
	require.NoError(t, err)
	return docs
}

func TestCommentCollectorDeduplicates(t *testing.T) {
	s, err := NewSource("", []byte("# one\n"))
	require.NoError(t, err)
	c := newCommentCollector()
	loc := NewLocation(s, 0, 5)

	first, fresh := c.Record(loc, "# one", false)
	assert.True(t, fresh)

	// A retried branch re-encounters the same '#' at the same offset.
	again, fresh := c.Record(loc, "# one", false)
	assert.False(t, fresh)
	assert.Same(t, first, again)
	assert.Len(t, c.All(), 1)
}

func TestCommentEventsReportedOnce(t *testing.T) {
	p, err := NewParser("", []byte("a: 1 # trailing\n"), true)
	require.NoError(t, err)
	rec := &eventRecorder{}
	require.NoError(t, p.Parse(rec))

	var comments []*Event
	for _, e := range rec.events {
		if e.Type == CommentEvent {
			comments = append(comments, e)
		}
	}
	require.Len(t, comments, 1)
	assert.Equal(t, "# trailing", comments[0].Value)
	assert.True(t, comments[0].Inline)
}

func TestInlineCommentAttachesToPrecedingNode(t *testing.T) {
	docs := parseTree(t, "- a # comment1\n- c # comment2\n")
	require.Len(t, docs, 1)
	seq := docs[0].Root()
	require.Equal(t, SequenceNode, seq.Kind)
	require.Len(t, seq.Children, 2)

	a, c := seq.Children[0], seq.Children[1]
	require.Len(t, a.Trailing, 1)
	assert.Equal(t, "# comment1", a.Trailing[0].Text)
	assert.True(t, a.Trailing[0].Inline)
	require.Len(t, c.Trailing, 1)
	assert.Equal(t, "# comment2", c.Trailing[0].Text)
}

func TestStandaloneCommentAttachesToFollowingNode(t *testing.T) {
	docs := parseTree(t, "a: 1\n# note\nb: 2\n")
	mapping := docs[0].Root()
	require.Equal(t, MappingNode, mapping.Kind)
	pairs := mapping.Pairs()
	require.Len(t, pairs, 2)

	b := pairs[1][0]
	require.Len(t, b.Leading, 1)
	assert.Equal(t, "# note", b.Leading[0].Text)
	assert.False(t, b.Leading[0].Inline)
}

func TestLeadingCommentBeforeDocument(t *testing.T) {
	docs := parseTree(t, "# head\na: 1\n")
	require.Len(t, docs, 1)
	require.Len(t, docs[0].Leading, 1)
	assert.Equal(t, "# head", docs[0].Leading[0].Text)
}

func TestTrailingCommentAfterLastNode(t *testing.T) {
	docs := parseTree(t, "a: 1\n# tail comment\n")

	// With no following node, a standalone comment trails the nearest
	// preceding one; past the end of the document that is the document
	// itself.
	require.Len(t, docs[0].Trailing, 1)
	assert.Equal(t, "# tail comment", docs[0].Trailing[0].Text)
}

func TestCommentsDisabledByDefault(t *testing.T) {
	docs, err := ParseDocuments("", []byte("a: 1 # gone\n"), false, true)
	require.NoError(t, err)
	assert.False(t, docs[0].HasComments())
}

func TestHasComments(t *testing.T) {
	docs := parseTree(t, "a: 1 # yes\n")
	assert.True(t, docs[0].HasComments())
}
