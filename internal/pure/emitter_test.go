// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dumpValue(t *testing.T, v any) string {
	t.Helper()
	r := &Representer{Aliases: true}
	doc, err := r.Represent(v)
	require.NoError(t, err)
	out, err := NewEmitter().EmitDocument(doc)
	require.NoError(t, err)
	return string(out)
}

func TestEmitScalars(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{1, "1\n"},
		{"hello", "hello\n"},
		{true, "true\n"},
		{nil, "null\n"},
		{3.5, "3.5\n"},
		{"1", "\"1\"\n"},
		{"", "\"\"\n"},
		{"has: colon", "\"has: colon\"\n"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dumpValue(t, tt.value), "value %#v", tt.value)
	}
}

func TestEmitBlockMapping(t *testing.T) {
	got := dumpValue(t, map[string]any{"a": 1})
	assert.Equal(t, "a: 1\n", got)
}

func TestEmitMapKeysAreSorted(t *testing.T) {
	got := dumpValue(t, map[string]any{"b": 2, "a": 1, "c": 3})
	assert.Equal(t, "a: 1\nb: 2\nc: 3\n", got)
}

func TestEmitBlockSequence(t *testing.T) {
	got := dumpValue(t, []any{1, "two", true})
	assert.Equal(t, "- 1\n- two\n- true\n", got)
}

func TestEmitNestedCollections(t *testing.T) {
	got := dumpValue(t, map[string]any{
		"list": []any{1, 2},
		"map":  map[string]any{"x": "y"},
	})
	assert.Equal(t, "list:\n  - 1\n  - 2\nmap:\n  x: y\n", got)
}

func TestEmitDeterministic(t *testing.T) {
	v := map[string]any{"a": []any{1, 2, 3}, "b": map[string]any{"c": 1, "d": 2}}
	first := dumpValue(t, v)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, dumpValue(t, v))
	}
}

func TestEmitAnchorsOnRepeatedObjects(t *testing.T) {
	shared := []any{1}
	got := dumpValue(t, []any{shared, shared})
	assert.Equal(t, "- &1\n  - 1\n- *1\n", got)
}

func TestEmitRepeatedObjectWithoutAliasesIsError(t *testing.T) {
	shared := []any{1}
	r := &Representer{Aliases: false}
	_, err := r.Represent([]any{shared, shared})
	var badAlias *BadAliasError
	require.ErrorAs(t, err, &badAlias)
}

func TestEmitCyclicValue(t *testing.T) {
	m := map[string]any{}
	m["self"] = m
	got := dumpValue(t, m)
	assert.Contains(t, got, "&1")
	assert.Contains(t, got, "*1")
}

func TestSafeRepresenterRejectsStructs(t *testing.T) {
	type secret struct{ Token string }
	r := &Representer{Aliases: true, Safe: true}
	_, err := r.Represent(secret{Token: "x"})
	var disallowed *DisallowedError
	require.ErrorAs(t, err, &disallowed)
}

func TestEmitLiteralScalar(t *testing.T) {
	got := dumpValue(t, map[string]any{"text": "line1\nline2\n"})
	assert.Equal(t, "text: |\n  line1\n  line2\n", got)
}

func TestEmitLiteralScalarStrip(t *testing.T) {
	got := dumpValue(t, map[string]any{"text": "line1\nline2"})
	assert.Equal(t, "text: |-\n  line1\n  line2\n", got)
}

func TestEmitStructFields(t *testing.T) {
	type server struct {
		Name string
		Port int    `yaml:"port"`
		Skip string `yaml:"-"`
	}
	got := dumpValue(t, server{Name: "web", Port: 80, Skip: "x"})
	assert.Equal(t, "name: web\nport: 80\n", got)
}

func TestEmitFlowWrapAtLineWidth(t *testing.T) {
	items := make([]any, 30)
	for i := range items {
		items[i] = "itemitemitem"
	}
	n := &Node{Kind: SequenceNode, CollectionStyle: FlowStyle}
	for range items {
		n.Children = append(n.Children, &Node{Kind: ScalarNode, Value: "itemitemitem", Style: PlainStyle})
	}
	doc := &Node{Kind: DocumentNode, Children: []*Node{n}, ImplicitStart: true}
	out, err := NewEmitter().EmitDocument(doc)
	require.NoError(t, err)
	for _, line := range splitLines(string(out)) {
		assert.LessOrEqual(t, len(line), 100, "line %q", line)
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return lines
}

func TestEmitExplicitStart(t *testing.T) {
	e := NewEmitter()
	e.ExplicitStart = true
	r := &Representer{Aliases: true}
	doc, err := r.Represent(map[string]any{"a": 1})
	require.NoError(t, err)
	out, err := e.EmitDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, "---\na: 1\n", string(out))
}

func TestEmitMultipleDocuments(t *testing.T) {
	r := &Representer{Aliases: true}
	doc1, err := r.Represent("one")
	require.NoError(t, err)
	r = &Representer{Aliases: true}
	doc2, err := r.Represent("two")
	require.NoError(t, err)
	out, err := NewEmitter().EmitStream([]*Node{doc1, doc2})
	require.NoError(t, err)
	assert.Equal(t, "one\n--- two\n", string(out))
}

func TestRoundTripThroughEmitter(t *testing.T) {
	inputs := []string{
		"a: 1\n",
		"- 1\n- two\n",
		"a:\n  - 1\n  - b: 2\n",
	}
	for _, input := range inputs {
		docs, err := ParseDocuments("", []byte(input), false, true)
		require.NoError(t, err)
		out, err := NewEmitter().EmitStream(docs)
		require.NoError(t, err)
		assert.Equal(t, input, string(out), "round trip of %q", input)
	}
}

func TestCommentsSurviveRoundTrip(t *testing.T) {
	input := "- a # comment1\n- c # comment2\n"
	docs, err := ParseDocuments("", []byte(input), true, true)
	require.NoError(t, err)
	out, err := NewEmitter().EmitStream(docs)
	require.NoError(t, err)
	assert.Equal(t, input, string(out))
}

func TestMutatedTreeDumpsCleanly(t *testing.T) {
	docs, err := ParseDocuments("", []byte("- a # comment1\n- c # comment2\n"), true, true)
	require.NoError(t, err)
	seq := docs[0].Root()

	// Insert a new element between the two existing ones.
	b := &Node{Kind: ScalarNode, Value: "b", Style: PlainStyle}
	seq.Children = append(seq.Children[:1], append([]*Node{b}, seq.Children[1:]...)...)

	out, err := NewEmitter().EmitStream(docs)
	require.NoError(t, err)
	assert.Equal(t, "- a # comment1\n- b\n- c # comment2\n", string(out))
}

func TestDeletedElementLeavesNoResidue(t *testing.T) {
	docs, err := ParseDocuments("", []byte("- a\n- b\n- c\n"), true, true)
	require.NoError(t, err)
	seq := docs[0].Root()
	seq.Children = append(seq.Children[:1], seq.Children[2:]...)

	out, err := NewEmitter().EmitStream(docs)
	require.NoError(t, err)
	assert.Equal(t, "- a\n- c\n", string(out))
}
