// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pure

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constructValue(t *testing.T, input string, c *Constructor) any {
	t.Helper()
	docs, err := ParseDocuments("", []byte(input), false, true)
	require.NoError(t, err)
	require.NotEmpty(t, docs)
	v, err := c.Construct(docs[0])
	require.NoError(t, err)
	return v
}

func TestBuilderBuildsMappingTree(t *testing.T) {
	docs, err := ParseDocuments("", []byte("a: 1\nb:\n  - x\n"), false, true)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	root := docs[0].Root()
	require.Equal(t, MappingNode, root.Kind)
	pairs := root.Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, "a", pairs[0][0].Value)
	assert.Equal(t, "1", pairs[0][1].Value)
	assert.Equal(t, SequenceNode, pairs[1][1].Kind)
}

func TestBuilderResolvesAliases(t *testing.T) {
	docs, err := ParseDocuments("", []byte("- &a 1\n- *a\n"), false, true)
	require.NoError(t, err)
	seq := docs[0].Root()
	require.Len(t, seq.Children, 2)

	anchored, alias := seq.Children[0], seq.Children[1]
	assert.Equal(t, "a", anchored.Anchor)
	require.Equal(t, AliasNode, alias.Kind)
	assert.Same(t, anchored, alias.Target)
}

func TestBuilderLeavesAliasesUnresolvedWhenDisabled(t *testing.T) {
	docs, err := ParseDocuments("", []byte("- &a 1\n- *a\n"), false, false)
	require.NoError(t, err)
	alias := docs[0].Root().Children[1]
	require.Equal(t, AliasNode, alias.Kind)
	assert.Nil(t, alias.Target)
}

func TestConstructScenarios(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"- &a 1\n- *a\n", []any{1, 1}},
		{"a: 1", map[string]any{"a": 1}},
		{"{a: 1}", map[string]any{"a": 1}},
		{"1", 1},
		{"- 1", []any{1}},
		{"[1]", []any{1}},
		{"a: [1, two]\nb:\n  c: true\n", map[string]any{
			"a": []any{1, "two"},
			"b": map[string]any{"c": true},
		}},
	}
	for _, tt := range tests {
		got := constructValue(t, tt.input, &Constructor{Aliases: true})
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Construct(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestConstructRejectsAliasesWhenDisabled(t *testing.T) {
	docs, err := ParseDocuments("", []byte("- &a 1\n- *a\n"), false, true)
	require.NoError(t, err)
	_, err = (&Constructor{Aliases: false}).Construct(docs[0])
	var badAlias *BadAliasError
	require.ErrorAs(t, err, &badAlias)
}

func TestConstructRejectsUnknownAnchor(t *testing.T) {
	docs, err := ParseDocuments("", []byte("- *missing\n"), false, true)
	require.NoError(t, err)
	_, err = (&Constructor{Aliases: true}).Construct(docs[0])
	var badAlias *BadAliasError
	require.ErrorAs(t, err, &badAlias)
	assert.Equal(t, "missing", badAlias.Anchor)
}

func TestConstructPermittedTags(t *testing.T) {
	docs, err := ParseDocuments("", []byte("!!str ok\n"), false, true)
	require.NoError(t, err)
	c := &Constructor{Aliases: true, Permitted: SafePermitted(nil)}
	v, err := c.Construct(docs[0])
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	docs, err = ParseDocuments("", []byte("!custom data\n"), false, true)
	require.NoError(t, err)
	_, err = c.Construct(docs[0])
	var disallowed *DisallowedError
	require.ErrorAs(t, err, &disallowed)
	assert.Equal(t, "!custom", disallowed.Name)
}

func TestConstructSelfReferentialMapping(t *testing.T) {
	got := constructValue(t, "&self\nname: root\nchild: *self\n", &Constructor{Aliases: true})
	m, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "root", m["name"])
	child, ok := m["child"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "root", child["name"])
}
