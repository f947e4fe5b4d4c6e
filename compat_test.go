// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Round-trip comparison against the reference gopkg.in/yaml.v3 parser:
// for untagged core-schema content the two loaders must agree.

package pureyaml_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	yamlv3 "gopkg.in/yaml.v3"

	yaml "go.yaml.in/pureyaml"
)

// compatFixtures hold untagged core-schema documents on which this parser
// and the reference parser must produce identical values.
var compatFixtures = []string{
	"a: 1\n",
	"a: hello\n",
	"- 1\n- 2\n- 3\n",
	"[1, 2, 3]\n",
	"{a: 1, b: two}\n",
	"a:\n  b:\n    c: deep\n",
	"a: [1, {b: 2}]\n",
	"- &x 1\n- *x\n",
	"v: 'single quoted'\n",
	"v: \"double quoted\"\n",
	"v: |\n  literal\n  block\n",
	"v: >\n  folded\n  block\n",
	"v: |-\n  stripped\n",
	"bools: [true, false]\n",
	"nulls: [~, null]\n",
	"nums: [1, -2, 3.5, 0x10]\n",
	"'quoted key': 1\n",
	"? explicit\n: entry\n",
	"a: 1\n---\nsecond: doc\n",
	"plain multi\n line\n",
}

// referenceLoadAll decodes every document with gopkg.in/yaml.v3.
func referenceLoadAll(t *testing.T, data []byte) []any {
	t.Helper()
	var out []any
	dec := yamlv3.NewDecoder(bytes.NewReader(data))
	for {
		var doc any
		if err := dec.Decode(&doc); err != nil {
			break
		}
		out = append(out, doc)
	}
	return out
}

func TestLoadMatchesReferenceParser(t *testing.T) {
	for _, fixture := range compatFixtures {
		got, err := yaml.LoadStream([]byte(fixture))
		require.NoError(t, err, "fixture %q", fixture)

		want := referenceLoadAll(t, []byte(fixture))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("fixture %q: loaded value differs from reference (-reference +got):\n%s", fixture, diff)
		}
	}
}

func TestDumpAcceptedByReferenceParser(t *testing.T) {
	values := []any{
		map[string]any{"a": 1, "b": []any{"x", "y"}},
		[]any{1, 2.5, true, nil, "text"},
		map[string]any{"nested": map[string]any{"deep": []any{1}}},
	}
	for _, value := range values {
		out, err := yaml.Dump(value)
		require.NoError(t, err, "value %#v", value)

		var reference any
		require.NoError(t, yamlv3.Unmarshal(out, &reference), "output %q", out)

		own, err := yaml.Load(out)
		require.NoError(t, err)
		if diff := cmp.Diff(reference, own); diff != "" {
			t.Errorf("value %#v: reference and own reload differ (-reference +own):\n%s", value, diff)
		}
	}
}
