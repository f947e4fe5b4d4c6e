// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The safe layer: allow-lists applied by SafeLoad and SafeDump.

package pure

// safeTags are the core-schema tags the safe loader always accepts.
var safeTags = map[string]bool{
	NullTag:  true,
	BoolTag:  true,
	StrTag:   true,
	IntTag:   true,
	FloatTag: true,
	SeqTag:   true,
	MapTag:   true,
}

// SafePermitted builds the tag filter for the safe loader: the core schema
// plus any explicitly permitted tags.
func SafePermitted(extra []string) func(string) bool {
	allowed := make(map[string]bool, len(safeTags)+len(extra))
	for tag := range safeTags {
		allowed[tag] = true
	}
	for _, tag := range extra {
		allowed[tag] = true
	}
	return func(tag string) bool { return allowed[tag] }
}
