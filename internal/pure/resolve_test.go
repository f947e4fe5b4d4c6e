// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePlainScalars(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{"", nil},
		{"~", nil},
		{"null", nil},
		{"NULL", nil},
		{"true", true},
		{"False", false},
		{"0", 0},
		{"1", 1},
		{"-7", -7},
		{"+42", 42},
		{"0x1F", 31},
		{"0o17", 15},
		{"1_000", 1000},
		{"3.14", 3.14},
		{"-2e3", -2000.0},
		{".inf", math.Inf(1)},
		{"-.inf", math.Inf(-1)},
		// Strings the core schema does not resolve.
		{"y", "y"},
		{"yes", "yes"},
		{"on", "on"},
		{"0b1010", "0b1010"},
		{"1.2.3", "1.2.3"},
		{"-", "-"},
		{"hello", "hello"},
	}
	for _, tt := range tests {
		got, err := ResolveScalar("", tt.input, PlainStyle, false)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestResolveNaN(t *testing.T) {
	got, err := ResolveScalar("", ".nan", PlainStyle, false)
	require.NoError(t, err)
	f, ok := got.(float64)
	require.True(t, ok)
	assert.True(t, math.IsNaN(f))
}

func TestResolveQuotedScalarsStayStrings(t *testing.T) {
	for _, style := range []ScalarStyle{SingleQuotedStyle, DoubleQuotedStyle, LiteralStyle, FoldedStyle} {
		got, err := ResolveScalar("", "1", style, false)
		require.NoError(t, err)
		assert.Equal(t, "1", got)
	}
}

func TestResolveStrictIntegers(t *testing.T) {
	got, err := ResolveScalar("", "1_000", PlainStyle, true)
	require.NoError(t, err)
	assert.Equal(t, "1_000", got)

	got, err = ResolveScalar("", "1000", PlainStyle, true)
	require.NoError(t, err)
	assert.Equal(t, 1000, got)
}

func TestResolveExplicitTags(t *testing.T) {
	got, err := ResolveScalar(StrTag, "1", PlainStyle, false)
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	got, err = ResolveScalar(IntTag, "17", PlainStyle, false)
	require.NoError(t, err)
	assert.Equal(t, 17, got)

	got, err = ResolveScalar(NullTag, "null", PlainStyle, false)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ResolveScalar(IntTag, "not a number", PlainStyle, false)
	require.Error(t, err)
}

func TestResolveBinaryTag(t *testing.T) {
	got, err := ResolveScalar(BinaryTag, "aGVsbG8=", PlainStyle, false)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestResolveNonSpecificTagForcesString(t *testing.T) {
	got, err := ResolveScalar("!", "123", PlainStyle, false)
	require.NoError(t, err)
	assert.Equal(t, "123", got)
}

func TestResolveLargeIntegers(t *testing.T) {
	got, err := ResolveScalar("", "9223372036854775807", PlainStyle, false)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt64, got)

	got, err = ResolveScalar("", "18446744073709551615", PlainStyle, false)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), got)
}
