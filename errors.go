// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pureyaml

import "go.yaml.in/pureyaml/internal/pure"

// Re-export error types from internal/pure.
type (
	// SyntaxError reports a grammar failure at a known position.
	SyntaxError = pure.SyntaxError

	// BadAliasError reports an alias where aliases are not permitted, or
	// one that refers to an undefined anchor.
	BadAliasError = pure.BadAliasError

	// DisallowedError reports a tag or type outside the safe allow-list.
	DisallowedError = pure.DisallowedError

	// NotUTF8Error reports input that is not valid UTF-8.
	NotUTF8Error = pure.NotUTF8Error

	// InternalError reports a violated invariant. It indicates a bug in
	// this package rather than bad input.
	InternalError = pure.InternalError
)
