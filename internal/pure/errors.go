// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Error types for YAML parsing and emitting.
// Provides structured error reporting with line/column information.

package pure

import (
	"fmt"
	"strings"
)

// SyntaxError reports a grammar failure at a known position in the input.
// Line and Column are 1-based; Offset is the byte offset into the source.
type SyntaxError struct {
	Filename string
	Line     int
	Column   int
	Offset   int
	Message  string
}

// Error returns the error message with position information.
func (e *SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString("yaml: ")
	if e.Filename != "" {
		b.WriteString(e.Filename)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "line %d, column %d: %s", e.Line, e.Column, e.Message)
	return b.String()
}

// BadAliasError is reported by the emitter when an alias would be written
// but aliases are not permitted, and by the constructor when it meets an
// alias while aliases are disabled or one whose anchor is undefined.
type BadAliasError struct {
	Anchor string
}

// Error returns the error message.
func (e *BadAliasError) Error() string {
	return fmt.Sprintf("yaml: alias %q is not allowed", e.Anchor)
}

// DisallowedError is reported by the safe loader and safe emitter when a
// tag or value type falls outside the configured allow-list.
type DisallowedError struct {
	Kind string // "tag" or "type"
	Name string
}

// Error returns the error message.
func (e *DisallowedError) Error() string {
	return fmt.Sprintf("yaml: %s %s is not permitted", e.Kind, e.Name)
}

// InternalError signals a violated invariant. It indicates a bug in this
// package rather than bad input, and is not part of the public contract.
type InternalError struct {
	Message string
}

// Error returns the error message.
func (e *InternalError) Error() string {
	return fmt.Sprintf("yaml: internal error: %s", e.Message)
}

// NotUTF8Error is reported when the input is not valid UTF-8.
type NotUTF8Error struct {
	Offset int
}

// Error returns the error message.
func (e *NotUTF8Error) Error() string {
	return fmt.Sprintf("yaml: invalid UTF-8 sequence at offset %d", e.Offset)
}

// EmitterError reports a failure while emitting a YAML stream.
type EmitterError struct {
	Message string
}

// Error returns the error message.
func (e *EmitterError) Error() string {
	return fmt.Sprintf("yaml: %s", e.Message)
}

// YAMLError is an internal panic wrapper. Grammar rules and emitter steps
// raise errors by panicking with a *YAMLError; the public entry points
// recover it back into an ordinary error value.
type YAMLError struct {
	Err error
}

// Error returns the error message.
func (e *YAMLError) Error() string {
	return e.Err.Error()
}

// Raise panics with err wrapped so that HandleErr can recover it.
func Raise(err error) {
	panic(&YAMLError{Err: err})
}

// HandleErr recovers from panics caused by yaml errors.
// It's used in defer statements to convert YAMLError panics into regular
// errors.
func HandleErr(err *error) {
	if v := recover(); v != nil {
		if e, ok := v.(*YAMLError); ok {
			*err = e.Err
		} else {
			panic(v)
		}
	}
}
