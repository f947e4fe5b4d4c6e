// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package pureyaml

// Option configures loading, dumping, and parsing operations.
type Option func(*options)

type options struct {
	filename       string
	comments       bool
	aliases        *bool
	strictIntegers bool
	permittedTags  []string
	fallback       any
	safe           bool

	indent         int
	sequenceIndent int
	lineWidth      int
	explicitStart  bool
}

func applyOptions(opts []Option) *options {
	o := &options{
		indent:         2,
		sequenceIndent: 2,
		lineWidth:      79,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// loadAliases reports whether the loader follows aliases: the default for
// Load, opt-in for SafeLoad.
func (o *options) loadAliases() bool {
	if o.aliases != nil {
		return *o.aliases
	}
	return !o.safe
}

// dumpAliases reports whether the emitter may write aliases: the default
// for Dump, opt-in for SafeDump.
func (o *options) dumpAliases(safe bool) bool {
	if o.aliases != nil {
		return *o.aliases
	}
	return !safe
}

// WithFilename sets the name reported in syntax errors.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithComments enables comment collection. Parsed trees carry each comment
// attached to its nearest node, and dumping such a tree writes the
// comments back out.
func WithComments() Option {
	return func(o *options) { o.comments = true }
}

// WithAliases enables or disables anchors and aliases explicitly,
// overriding the Load/SafeLoad and Dump/SafeDump defaults.
func WithAliases(enable bool) Option {
	return func(o *options) { o.aliases = &enable }
}

// WithStrictIntegers disables underscore separators when resolving
// numbers.
func WithStrictIntegers() Option {
	return func(o *options) { o.strictIntegers = true }
}

// WithPermittedTags extends the safe loader's allow-list beyond the core
// schema.
func WithPermittedTags(tags ...string) Option {
	return func(o *options) { o.permittedTags = append(o.permittedTags, tags...) }
}

// WithFallback sets the value Load returns for an input with no document.
func WithFallback(v any) Option {
	return func(o *options) { o.fallback = v }
}

// WithIndent sets the number of spaces per nesting level when dumping.
func WithIndent(spaces int) Option {
	return func(o *options) {
		o.indent = spaces
		o.sequenceIndent = spaces
	}
}

// WithSequenceIndent sets the indentation of block sequence entries
// independently of mappings.
func WithSequenceIndent(spaces int) Option {
	return func(o *options) { o.sequenceIndent = spaces }
}

// WithLineWidth sets the column at which dumped flow collections wrap.
func WithLineWidth(width int) Option {
	return func(o *options) { o.lineWidth = width }
}

// WithExplicitStart forces a "---" marker before every dumped document.
func WithExplicitStart() Option {
	return func(o *options) { o.explicitStart = true }
}
