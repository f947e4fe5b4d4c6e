// Package option holds a reusable configuration carrier for YAML
// processing. Unset fields fall back to defaults, so configs built from
// different sources (flags, files, code) can be layered with Apply.
package option

// Config holds configuration options for YAML processing
type Config struct {
	indent    *int
	lineWidth *int
	comments  *bool
	aliases   *bool
}

const (
	defaultIndent    = 2
	defaultLineWidth = 79
	defaultComments  = false
	defaultAliases   = true
)

// Option represents a functional option for configuring YAML processing
type Option func(*Config)

// WithIndent returns an Option that sets the indent value
func WithIndent(indent int) Option {
	return func(c *Config) {
		c.indent = &indent
	}
}

// WithLineWidth returns an Option that sets the emitter line width
func WithLineWidth(width int) Option {
	return func(c *Config) {
		c.lineWidth = &width
	}
}

// WithComments returns an Option that enables/disables comment collection
func WithComments(enable bool) Option {
	return func(c *Config) {
		c.comments = &enable
	}
}

// WithAliases returns an Option that enables/disables anchors and aliases
func WithAliases(enable bool) Option {
	return func(c *Config) {
		c.aliases = &enable
	}
}

// GetIndent returns the Config's indent if set or the default value
func (c *Config) GetIndent() int {
	if c.indent != nil {
		return *c.indent
	}
	return defaultIndent
}

// GetLineWidth returns the Config's line width if set or the default value
func (c *Config) GetLineWidth() int {
	if c.lineWidth != nil {
		return *c.lineWidth
	}
	return defaultLineWidth
}

// GetComments returns the Config's comments flag if set or the default value
func (c *Config) GetComments() bool {
	if c.comments != nil {
		return *c.comments
	}
	return defaultComments
}

// GetAliases returns the Config's aliases flag if set or the default value
func (c *Config) GetAliases() bool {
	if c.aliases != nil {
		return *c.aliases
	}
	return defaultAliases
}

// NewConfig creates a new Config with the provided options
func NewConfig(opts ...Option) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Apply applies additional options to an existing Config
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}
