// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The pureyaml command inspects and transforms YAML streams: "events"
// prints the parser's event stream, "load" converts YAML to JSON, and
// "dump" round-trips a stream through the tree and back to YAML.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	yaml "go.yaml.in/pureyaml"
	"go.yaml.in/pureyaml/option"
)

// version is the current version of the pureyaml CLI tool.
const version = "0.1.0"

var (
	flagIndent    int
	flagWidth     int
	flagComments  bool
	flagNoAliases bool
	flagFilename  string
)

func main() {
	root := &cobra.Command{
		Use:           "pureyaml",
		Short:         "Inspect and transform YAML streams",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().IntVar(&flagIndent, "indent", 2, "spaces per nesting level")
	root.PersistentFlags().IntVar(&flagWidth, "width", 79, "line width for flow collections")
	root.PersistentFlags().BoolVar(&flagComments, "comments", false, "collect comments")
	root.PersistentFlags().BoolVar(&flagNoAliases, "no-aliases", false, "reject anchors and aliases")
	root.PersistentFlags().StringVar(&flagFilename, "filename", "stdin", "name reported in errors")

	root.AddCommand(eventsCommand(), loadCommand(), dumpCommand())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// config gathers the persistent flags into a layered option carrier.
func config() *option.Config {
	return option.NewConfig(
		option.WithIndent(flagIndent),
		option.WithLineWidth(flagWidth),
		option.WithComments(flagComments),
		option.WithAliases(!flagNoAliases),
	)
}

// apiOptions converts the carrier into the library's functional options.
func apiOptions(cfg *option.Config) []yaml.Option {
	opts := []yaml.Option{
		yaml.WithFilename(flagFilename),
		yaml.WithIndent(cfg.GetIndent()),
		yaml.WithLineWidth(cfg.GetLineWidth()),
		yaml.WithAliases(cfg.GetAliases()),
	}
	if cfg.GetComments() {
		opts = append(opts, yaml.WithComments())
	}
	return opts
}

func readInput(args []string) ([]byte, error) {
	if len(args) > 0 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

// eventPrinter writes one line per event with its location.
type eventPrinter struct {
	yaml.NopHandler
	w io.Writer
}

func (p *eventPrinter) line(e *yaml.Event, format string, args ...any) {
	startLine, startCol := e.Location.StartPosition()
	endLine, endCol := e.Location.EndPosition()
	fmt.Fprintf(p.w, "%d:%d-%d:%d %s", startLine+1, startCol+1, endLine+1, endCol+1,
		fmt.Sprintf(format, args...))
	fmt.Fprintln(p.w)
}

func (p *eventPrinter) StreamStart(e *yaml.Event)   { p.line(e, "+STR") }
func (p *eventPrinter) StreamEnd(e *yaml.Event)     { p.line(e, "-STR") }
func (p *eventPrinter) DocumentStart(e *yaml.Event) { p.line(e, "+DOC implicit=%v", e.Implicit) }
func (p *eventPrinter) DocumentEnd(e *yaml.Event)   { p.line(e, "-DOC implicit=%v", e.Implicit) }
func (p *eventPrinter) SequenceStart(e *yaml.Event) {
	p.line(e, "+SEQ %s%s", e.CollectionStyle, props(e))
}
func (p *eventPrinter) SequenceEnd(e *yaml.Event) { p.line(e, "-SEQ") }
func (p *eventPrinter) MappingStart(e *yaml.Event) {
	p.line(e, "+MAP %s%s", e.CollectionStyle, props(e))
}
func (p *eventPrinter) MappingEnd(e *yaml.Event) { p.line(e, "-MAP") }
func (p *eventPrinter) Scalar(e *yaml.Event) {
	p.line(e, "=VAL %s%s %q", e.Style, props(e), e.Value)
}
func (p *eventPrinter) Alias(e *yaml.Event)   { p.line(e, "=ALI *%s", e.Value) }
func (p *eventPrinter) Comment(e *yaml.Event) { p.line(e, "=REM inline=%v %q", e.Inline, e.Value) }

func props(e *yaml.Event) string {
	s := ""
	if e.Anchor != "" {
		s += " &" + e.Anchor
	}
	if e.Tag != "" {
		s += " <" + e.Tag + ">"
	}
	return s
}

func eventsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "events [file]",
		Short: "Print the parser's event stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(args)
			if err != nil {
				return err
			}
			return yaml.ScanEvents(in, &eventPrinter{w: cmd.OutOrStdout()}, apiOptions(config())...)
		},
	}
}

func loadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load [file]",
		Short: "Load a YAML stream and print each document as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(args)
			if err != nil {
				return err
			}
			docs, err := yaml.LoadStream(in, apiOptions(config())...)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, doc := range docs {
				if err := enc.Encode(doc); err != nil {
					return fmt.Errorf("document is not representable as JSON: %w", err)
				}
			}
			return nil
		},
	}
}

func dumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [file]",
		Short: "Round-trip a YAML stream through the tree and back",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(args)
			if err != nil {
				return err
			}
			cfg := config()
			docs, err := yaml.ParseStream(in, apiOptions(cfg)...)
			if err != nil {
				return err
			}
			values := make([]any, len(docs))
			for i, doc := range docs {
				values[i] = doc
			}
			out, err := yaml.DumpStream(values, apiOptions(cfg)...)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
