// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Comment round-trip example: parse with comments, edit the tree, and dump
// the result with the original comments preserved.

package main

import (
	"fmt"
	"log"

	yaml "go.yaml.in/pureyaml"
)

const data = `- alpha # first
- gamma # third
`

func main() {
	doc, err := yaml.Parse([]byte(data), yaml.WithComments())
	if err != nil {
		log.Fatal(err)
	}

	seq := doc.Root()
	beta := &yaml.Node{Kind: yaml.ScalarNode, Value: "beta", Style: yaml.PlainStyle}
	seq.Children = append(seq.Children[:1], append([]*yaml.Node{beta}, seq.Children[1:]...)...)

	out, err := yaml.Dump(doc)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(out))
}
