// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Multi-document loader example: decode every document in a stream.

package main

import (
	"fmt"
	"log"

	yaml "go.yaml.in/pureyaml"
)

const data = `name: first
---
name: second
---
name: third
`

func main() {
	docs, err := yaml.LoadStream([]byte(data))
	if err != nil {
		log.Fatal(err)
	}
	for i, doc := range docs {
		fmt.Printf("document %d: %v\n", i, doc)
	}
}
