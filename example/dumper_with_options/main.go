// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Dumper options example: the same value rendered with different
// indentation and document markers.

package main

import (
	"fmt"
	"log"

	yaml "go.yaml.in/pureyaml"
)

func main() {
	value := map[string]any{
		"name":  "demo",
		"items": []any{"one", "two"},
	}

	plain, err := yaml.Dump(value)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("default:")
	fmt.Print(string(plain))

	wide, err := yaml.Dump(value, yaml.WithIndent(4), yaml.WithExplicitStart())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("indent=4, explicit start:")
	fmt.Print(string(wide))
}
