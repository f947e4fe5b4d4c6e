// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Basic loader example: decode a YAML document into Go values.

package main

import (
	"fmt"
	"log"

	yaml "go.yaml.in/pureyaml"
)

const data = `
server:
  host: localhost
  port: 8080
features:
  - metrics
  - tracing
`

func main() {
	v, err := yaml.Load([]byte(data))
	if err != nil {
		log.Fatal(err)
	}
	config := v.(map[string]any)
	server := config["server"].(map[string]any)
	fmt.Printf("host: %v\n", server["host"])
	fmt.Printf("port: %v\n", server["port"])
	fmt.Printf("features: %v\n", config["features"])
}
