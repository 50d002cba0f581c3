// Package main provides the contentgraph CLI.
package main

import "github.com/leapstack-labs/contentgraph/internal/cli"

func main() {
	cli.Execute()
}
