// Package main provides the casefile CLI entry point.
// Implements: prd007-casefile-cli R1.
package main

import "github.com/mesh-intelligence/casefile/internal/cli"

func main() {
	cli.Execute()
}
