// Package main provides the CLI entrypoint for stagefix.
//
// stagefix is a one-shot codemod for stage components that:
//   - Finds the "empty collection" placeholder conditional around each stage table
//   - Keeps the table container unconditionally
//   - Moves the empty state into the table body as a single spanning row
//   - Writes back only the files that changed
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
