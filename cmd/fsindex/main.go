// Package main provides the entry point for the fsindex CLI.
package main

import (
	"os"

	"github.com/Aman-CERP/fsindex/cmd/fsindex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
