// This is the main entry point for the xyzdb CLI.
// Build with: go build -o bin/xyzdb ./cmd/xyzdb
// Usage: xyzdb <command> [options]
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
