// Package main is the entry point for the wordwash CLI.
package main

import (
	"os"

	"github.com/jmylchreest/wordwash/cmd/wordwash/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
