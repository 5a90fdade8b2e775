package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/civixgo/civix/cmd/civix"
	"github.com/civixgo/civix/internal/version"
)

// Writes the top-level man page to stdout for packaging.
func main() {
	rootCmd := civix.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CIVIX",
		Section: "1",
		Source:  "civix " + version.Version,
		Manual:  "civix manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
