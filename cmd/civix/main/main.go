package main

import (
	"fmt"
	"os"

	"github.com/civixgo/civix/cmd/civix"
	"github.com/civixgo/civix/pkg/errors"
	"github.com/civixgo/civix/pkg/ui/styles"
)

func main() {
	rootCmd := civix.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !civix.IsReported(err) {
			fmt.Fprintln(os.Stderr, styles.Default().Render("Error", "Error: "+errors.Message(err)))
		}
		os.Exit(1)
	}
}
