// Package main is the entry point for the uncpath CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rjdinis/uncpath/internal/cli"
	"github.com/rjdinis/uncpath/internal/types"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCommand(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		// If it's a PathError with help text, print that too
		var pathErr *types.PathError
		if errors.As(err, &pathErr) && pathErr.Help != "" {
			fmt.Fprintf(os.Stderr, "\n%s\n", pathErr.Help)
		}

		os.Exit(1)
	}
}
