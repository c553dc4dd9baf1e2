// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "Inkwell - page document rendering and style resolution engine",
	Long: `Inkwell takes versioned, possibly-legacy page documents, normalizes them
to the canonical tree format, derives a brand color palette, and renders them
to a live render tree or standalone HTML.

Legacy document formats are auto-detected and upgraded; malformed input
degrades to an empty page instead of failing.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
