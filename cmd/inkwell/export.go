// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwellhq/inkwell/internal/config"
	"github.com/inkwellhq/inkwell/internal/htmlexport"
	"github.com/inkwellhq/inkwell/internal/logger"
	"github.com/inkwellhq/inkwell/internal/migrate"
	"github.com/inkwellhq/inkwell/internal/registry"
	"github.com/inkwellhq/inkwell/internal/themes"
)

var (
	exportOut      string
	exportMinify   bool
	exportFragment bool
	exportDebug    bool
)

var exportCmd = &cobra.Command{
	Use:   "export <document file>",
	Short: "Export a page document as standalone HTML",
	Long: `Export reads a raw page document in any supported format (canonical,
flat-list, or keyed-graph), normalizes it, resolves the brand palette from
configuration, and writes self-contained HTML.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		log, err := logger.New(config.GetString("log.level"), config.GetBool("log.human"), os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading document: %v\n", err)
			os.Exit(1)
		}

		res := migrate.Normalize(string(raw))
		for _, d := range res.Diags.All() {
			log.Warn().Str("code", d.Code).Str("node", d.NodeID).Msg(d.Message)
		}

		palette := themes.ResolvePalette(config.Brand())

		reg := registry.New()
		html, diags := htmlexport.Serialize(res.Doc, reg, palette, htmlexport.Options{
			Minify:   exportMinify || config.GetBool("export.minify"),
			Fragment: exportFragment,
			Debug:    exportDebug || config.GetBool("render.debug"),
			Logger:   log,
		})
		for _, d := range diags.All() {
			log.Warn().Str("code", d.Code).Str("node", d.NodeID).Msg(d.Message)
		}

		if exportOut == "" || exportOut == "-" {
			fmt.Print(html)
			return
		}
		if err := os.WriteFile(exportOut, []byte(html), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		log.Info().Str("out", exportOut).Int("bytes", len(html)).Msg("export complete")
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().BoolVar(&exportMinify, "minify", false, "minify the HTML output")
	exportCmd.Flags().BoolVar(&exportFragment, "fragment", false, "emit only the node markup, no document shell")
	exportCmd.Flags().BoolVar(&exportDebug, "debug", false, "emit visible placeholders for unknown component types")
	rootCmd.AddCommand(exportCmd)
}
