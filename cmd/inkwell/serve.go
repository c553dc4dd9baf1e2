// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/inkwellhq/inkwell/internal/config"
	"github.com/inkwellhq/inkwell/internal/htmlexport"
	"github.com/inkwellhq/inkwell/internal/logger"
	"github.com/inkwellhq/inkwell/internal/middleware"
	"github.com/inkwellhq/inkwell/internal/migrate"
	"github.com/inkwellhq/inkwell/internal/registry"
	"github.com/inkwellhq/inkwell/internal/render"
	"github.com/inkwellhq/inkwell/internal/store"
	"github.com/inkwellhq/inkwell/internal/themes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the page preview server",
	Long:  "Serve renders stored page documents over HTTP for previewing.",
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

		st, err := store.Open(config.GetString("database.type"), config.GetString("database.path"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		reg := registry.New()
		reg.EnsureBuiltins()

		if !config.GetBool("server.debug") {
			gin.SetMode(gin.ReleaseMode)
		}
		r := gin.New()
		r.Use(gin.Recovery())
		r.Use(middleware.RequestLog(log))
		r.Use(middleware.SecurityHeaders())

		r.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "inkwell"})
		})

		r.GET("/theme.css", func(c *gin.Context) {
			palette := themes.ResolvePalette(config.Brand())
			c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(themes.ThemeCSS(palette)))
		})

		r.GET("/pages/:id", func(c *gin.Context) {
			raw, err := st.Get(c.Param("id"))
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					c.String(http.StatusNotFound, "page not found")
					return
				}
				c.String(http.StatusInternalServerError, "failed to load page")
				return
			}

			res := migrate.Normalize(raw)
			palette := themes.ResolvePalette(config.Brand())
			html, diags := htmlexport.Serialize(res.Doc, reg, palette, htmlexport.Options{
				Debug:  config.GetBool("render.debug"),
				Logger: log,
			})
			for _, d := range diags.All() {
				log.Warn().Str("page", c.Param("id")).Str("code", d.Code).Msg(d.Message)
			}
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
		})

		r.GET("/pages/:id/tree", func(c *gin.Context) {
			raw, err := st.Get(c.Param("id"))
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load page"})
				return
			}

			res := migrate.Normalize(raw)
			palette := themes.ResolvePalette(config.Brand())
			tree, err := render.Render(c.Request.Context(), res.Doc, reg, palette, nil, render.Options{
				Debug:         config.GetBool("render.debug"),
				ModuleTimeout: config.GetDuration("render.module_timeout"),
				Logger:        log,
			})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"root":        tree.Root,
				"zones":       tree.Zones,
				"diagnostics": tree.Diags.All(),
			})
		})

		r.PUT("/pages/:id", func(c *gin.Context) {
			raw, err := io.ReadAll(c.Request.Body)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
				return
			}
			if err := st.Put(c.Param("id"), string(raw)); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store page"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "stored"})
		})

		addr := fmt.Sprintf(":%d", config.GetInt("server.port"))
		log.Info().Str("addr", addr).Msg("preview server starting")
		if err := r.Run(addr); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
