// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finro/content-engine/internal/index"
	"github.com/finro/content-engine/internal/store"
)

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Rebuild sitemap.xml from the category indexes",
	Long: `Sitemap writes sitemap.xml at the website root, listing the static
section pages plus every article found in the main category indexes.`,
	RunE: runSitemap,
}

func init() {
	rootCmd.AddCommand(sitemapCmd)
}

func runSitemap(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)
	s, err := store.New(cfg.Store)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	count, err := index.BuildSitemap(s, cfg.Site, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("sitemap: %d URLs\n", count)
	return nil
}
