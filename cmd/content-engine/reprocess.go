// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finro/content-engine/internal/reprocess"
	"github.com/finro/content-engine/internal/store"
)

var reprocessCmd = &cobra.Command{
	Use:   "reprocess",
	Short: "Regenerate the lead summary of every published article page",
	Long: `Reprocess walks the published article pages and rewrites each page's
lead paragraph with a freshly generated extractive summary of the body.
Intended for summarizer upgrades; metadata and body text are untouched.`,
	RunE: runReprocess,
}

func init() {
	rootCmd.AddCommand(reprocessCmd)
}

func runReprocess(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)
	s, err := store.New(cfg.Store)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	_, err = reprocess.Run(s, os.Stdout)
	return err
}
