// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finro/content-engine/internal/agent"
	"github.com/finro/content-engine/internal/index"
	"github.com/finro/content-engine/internal/store"
)

var indexCmd = &cobra.Command{
	Use:   "index [agents...]",
	Short: "Rebuild category indexes from the persisted article records",
	Long: `Index rebuilds the category index documents from scratch by scanning
every persisted article record, without fetching anything. Sub-indexes per
subcategory and per city are rebuilt where the agent defines them.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().String("agents-dir", "", "directory with YAML agent definition overrides")

	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)
	agentsDir, _ := cmd.Flags().GetString("agents-dir")

	s, err := store.New(cfg.Store)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}

	names := args
	if len(names) == 0 {
		names = agent.Names(agentsDir)
	}
	for _, name := range names {
		def, err := agent.Lookup(name, agentsDir)
		if err != nil {
			return err
		}
		total, err := index.RebuildWithSubIndexes(s, def, os.Stdout)
		if err != nil {
			return fmt.Errorf("rebuilding %s: %w", def.Category, err)
		}
		fmt.Printf("index %s: %d articles\n", def.Category, total)
	}
	return nil
}
