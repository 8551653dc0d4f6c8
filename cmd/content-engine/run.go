// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finro/content-engine/internal/agent"
	"github.com/finro/content-engine/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run [agents...]",
	Short: "Run content agents: fetch, classify, and publish new articles",
	Long: `Run executes the full pipeline for the named agents, or for every
available agent when none are named. Each agent fetches its sources, skips
already-seen URLs, classifies and enriches the new items, and publishes
article pages, JSON records, and the rebuilt category indexes.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().Bool("dry-run", false, "preview new articles without writing anything")
	runCmd.Flags().Int("max-articles", 0, "cap newly accepted articles per agent (default: agent setting)")
	runCmd.Flags().String("agents-dir", "", "directory with YAML agent definition overrides")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)
	cfg.DryRun, _ = cmd.Flags().GetBool("dry-run")
	cfg.MaxArticles, _ = cmd.Flags().GetInt("max-articles")
	agentsDir, _ := cmd.Flags().GetString("agents-dir")

	names := args
	if len(names) == 0 {
		names = agent.Names(agentsDir)
	}

	failed := 0
	for _, name := range names {
		def, err := agent.Lookup(name, agentsDir)
		if err != nil {
			return err
		}
		res, err := pipeline.RunAgent(cmd.Context(), def, cfg, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "agent %s failed: %v\n", name, err)
			failed++
			continue
		}
		fmt.Printf("agent %s: %d fetched, %d new, %d duplicates\n",
			res.Agent, res.Fetched, res.Accepted, res.Duplicates)
	}
	if failed > 0 {
		return fmt.Errorf("%d agent(s) failed", failed)
	}
	return nil
}
