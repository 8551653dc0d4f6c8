// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the content-engine CLI. Each pipeline
// surface is a subcommand: run executes content agents end to end, index and
// sitemap rebuild derived documents, reprocess refreshes published leads.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/finro/content-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "content-engine",
	Short: "Content pipeline for the FinRo.ro network",
	Long: `content-engine fetches Romanian finance, insurance, tech, and investment
news from configured RSS feeds and listing pages, filters out already-seen
URLs, classifies each item into a subcategory, and publishes static article
pages with JSON records and category indexes.

Each agent is one content vertical. Agents run independently; a failed
source never fails the run.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./content-engine.yaml or ~/.config/content-engine/config.yaml)")
	rootCmd.PersistentFlags().String("site-dir", "", "website root directory (default ./site)")
	rootCmd.PersistentFlags().String("data-dir", "", "JSON state directory (default ./data)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("content-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "content-engine"))
		}
	}

	viper.SetDefault("site_dir", "site")
	viper.SetDefault("data_dir", "data")
	viper.SetDefault("base_url", "https://finro.ro")
	viper.SetDefault("title_suffix", " | FinRo.ro")
	viper.SetDefault("publisher", "FinRo.ro")
	viper.SetDefault("author", "Redacția FinRo")
	viper.SetDefault("user_agent", "FinRo-Bot/1.0 (+https://finro.ro/bot)")
	viper.SetDefault("timeout", 15*time.Second)

	viper.SetEnvPrefix("CONTENT_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the run configuration from viper and the shared
// directory flags.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	cfg := types.PipelineConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: viper.GetString("user_agent"),
		},
		Site: types.SiteConfig{
			BaseURL:       viper.GetString("base_url"),
			TitleSuffix:   viper.GetString("title_suffix"),
			Publisher:     viper.GetString("publisher"),
			DefaultAuthor: viper.GetString("author"),
		},
		Store: types.StoreConfig{
			SiteDir: viper.GetString("site_dir"),
			DataDir: viper.GetString("data_dir"),
		},
	}
	if dir, _ := cmd.Flags().GetString("site-dir"); dir != "" {
		cfg.Store.SiteDir = dir
	}
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.Store.DataDir = dir
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
