// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "FinRo-Bot/1.0 (+https://finro.ro/bot)").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SiteConfig holds site-wide settings shared by rendering and indexing.
type SiteConfig struct {
	// BaseURL is the public site origin without trailing slash
	// (e.g. "https://finro.ro").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// TitleSuffix is appended to every meta title (e.g. " | FinRo.ro").
	TitleSuffix string `json:"title_suffix" yaml:"title_suffix"`

	// Publisher is the organization name used in structured data.
	Publisher string `json:"publisher" yaml:"publisher"`

	// DefaultAuthor is the byline for generated articles.
	DefaultAuthor string `json:"default_author" yaml:"default_author"`
}

// StoreConfig holds the on-disk layout of the generated site.
type StoreConfig struct {
	// SiteDir is the website root; article pages go under
	// SiteDir/articles/{category}/.
	SiteDir string `json:"site_dir" yaml:"site_dir"`

	// DataDir holds JSON state: seen-sets, per-article records, indexes.
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// PipelineConfig holds settings for one agent run.
type PipelineConfig struct {
	HTTPConfig `yaml:",inline"`

	Site  SiteConfig  `json:"site" yaml:"site"`
	Store StoreConfig `json:"store" yaml:"store"`

	// MaxArticles caps newly accepted articles for the run. Zero means the
	// agent's own default.
	MaxArticles int `json:"max_articles" yaml:"max_articles"`

	// DryRun processes and reports candidate articles without writing any
	// file.
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}
