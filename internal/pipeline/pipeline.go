// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one agent end to end: fetch candidates from every
// configured source, drop already-seen URLs, classify and enrich the rest,
// and persist HTML pages, JSON records, and the rebuilt category indexes.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/finro/content-engine/internal/agent"
	"github.com/finro/content-engine/internal/classify"
	"github.com/finro/content-engine/internal/dedup"
	"github.com/finro/content-engine/internal/extract"
	"github.com/finro/content-engine/internal/fetch"
	"github.com/finro/content-engine/internal/httputil"
	"github.com/finro/content-engine/internal/index"
	"github.com/finro/content-engine/internal/meta"
	"github.com/finro/content-engine/internal/render"
	"github.com/finro/content-engine/internal/store"
	"github.com/finro/content-engine/internal/summarize"
	"github.com/finro/content-engine/pkg/types"
)

// Result reports what one agent run did.
type Result struct {
	Agent string

	// Fetched is the number of candidate items returned by all sources.
	Fetched int

	// Duplicates is the number of candidates dropped by the seen-set.
	Duplicates int

	// Accepted is the number of new articles produced this run.
	Accepted int

	// Indexed is the total article count in the rebuilt category index.
	// Zero on dry runs.
	Indexed int
}

// Run executes the full pipeline for the named agent. Progress and source
// warnings go to w. On dry runs accepted candidates are reported but nothing
// is written, fetched pages are not scraped, and the seen-set stays as is.
func Run(ctx context.Context, agentName string, cfg types.PipelineConfig, w io.Writer) (Result, error) {
	def, err := agent.Lookup(agentName, "")
	if err != nil {
		return Result{}, err
	}
	return RunAgent(ctx, def, cfg, w)
}

// RunAgent is Run with an already-resolved agent definition.
func RunAgent(ctx context.Context, def types.AgentDefinition, cfg types.PipelineConfig, w io.Writer) (Result, error) {
	res := Result{Agent: def.Name}

	fmt.Fprintf(w, "agent %s: fetching %d sources\n", def.Name, len(def.Sources))
	client := httputil.NewClient(cfg.HTTPConfig)
	items := fetch.All(ctx, def.Sources, client, cfg.HTTPConfig, w)
	res.Fetched = len(items)
	fmt.Fprintf(w, "agent %s: %d candidates fetched\n", def.Name, res.Fetched)

	limit := cfg.MaxArticles
	if limit <= 0 {
		limit = def.MaxArticles
	}

	seen := dedup.Load(cfg.Store.DataDir, def.Category)
	var accepted []*types.Article
	for i := range items {
		item := &items[i]
		if item.Title == "" || item.URL == "" {
			continue
		}
		hash := dedup.Fingerprint(item.URL)
		if seen.Contains(hash) {
			res.Duplicates++
			continue
		}

		article := build(ctx, item, def, cfg, client)
		seen.Add(hash)
		accepted = append(accepted, article)
		if len(accepted) >= limit {
			break
		}
	}
	res.Accepted = len(accepted)
	fmt.Fprintf(w, "agent %s: %d new articles (%d duplicates skipped)\n", def.Name, res.Accepted, res.Duplicates)

	if cfg.DryRun {
		for _, a := range accepted {
			fmt.Fprintf(w, "  [dry] %-14s %s\n", a.Subcategory, a.Title)
		}
		return res, nil
	}

	s, err := store.New(cfg.Store)
	if err != nil {
		return res, fmt.Errorf("opening store: %w", err)
	}
	for _, a := range accepted {
		html, rec, err := render.Render(a, cfg.Site)
		if err != nil {
			return res, fmt.Errorf("rendering %s: %w", a.Slug, err)
		}
		if err := s.WriteDocument(a.Category, a.Slug, html); err != nil {
			return res, fmt.Errorf("writing page %s: %w", a.Slug, err)
		}
		if err := s.WriteRecord(rec); err != nil {
			return res, fmt.Errorf("writing record %s: %w", a.HashID, err)
		}
		fmt.Fprintf(w, "  saved %s [%s]\n", a.Slug, a.Subcategory)
	}
	if err := dedup.Save(cfg.Store.DataDir, def.Category, seen); err != nil {
		return res, fmt.Errorf("saving seen-set: %w", err)
	}

	total, err := index.RebuildWithSubIndexes(s, def, w)
	if err != nil {
		return res, fmt.Errorf("rebuilding index: %w", err)
	}
	res.Indexed = total
	return res, nil
}

// build promotes one candidate into an enriched article. Body extraction is
// skipped on dry runs to keep them network-light beyond the feed fetch.
func build(ctx context.Context, item *types.CandidateItem, def types.AgentDefinition, cfg types.PipelineConfig, client *http.Client) *types.Article {
	article := &types.Article{
		Title:       item.Title,
		Slug:        meta.Slug(item.Title),
		URL:         item.URL,
		SourceID:    item.SourceID,
		SourceName:  item.SourceName,
		Published:   item.Published,
		Summary:     item.Summary,
		Category:    def.Category,
		Subcategory: classify.Classify(item.Title+" "+item.Summary, def.Taxonomy),
		Author:      cfg.Site.DefaultAuthor,
		HashID:      dedup.Fingerprint(item.URL),
	}

	if !cfg.DryRun {
		article.Content = extract.BodyText(ctx, client, item.URL, cfg.HTTPConfig, def.ContentCap)
	}
	if article.Content != "" {
		article.Summary = summarize.ForArticle(article.Content, item.SourceName)
	}

	enrichText := article.Title + " " + article.Summary + " " + article.Content
	if def.DetectCities {
		article.CityTags = classify.DetectCities(enrichText)
	}
	if def.ExtractRating {
		article.Rating = classify.ExtractRating(enrichText)
	}

	meta.Enrich(article, def.BaseKeywords, def.Taxonomy, cfg.Site)
	return article
}
