// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package meta derives the SEO fields of an article: meta title, meta
// description, keyword list, and reading-time estimate.
package meta

import (
	"strings"
	"unicode/utf8"

	"github.com/finro/content-engine/pkg/types"
)

const (
	// maxTitleLen caps the meta title before the site suffix is appended.
	maxTitleLen = 60

	// maxDescriptionLen caps the meta description.
	maxDescriptionLen = 155

	// wordsPerMinute is the reading-speed assumption for the estimate.
	wordsPerMinute = 200

	// minReadingTime floors the estimate so short teasers still read as
	// real articles.
	minReadingTime = 2

	// taxonomyKeywordCount is how many taxonomy keywords join the meta
	// keyword list.
	taxonomyKeywordCount = 4
)

// Enrich populates the derived SEO fields of article in place: MetaTitle,
// MetaDescription, MetaKeywords, and ReadingTime. The article counts as
// enriched only once all four are set; rendering requires all of them.
func Enrich(article *types.Article, baseKeywords []string, taxonomy types.Taxonomy, site types.SiteConfig) {
	article.MetaTitle = metaTitle(article.Title, site.TitleSuffix)
	article.MetaDescription = metaDescription(article.Summary, article.Title)
	article.MetaKeywords = keywordUnion(baseKeywords, taxonomy.Keywords(article.Subcategory))
	article.ReadingTime = readingTime(article.Summary, article.Content)
}

// metaTitle truncates titles over 60 characters to 57 plus an ellipsis
// marker, then appends the site suffix.
func metaTitle(title, suffix string) string {
	if len(title) > maxTitleLen {
		title = cut(title, maxTitleLen-3) + "..."
	}
	return title + suffix
}

// metaDescription prefers the summary and falls back to the title, capped
// at 155 characters with an ellipsis marker.
func metaDescription(summary, title string) string {
	desc := summary
	if desc == "" {
		desc = title
	}
	if len(desc) > maxDescriptionLen {
		desc = cut(desc, maxDescriptionLen-3) + "..."
	}
	return desc
}

// cut shortens s to at most n bytes without splitting a UTF-8 sequence.
func cut(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// keywordUnion merges the base keywords with the first four taxonomy
// keywords, dropping duplicates while preserving first-occurrence order.
func keywordUnion(base, taxonomyKeywords []string) []string {
	if len(taxonomyKeywords) > taxonomyKeywordCount {
		taxonomyKeywords = taxonomyKeywords[:taxonomyKeywordCount]
	}

	seen := make(map[string]struct{}, len(base)+len(taxonomyKeywords))
	var union []string
	for _, kw := range append(append([]string{}, base...), taxonomyKeywords...) {
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		union = append(union, kw)
	}
	return union
}

// readingTime estimates minutes at 200 words per minute over the summary
// and body, floored at 2.
func readingTime(summary, content string) int {
	words := len(strings.Fields(summary + " " + content))
	minutes := words / wordsPerMinute
	if minutes < minReadingTime {
		return minReadingTime
	}
	return minutes
}
