// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch retrieves candidate items from configured upstream sources.
// Each source type (RSS feed, page scrape) implements the Source interface
// per the Strategy pattern; a failing source yields an empty slice and never
// aborts the run.
package fetch

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/finro/content-engine/pkg/types"
)

// defaultMaxEntries bounds per-source work when the source does not set its
// own limit.
const defaultMaxEntries = 10

// maxSummaryLen caps candidate summaries.
const maxSummaryLen = 500

// Source produces candidate items from one configured upstream. The returned
// slice is a single finite pass; sources are not restartable mid-fetch.
type Source interface {
	Name() string
	Fetch(ctx context.Context, client *http.Client, cfg types.HTTPConfig) ([]types.CandidateItem, error)
}

// New returns the Source implementation for src based on its declared type.
func New(src types.FeedSource) (Source, error) {
	switch src.Type {
	case types.SourceRSS:
		return &RSSSource{src: src}, nil
	case types.SourceScrape:
		return &ScrapeSource{src: src}, nil
	default:
		return nil, fmt.Errorf("unknown source type %q for source %s", src.Type, src.ID)
	}
}

// All fetches every source in declared order, sequentially, and concatenates
// the results. A source that fails is reported to w as a warning and
// contributes nothing; partial-source failure is tolerated, not retried.
func All(ctx context.Context, sources []types.FeedSource, client *http.Client, cfg types.HTTPConfig, w io.Writer) []types.CandidateItem {
	var items []types.CandidateItem
	for _, src := range sources {
		s, err := New(src)
		if err != nil {
			fmt.Fprintf(w, "warning: %v\n", err)
			continue
		}
		fetched, err := s.Fetch(ctx, client, cfg)
		if err != nil {
			fmt.Fprintf(w, "warning: source %s failed: %v\n", s.Name(), err)
			continue
		}
		fmt.Fprintf(w, "fetched %d entries from %s\n", len(fetched), src.Name)
		items = append(items, fetched...)
	}
	return items
}

// matchesFilter reports whether title+summary contains at least one of the
// filter keywords, case-insensitively. An empty filter matches everything.
func matchesFilter(title, summary string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	combined := strings.ToLower(title + " " + summary)
	for _, kw := range keywords {
		if strings.Contains(combined, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// cleanSummary strips markup from feed summaries, collapses whitespace, and
// caps the result at 500 characters.
func cleanSummary(s string) string {
	s = tagPattern.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > maxSummaryLen {
		cut := maxSummaryLen
		for cut > 0 && s[cut]&0xC0 == 0x80 {
			cut--
		}
		s = s[:cut]
	}
	return s
}

// publishedLayouts are the timestamp formats seen across the configured
// feeds, tried in order.
var publishedLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// normalizePublished converts a feed timestamp to RFC3339 UTC so that
// lexical ordering of stored records is chronological. An empty input
// becomes the current time; an unparseable one is kept verbatim.
func normalizePublished(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now().UTC().Format(time.RFC3339)
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return raw
}
