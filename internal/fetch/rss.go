// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/finro/content-engine/internal/httputil"
	"github.com/finro/content-engine/pkg/types"
)

// RSSSource fetches a syndication feed. Both RSS 2.0 and Atom documents are
// understood; the configured feeds publish one or the other.
type RSSSource struct {
	src types.FeedSource
}

// Name returns the source identifier.
func (s *RSSSource) Name() string { return s.src.ID }

// Fetch retrieves the feed, parses it, applies the source's keyword filter,
// and returns at most MaxEntries candidate items.
func (s *RSSSource) Fetch(ctx context.Context, client *http.Client, cfg types.HTTPConfig) ([]types.CandidateItem, error) {
	resp, err := httputil.Get(ctx, client, s.src.URL, cfg)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading feed: %w", err)
	}

	entries, err := parseFeed(body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	// The entry cap applies before filtering: only the first N feed entries
	// are considered at all.
	limit := s.src.MaxEntries
	if limit <= 0 {
		limit = defaultMaxEntries
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	var items []types.CandidateItem
	for _, e := range entries {
		title := strings.TrimSpace(e.title)
		if title == "" || e.link == "" {
			continue
		}
		summary := cleanSummary(e.summary)
		if !matchesFilter(title, summary, s.src.FilterKeywords) {
			continue
		}
		items = append(items, types.CandidateItem{
			Title:      title,
			URL:        e.link,
			Published:  normalizePublished(e.published),
			Summary:    summary,
			SourceID:   s.src.ID,
			SourceName: s.src.Name,
		})
	}
	return items, nil
}

// feedEntry is the dialect-neutral view of one feed item.
type feedEntry struct {
	title     string
	link      string
	summary   string
	published string
}

// RSS 2.0 document structure.
type rssDoc struct {
	Items []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

// Atom document structure.
type atomDoc struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title     string     `xml:"title"`
	Links     []atomLink `xml:"link"`
	Summary   string     `xml:"summary"`
	Content   string     `xml:"content"`
	Published string     `xml:"published"`
	Updated   string     `xml:"updated"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
}

// parseFeed decodes body as RSS 2.0 first and falls back to Atom. It fails
// only when neither dialect yields entries from a document that parsed as
// neither.
func parseFeed(body []byte) ([]feedEntry, error) {
	var rss rssDoc
	rssErr := xml.Unmarshal(body, &rss)
	if rssErr == nil && len(rss.Items) > 0 {
		entries := make([]feedEntry, 0, len(rss.Items))
		for _, it := range rss.Items {
			entries = append(entries, feedEntry{
				title:     it.Title,
				link:      strings.TrimSpace(it.Link),
				summary:   it.Description,
				published: it.PubDate,
			})
		}
		return entries, nil
	}

	var atom atomDoc
	atomErr := xml.Unmarshal(body, &atom)
	if atomErr == nil && len(atom.Entries) > 0 {
		entries := make([]feedEntry, 0, len(atom.Entries))
		for _, e := range atom.Entries {
			published := e.Published
			if published == "" {
				published = e.Updated
			}
			summary := e.Summary
			if summary == "" {
				summary = e.Content
			}
			entries = append(entries, feedEntry{
				title:     e.Title,
				link:      atomHref(e.Links),
				summary:   summary,
				published: published,
			})
		}
		return entries, nil
	}

	if rssErr != nil {
		return nil, rssErr
	}
	return nil, fmt.Errorf("document contains no feed entries")
}

// atomHref picks the alternate link, or the first link when no rel is set.
func atomHref(links []atomLink) string {
	for _, l := range links {
		if l.Rel == "alternate" || l.Rel == "" {
			return strings.TrimSpace(l.Href)
		}
	}
	if len(links) > 0 {
		return strings.TrimSpace(links[0].Href)
	}
	return ""
}
