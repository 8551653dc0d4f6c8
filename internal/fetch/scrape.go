// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/finro/content-engine/internal/httputil"
	"github.com/finro/content-engine/pkg/types"
)

// maxScrapeNodes bounds how many matched nodes a scrape source considers.
const maxScrapeNodes = 10

// ScrapeSource derives candidate items from a listing page that offers no
// feed. Each node matched by the configured selector contributes one item:
// title and URL from its first anchor, summary from its first paragraph.
type ScrapeSource struct {
	src types.FeedSource
}

// Name returns the source identifier.
func (s *ScrapeSource) Name() string { return s.src.ID }

// Fetch retrieves the listing page and extracts candidate items from the
// first ten selector matches. Relative hrefs are resolved against the page
// URL. Scraped pages rarely expose per-item timestamps, so Published is the
// fetch time.
func (s *ScrapeSource) Fetch(ctx context.Context, client *http.Client, cfg types.HTTPConfig) ([]types.CandidateItem, error) {
	resp, err := httputil.Get(ctx, client, s.src.URL, cfg)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	base, err := url.Parse(s.src.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing source URL: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	var items []types.CandidateItem
	doc.Find(s.src.Selector).EachWithBreak(func(i int, node *goquery.Selection) bool {
		if i >= maxScrapeNodes {
			return false
		}

		link := node.Find("a").First()
		title := strings.TrimSpace(link.Text())
		href, _ := link.Attr("href")
		if title == "" || href == "" {
			return true
		}

		summary := cleanSummary(node.Find("p").First().Text())
		if !matchesFilter(title, summary, s.src.FilterKeywords) {
			return true
		}

		items = append(items, types.CandidateItem{
			Title:      title,
			URL:        resolveHref(base, href),
			Published:  now,
			Summary:    summary,
			SourceID:   s.src.ID,
			SourceName: s.src.Name,
		})
		return true
	})
	return items, nil
}

// resolveHref makes href absolute relative to the page it was found on.
func resolveHref(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
