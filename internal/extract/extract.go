// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls the main body text out of an article page. It is
// best-effort by contract: any fetch or parse failure yields an empty string
// and the article is still produced without extended body text.
package extract

import (
	"context"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/finro/content-engine/internal/httputil"
	"github.com/finro/content-engine/pkg/types"
)

const (
	// minParagraphLen filters out nav crumbs, captions, and share buttons
	// that render as short paragraph-like nodes.
	minParagraphLen = 30

	// minBodyLen is the confidence threshold: a selector match whose joined
	// text is shorter than this is treated as a stub and the next selector
	// is tried.
	minBodyLen = 100

	// fallbackParagraphs bounds the generic main/article/body sweep.
	fallbackParagraphs = 10
)

// contentSelectors are tried in priority order; the first match with enough
// text wins. They cover the WordPress and custom layouts of the configured
// Romanian sources.
var contentSelectors = []string{
	"article .entry-content",
	"article .post-content",
	".article-body",
	".article-content",
	".entry-content",
	".post-body",
	"article",
}

// BodyText fetches url and returns the extracted body text truncated to
// contentCap characters, or "" on any failure.
func BodyText(ctx context.Context, client *http.Client, url string, cfg types.HTTPConfig, contentCap int) string {
	resp, err := httputil.Get(ctx, client, url, cfg)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}
	return FromDocument(doc, contentCap)
}

// FromDocument runs the selector cascade over an already parsed page.
func FromDocument(doc *goquery.Document, contentCap int) string {
	for _, sel := range contentSelectors {
		container := doc.Find(sel).First()
		if container.Length() == 0 {
			continue
		}
		text := joinParagraphs(container.Find("p"), -1)
		if len(text) > minBodyLen {
			return truncate(text, contentCap)
		}
	}

	// Last resort: sweep the first paragraphs of main/article/body.
	for _, sel := range []string{"main", "article", "body"} {
		container := doc.Find(sel).First()
		if container.Length() == 0 {
			continue
		}
		if text := joinParagraphs(container.Find("p"), fallbackParagraphs); text != "" {
			return truncate(text, contentCap)
		}
	}
	return ""
}

// joinParagraphs collects trimmed paragraph texts longer than 30 characters
// and joins them with blank lines. A non-negative max bounds how many
// paragraphs are considered.
func joinParagraphs(paragraphs *goquery.Selection, max int) string {
	var parts []string
	paragraphs.EachWithBreak(func(i int, p *goquery.Selection) bool {
		if max >= 0 && i >= max {
			return false
		}
		text := strings.TrimSpace(p.Text())
		if len(text) > minParagraphLen {
			parts = append(parts, text)
		}
		return true
	})
	return strings.Join(parts, "\n\n")
}

// truncate caps text at limit bytes without splitting a UTF-8 sequence.
func truncate(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	for limit > 0 && text[limit]&0xC0 == 0x80 {
		limit--
	}
	return text[:limit]
}
