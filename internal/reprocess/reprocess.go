// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package reprocess regenerates the lead summary of already-published
// article pages in place. It exists for summarizer upgrades: old pages keep
// their body and metadata but get a fresh extractive lead.
package reprocess

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/finro/content-engine/internal/store"
	"github.com/finro/content-engine/internal/summarize"
)

// minContentLen is the shortest body text worth re-summarizing.
const minContentLen = 100

// leadSentences is how many sentences the regenerated lead carries.
const leadSentences = 3

// Categories are the site sections whose article pages get reprocessed.
var Categories = []string{"finante", "asigurari", "tech", "investitii"}

// Run rewrites the lead summary of every article page under the site
// directory. It returns the number of pages updated. Pages without a
// recognizable content block, or with too little text, are left untouched.
func Run(s *store.Store, w io.Writer) (int, error) {
	count := 0
	for _, cat := range Categories {
		dir := filepath.Join(s.SiteDir(), "articles", cat)
		entries, err := os.ReadDir(dir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return count, fmt.Errorf("reading %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
				continue
			}
			path := filepath.Join(dir, e.Name())
			updated, err := rewriteLead(path)
			if err != nil {
				fmt.Fprintf(w, "warning: %s: %v\n", e.Name(), err)
				continue
			}
			if updated {
				count++
				fmt.Fprintf(w, "  ok %s\n", e.Name())
			}
		}
	}
	fmt.Fprintf(w, "reprocessed %d articles\n", count)
	return count, nil
}

// rewriteLead re-summarizes one page in place. It reports whether the file
// was rewritten.
func rewriteLead(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	doc, err := goquery.NewDocumentFromReader(f)
	f.Close()
	if err != nil {
		return false, fmt.Errorf("parsing page: %w", err)
	}

	content := doc.Find(".article-page__content").First()
	if content.Length() == 0 {
		return false, nil
	}
	text := strings.Join(strings.Fields(content.Text()), " ")
	if len(text) < minContentLen {
		return false, nil
	}

	lead := content.Find(".article-page__lead strong").First()
	if lead.Length() == 0 {
		return false, nil
	}
	lead.SetText(summarize.Text(text, leadSentences))

	html, err := doc.Html()
	if err != nil {
		return false, fmt.Errorf("serializing page: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return false, err
	}
	return true, nil
}
