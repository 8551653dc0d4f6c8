// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/finro/content-engine/internal/store"
	"github.com/finro/content-engine/pkg/types"
)

// staticPage describes one hand-maintained page of the site.
type staticPage struct {
	Path       string
	Priority   string
	ChangeFreq string
}

// staticPages are the site's fixed landing pages.
var staticPages = []staticPage{
	{Path: "/", Priority: "1.0", ChangeFreq: "daily"},
	{Path: "/finante", Priority: "0.9", ChangeFreq: "daily"},
	{Path: "/asigurari", Priority: "0.9", ChangeFreq: "daily"},
	{Path: "/tech", Priority: "0.9", ChangeFreq: "daily"},
	{Path: "/investitii", Priority: "0.9", ChangeFreq: "daily"},
}

// sitemap XML structures per the sitemaps.org schema.
type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// BuildSitemap scans the index documents in the data directory and writes
// sitemap.xml at the site root: static pages first, then every indexed
// article. Unparseable index files are reported and skipped.
func BuildSitemap(s *store.Store, site types.SiteConfig, w io.Writer) (int, error) {
	now := time.Now().UTC().Format("2006-01-02")

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range staticPages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        site.BaseURL + p.Path,
			LastMod:    now,
			ChangeFreq: p.ChangeFreq,
			Priority:   p.Priority,
		})
	}

	entries, err := os.ReadDir(s.DataDir())
	if err != nil {
		return 0, fmt.Errorf("reading data directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "index_") || !strings.HasSuffix(name, ".json") {
			continue
		}
		// Sub-indexes repeat the main index's articles.
		if strings.HasPrefix(name, "index_city_") || strings.Count(name, "_") > 1 {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.DataDir(), name))
		if err != nil {
			fmt.Fprintf(w, "warning: could not read %s: %v\n", name, err)
			continue
		}
		var idx types.CategoryIndex
		if err := json.Unmarshal(data, &idx); err != nil {
			fmt.Fprintf(w, "warning: could not parse %s: %v\n", name, err)
			continue
		}

		for _, a := range idx.Articles {
			lastMod := now
			if len(a.Published) >= 10 {
				lastMod = a.Published[:10]
			}
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        site.BaseURL + a.URL,
				LastMod:    lastMod,
				ChangeFreq: "monthly",
				Priority:   "0.7",
			})
		}
	}

	payload, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encoding sitemap: %w", err)
	}
	payload = append([]byte(xml.Header), payload...)

	dest := filepath.Join(s.SiteDir(), "sitemap.xml")
	if err := os.WriteFile(dest, payload, 0o644); err != nil {
		return 0, fmt.Errorf("writing sitemap: %w", err)
	}

	fmt.Fprintf(w, "sitemap generated: %d URLs\n", len(set.URLs))
	return len(set.URLs), nil
}
