// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index rebuilds the per-category listing documents from the
// persisted article records. Every rebuild is a full scan, not an
// incremental merge; at the volumes this site handles a scan is cheap and
// self-healing.
package index

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/finro/content-engine/internal/store"
	"github.com/finro/content-engine/pkg/types"
)

const (
	// maxIndexEntries caps the main category index.
	maxIndexEntries = 50

	// maxSubIndexEntries caps per-subcategory sub-indexes.
	maxSubIndexEntries = 30

	// maxCityIndexEntries caps per-city sub-indexes.
	maxCityIndexEntries = 20
)

// Rebuild scans all persisted records, filters to category, sorts them by
// published timestamp descending, and writes the capped index document.
// It returns the true total of matching records, not the capped length.
func Rebuild(s *store.Store, category string, w io.Writer) (int, error) {
	records, err := s.ScanRecords()
	if err != nil {
		return 0, err
	}

	matching := filter(records, func(r types.ArticleRecord) bool {
		return r.Category == category
	})
	sortByPublished(matching)

	idx := types.CategoryIndex{
		Category: category,
		Total:    len(matching),
		Updated:  time.Now().UTC().Format(time.RFC3339),
		Articles: capped(matching, maxIndexEntries),
	}
	if err := s.WriteIndex("index_"+category+".json", idx); err != nil {
		return 0, err
	}

	fmt.Fprintf(w, "index updated: %d %s articles\n", idx.Total, category)
	return idx.Total, nil
}

// RebuildWithSubIndexes rebuilds the main category index plus one sub-index
// per taxonomy label and, when the agent tags cities, one per city key.
// The investitii agent is the only consumer of the extra documents.
func RebuildWithSubIndexes(s *store.Store, def types.AgentDefinition, w io.Writer) (int, error) {
	records, err := s.ScanRecords()
	if err != nil {
		return 0, err
	}

	matching := filter(records, func(r types.ArticleRecord) bool {
		return r.Category == def.Category
	})
	sortByPublished(matching)

	now := time.Now().UTC().Format(time.RFC3339)

	for _, entry := range def.Taxonomy {
		sub := filter(matching, func(r types.ArticleRecord) bool {
			return r.Subcategory == entry.Label
		})
		idx := types.CategoryIndex{
			Category:    def.Category,
			Subcategory: entry.Label,
			Total:       len(sub),
			Updated:     now,
			Articles:    capped(sub, maxSubIndexEntries),
		}
		name := fmt.Sprintf("index_%s_%s.json", def.Category, entry.Label)
		if err := s.WriteIndex(name, idx); err != nil {
			return 0, err
		}
	}

	if def.DetectCities {
		for _, key := range cityKeys(matching) {
			city := filter(matching, func(r types.ArticleRecord) bool {
				return contains(r.CityTags, key)
			})
			idx := types.CategoryIndex{
				Category: def.Category,
				City:     key,
				Total:    len(city),
				Updated:  now,
				Articles: capped(city, maxCityIndexEntries),
			}
			if err := s.WriteIndex("index_city_"+key+".json", idx); err != nil {
				return 0, err
			}
		}
	}

	idx := types.CategoryIndex{
		Category: def.Category,
		Total:    len(matching),
		Updated:  now,
		Articles: capped(matching, maxIndexEntries),
	}
	if err := s.WriteIndex("index_"+def.Category+".json", idx); err != nil {
		return 0, err
	}

	fmt.Fprintf(w, "index updated: %d %s articles\n", idx.Total, def.Category)
	return idx.Total, nil
}

// sortByPublished orders records newest first. Published timestamps are
// RFC3339 for everything this pipeline writes, so lexical comparison is
// chronological; foreign timestamps degrade to plain lexical order.
func sortByPublished(records []types.ArticleRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Published > records[j].Published
	})
}

func filter(records []types.ArticleRecord, keep func(types.ArticleRecord) bool) []types.ArticleRecord {
	var out []types.ArticleRecord
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func capped(records []types.ArticleRecord, max int) []types.ArticleRecord {
	if len(records) > max {
		return records[:max]
	}
	return records
}

// cityKeys collects the distinct city tags present in records, sorted for
// deterministic output.
func cityKeys(records []types.ArticleRecord) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		for _, key := range r.CityTags {
			seen[key] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(tags []string, key string) bool {
	for _, t := range tags {
		if t == key {
			return true
		}
	}
	return false
}
