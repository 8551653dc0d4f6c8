// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store owns the on-disk layout of the generated site: article HTML
// pages under the site directory, JSON records and indexes under the data
// directory. All writes go through a temporary file and a rename so readers
// never observe a partial document.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/finro/content-engine/pkg/types"
)

const (
	articlesDir  = "articles"
	recordPrefix = "article_"
)

// Store manages the site and data directories for one run.
type Store struct {
	siteDir string
	dataDir string
}

// New creates a Store and ensures both directories exist.
func New(cfg types.StoreConfig) (*Store, error) {
	for _, dir := range []string{cfg.SiteDir, cfg.DataDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return &Store{siteDir: cfg.SiteDir, dataDir: cfg.DataDir}, nil
}

// DataDir returns the data directory path.
func (s *Store) DataDir() string { return s.dataDir }

// SiteDir returns the website root path.
func (s *Store) SiteDir() string { return s.siteDir }

// ArticlePath returns the HTML file path for a category and slug.
func (s *Store) ArticlePath(category, slug string) string {
	return filepath.Join(s.siteDir, articlesDir, category, slug+".html")
}

// WriteDocument persists an article's HTML page under
// siteDir/articles/{category}/{slug}.html.
func (s *Store) WriteDocument(category, slug, html string) error {
	dir := filepath.Join(s.siteDir, articlesDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating article directory: %w", err)
	}
	return writeAtomic(s.ArticlePath(category, slug), []byte(html))
}

// WriteRecord persists an article's JSON sidecar, named by its fingerprint.
func (s *Store) WriteRecord(rec types.ArticleRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding record %s: %w", rec.HashID, err)
	}
	path := filepath.Join(s.dataDir, recordPrefix+rec.HashID+".json")
	return writeAtomic(path, data)
}

// WriteIndex persists a category index document under name in the data
// directory.
func (s *Store) WriteIndex(name string, index types.CategoryIndex) error {
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding index %s: %w", name, err)
	}
	return writeAtomic(filepath.Join(s.dataDir, name), data)
}

// ScanRecords parses every persisted article record in the data directory.
// Records that fail to parse are silently excluded; a corrupt file must
// never fail an index rebuild.
func (s *Store) ScanRecords() ([]types.ArticleRecord, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("reading data directory %s: %w", s.dataDir, err)
	}

	var records []types.ArticleRecord
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, recordPrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dataDir, name))
		if err != nil {
			continue
		}
		var rec types.ArticleRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// writeAtomic writes data to dest via a sibling temp file and a rename.
func writeAtomic(dest string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".store-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", dest, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", dest, closeErr)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", dest, err)
	}
	return nil
}
