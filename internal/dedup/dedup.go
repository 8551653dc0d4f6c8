// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dedup fingerprints article URLs and persists the per-category set
// of fingerprints seen in previous runs.
package dedup

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Fingerprint returns the first 12 hex characters of the MD5 digest of url.
// The digest is an identity key, not a security primitive; collision risk is
// accepted as negligible at this content volume.
func Fingerprint(url string) string {
	sum := md5.Sum([]byte(url))
	return hex.EncodeToString(sum[:])[:12]
}

// Set is the in-memory fingerprint set for one category. A fingerprint
// present in the set must never be reprocessed into a new document.
type Set struct {
	hashes map[string]struct{}
}

// NewSet returns an empty fingerprint set.
func NewSet() *Set {
	return &Set{hashes: make(map[string]struct{})}
}

// Contains reports whether hash is already in the set.
func (s *Set) Contains(hash string) bool {
	_, ok := s.hashes[hash]
	return ok
}

// Add inserts hash into the set.
func (s *Set) Add(hash string) {
	s.hashes[hash] = struct{}{}
}

// Len returns the number of fingerprints in the set.
func (s *Set) Len() int {
	return len(s.hashes)
}

// seenFile is the on-disk JSON shape of a persisted fingerprint set.
type seenFile struct {
	Hashes  []string `json:"hashes"`
	Updated string   `json:"updated"`
}

// FilePath returns the seen-set file for a category under dataDir.
func FilePath(dataDir, category string) string {
	return filepath.Join(dataDir, "seen_"+category+".json")
}

// Load reads the persisted fingerprint set for category. A missing or
// corrupt file yields an empty set; loading never fails the run.
func Load(dataDir, category string) *Set {
	s := NewSet()
	data, err := os.ReadFile(FilePath(dataDir, category))
	if err != nil {
		return s
	}
	var f seenFile
	if err := json.Unmarshal(data, &f); err != nil {
		return s
	}
	for _, h := range f.Hashes {
		s.Add(h)
	}
	return s
}

// Save overwrites the persisted fingerprint set for category with the full
// contents of s plus a last-updated timestamp. The file is written to a
// temporary name and renamed so a crash cannot leave a partial set behind.
func Save(dataDir, category string, s *Set) error {
	hashes := make([]string, 0, len(s.hashes))
	for h := range s.hashes {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)

	f := seenFile{
		Hashes:  hashes,
		Updated: time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding seen set: %w", err)
	}

	dest := FilePath(dataDir, category)
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".seen-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing seen set: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing seen set: %w", closeErr)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing seen set: %w", err)
	}
	return nil
}
