// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package agent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finro/content-engine/pkg/types"
)

func TestLookupBuiltins(t *testing.T) {
	for _, name := range []string{"finante", "asigurari", "tech", "investitii"} {
		def, err := Lookup(name, "")
		require.NoError(t, err, name)
		assert.Equal(t, name, def.Name)
		assert.Equal(t, name, def.Category)
		assert.NotEmpty(t, def.Sources)
		assert.NotEmpty(t, def.Taxonomy)
		assert.Greater(t, def.MaxArticles, 0)
		assert.Greater(t, def.ContentCap, 0)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("sport", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown agent")
}

func TestBuiltinTuning(t *testing.T) {
	tech, err := Lookup("tech", "")
	require.NoError(t, err)
	assert.True(t, tech.ExtractRating)
	assert.False(t, tech.DetectCities)
	assert.Equal(t, 2500, tech.ContentCap)

	inv, err := Lookup("investitii", "")
	require.NoError(t, err)
	assert.True(t, inv.DetectCities)
	assert.Equal(t, 8, inv.MaxArticles)
	assert.Equal(t, 3000, inv.ContentCap)
}

func TestBuiltinScrapeSourcesHaveSelectors(t *testing.T) {
	for _, def := range builtins {
		for _, src := range def.Sources {
			if src.Type == types.SourceScrape {
				assert.NotEmpty(t, src.Selector, "%s/%s", def.Name, src.ID)
			}
		}
	}
}

func TestLookupYAMLOverride(t *testing.T) {
	dir := t.TempDir()
	doc := `name: finante
category: finante
sources:
  - id: custom
    name: Custom Feed
    type: rss
    url: https://example.com/rss
taxonomy:
  - label: credite
    keywords: [credit]
base_keywords: [test]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "finante.yaml"), []byte(doc), 0o644))

	def, err := Lookup("finante", dir)
	require.NoError(t, err)
	require.Len(t, def.Sources, 1)
	assert.Equal(t, "custom", def.Sources[0].ID)
	// Defaults applied by validation.
	assert.Equal(t, 5, def.MaxArticles)
	assert.Equal(t, 2000, def.ContentCap)

	// Other agents still resolve to built-ins.
	tech, err := Lookup("tech", dir)
	require.NoError(t, err)
	assert.Len(t, tech.Sources, 5)
}

func TestLookupRejectsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	doc := `name: broken
sources:
  - id: s1
    url: https://example.com
    type: scrape
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte(doc), 0o644))

	_, err := Lookup("broken", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selector")
}

func TestNames(t *testing.T) {
	names := Names("")
	assert.Equal(t, []string{"asigurari", "finante", "investitii", "tech"}, names)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.yaml"), []byte("name: extra"), 0o644))
	names = Names(dir)
	assert.Contains(t, names, "extra")
	assert.Len(t, names, 5)
}
