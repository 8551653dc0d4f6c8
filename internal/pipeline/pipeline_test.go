// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finro/content-engine/pkg/types"
)

const articleBody = `<html><body><article><div class="entry-content">
<p>Dobânda de referință pentru creditele ipotecare a crescut semnificativ în acest trimestru conform datelor oficiale.</p>
<p>Băncile comerciale au anunțat deja ajustarea ofertelor pentru creditele noi acordate clienților persoane fizice.</p>
<p>Analiștii pieței financiare estimează o stabilizare a dobânzilor în a doua parte a anului calendaristic.</p>
</div></article></body></html>`

// newFeedServer serves an RSS feed at /feed and an article page everywhere
// else. Item links point back at the server.
func newFeedServer(t *testing.T, itemCount int) *httptest.Server {
	t.Helper()
	var ts *httptest.Server
	ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/feed" {
			fmt.Fprint(w, articleBody)
			return
		}
		var items bytes.Buffer
		for i := 0; i < itemCount; i++ {
			fmt.Fprintf(&items, `<item>
  <title>Dobânda la credite ipotecare crește %d</title>
  <link>%s/articol-%d</link>
  <pubDate>Mon, 12 Jan 2026 08:00:00 GMT</pubDate>
  <description>Creditele ipotecare se scumpesc din nou pentru clienții băncilor.</description>
</item>`, i, ts.URL, i)
		}
		fmt.Fprintf(w, `<?xml version="1.0"?><rss version="2.0"><channel><title>Test</title>%s</channel></rss>`, items.String())
	}))
	t.Cleanup(ts.Close)
	return ts
}

func testDef(ts *httptest.Server) types.AgentDefinition {
	return types.AgentDefinition{
		Name:     "finante",
		Category: "finante",
		Sources: []types.FeedSource{
			{ID: "test", Name: "Test Feed", Type: types.SourceRSS, URL: ts.URL + "/feed", MaxEntries: 10},
		},
		Taxonomy: types.Taxonomy{
			{Label: "credite", Keywords: []string{"credit", "dobând", "ipotecar"}},
			{Label: "taxe", Keywords: []string{"impozit", "ANAF"}},
		},
		BaseKeywords: []string{"finanțe personale", "România"},
		MaxArticles:  5,
		ContentCap:   2000,
	}
}

func testConfig(t *testing.T) types.PipelineConfig {
	t.Helper()
	base := t.TempDir()
	return types.PipelineConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   5 * time.Second,
			UserAgent: "FinRo-Bot/1.0 (+https://finro.ro/bot)",
		},
		Site: types.SiteConfig{
			BaseURL:       "https://finro.ro",
			TitleSuffix:   " | FinRo.ro",
			Publisher:     "FinRo.ro",
			DefaultAuthor: "Redacția FinRo",
		},
		Store: types.StoreConfig{
			SiteDir: filepath.Join(base, "site"),
			DataDir: filepath.Join(base, "data"),
		},
	}
}

func TestRunAgentPersistsEverything(t *testing.T) {
	ts := newFeedServer(t, 3)
	cfg := testConfig(t)
	def := testDef(ts)

	var buf bytes.Buffer
	res, err := RunAgent(context.Background(), def, cfg, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Fetched)
	assert.Equal(t, 3, res.Accepted)
	assert.Equal(t, 0, res.Duplicates)
	assert.Equal(t, 3, res.Indexed)

	// Article page exists and carries the enriched summary.
	pages, err := filepath.Glob(filepath.Join(cfg.Store.SiteDir, "articles", "finante", "*.html"))
	require.NoError(t, err)
	assert.Len(t, pages, 3)
	html, err := os.ReadFile(pages[0])
	require.NoError(t, err)
	assert.Contains(t, string(html), "Conform Test Feed")
	assert.Contains(t, string(html), "| FinRo.ro")

	// Records classified by the taxonomy.
	records, err := filepath.Glob(filepath.Join(cfg.Store.DataDir, "article_*.json"))
	require.NoError(t, err)
	require.Len(t, records, 3)
	var rec types.ArticleRecord
	data, err := os.ReadFile(records[0])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, "credite", rec.Subcategory)
	assert.Equal(t, "Redacția FinRo", rec.Author)
	assert.Len(t, rec.HashID, 12)

	// Seen-set and index written.
	assert.FileExists(t, filepath.Join(cfg.Store.DataDir, "seen_finante.json"))
	var idx types.CategoryIndex
	data, err = os.ReadFile(filepath.Join(cfg.Store.DataDir, "index_finante.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &idx))
	assert.Equal(t, 3, idx.Total)
}

func TestRunAgentSkipsSeenURLs(t *testing.T) {
	ts := newFeedServer(t, 3)
	cfg := testConfig(t)
	def := testDef(ts)

	var buf bytes.Buffer
	_, err := RunAgent(context.Background(), def, cfg, &buf)
	require.NoError(t, err)

	res, err := RunAgent(context.Background(), def, cfg, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Duplicates)
	assert.Equal(t, 0, res.Accepted)
}

func TestRunAgentHonorsMaxArticles(t *testing.T) {
	ts := newFeedServer(t, 5)
	cfg := testConfig(t)
	cfg.MaxArticles = 2
	def := testDef(ts)

	var buf bytes.Buffer
	res, err := RunAgent(context.Background(), def, cfg, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Accepted)

	// The other three stay unseen and are picked up next run.
	res, err = RunAgent(context.Background(), def, cfg, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Duplicates)
	assert.Equal(t, 2, res.Accepted)
}

func TestRunAgentDryRunWritesNothing(t *testing.T) {
	ts := newFeedServer(t, 2)
	cfg := testConfig(t)
	cfg.DryRun = true
	def := testDef(ts)

	var buf bytes.Buffer
	res, err := RunAgent(context.Background(), def, cfg, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Accepted)
	assert.Equal(t, 0, res.Indexed)
	assert.Contains(t, buf.String(), "[dry]")

	assert.NoDirExists(t, cfg.Store.SiteDir)
	assert.NoDirExists(t, cfg.Store.DataDir)
}

func TestRunUnknownAgent(t *testing.T) {
	var buf bytes.Buffer
	_, err := Run(context.Background(), "sport", testConfig(t), &buf)
	require.Error(t, err)
}
