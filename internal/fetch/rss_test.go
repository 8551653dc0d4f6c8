// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finro/content-engine/pkg/types"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Ziarul Financiar</title>
    <item>
      <title>BNR anunță o nouă dobândă de referință</title>
      <link>https://example.ro/bnr-dobanda</link>
      <description>&lt;p&gt;Banca centrală a &lt;b&gt;modificat&lt;/b&gt; dobânda.&lt;/p&gt;</description>
      <pubDate>Mon, 12 Jan 2026 08:30:00 +0200</pubDate>
    </item>
    <item>
      <title>Piața RCA se stabilizează</title>
      <link>https://example.ro/rca-piata</link>
      <description>Tarifele RCA au scăzut ușor.</description>
      <pubDate>Sun, 11 Jan 2026 10:00:00 +0200</pubDate>
    </item>
  </channel>
</rss>`

const sampleAtom = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <title>Review: un telefon nou</title>
    <link rel="alternate" href="https://example.com/review-telefon"/>
    <summary>Un review detaliat.</summary>
    <published>2026-01-10T09:00:00Z</published>
  </entry>
</feed>`

func serveXML(t *testing.T, payload string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		io.WriteString(w, payload)
	}))
}

func testHTTPConfig() types.HTTPConfig {
	return types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "FinRo-Bot/1.0"}
}

func TestRSSSource_Fetch(t *testing.T) {
	ts := serveXML(t, sampleRSS)
	defer ts.Close()

	s := &RSSSource{src: types.FeedSource{
		ID: "zf", Name: "Ziarul Financiar", Type: types.SourceRSS, URL: ts.URL,
	}}

	items, err := s.Fetch(context.Background(), ts.Client(), testHTTPConfig())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "BNR anunță o nouă dobândă de referință", items[0].Title)
	assert.Equal(t, "https://example.ro/bnr-dobanda", items[0].URL)
	assert.Equal(t, "zf", items[0].SourceID)
	assert.Equal(t, "Ziarul Financiar", items[0].SourceName)
	assert.Equal(t, "Banca centrală a modificat dobânda.", items[0].Summary,
		"summary markup is stripped")
	assert.Equal(t, "2026-01-12T06:30:00Z", items[0].Published,
		"pubDate is normalized to RFC3339 UTC")
}

func TestRSSSource_Fetch_Atom(t *testing.T) {
	ts := serveXML(t, sampleAtom)
	defer ts.Close()

	s := &RSSSource{src: types.FeedSource{
		ID: "theverge", Name: "The Verge", Type: types.SourceRSS, URL: ts.URL,
	}}

	items, err := s.Fetch(context.Background(), ts.Client(), testHTTPConfig())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Review: un telefon nou", items[0].Title)
	assert.Equal(t, "https://example.com/review-telefon", items[0].URL)
	assert.Equal(t, "2026-01-10T09:00:00Z", items[0].Published)
}

func TestRSSSource_Fetch_KeywordFilter(t *testing.T) {
	ts := serveXML(t, sampleRSS)
	defer ts.Close()

	s := &RSSSource{src: types.FeedSource{
		ID: "zf_asig", Name: "ZF Asigurări", Type: types.SourceRSS, URL: ts.URL,
		FilterKeywords: []string{"asigur", "RCA", "poliț"},
	}}

	items, err := s.Fetch(context.Background(), ts.Client(), testHTTPConfig())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Piața RCA se stabilizează", items[0].Title)
}

func TestRSSSource_Fetch_EntryCap(t *testing.T) {
	var b []byte
	b = append(b, `<?xml version="1.0"?><rss version="2.0"><channel>`...)
	for i := 0; i < 25; i++ {
		b = append(b, fmt.Sprintf(
			`<item><title>Articol %d</title><link>https://example.ro/%d</link></item>`, i, i)...)
	}
	b = append(b, `</channel></rss>`...)

	ts := serveXML(t, string(b))
	defer ts.Close()

	s := &RSSSource{src: types.FeedSource{
		ID: "zf", Name: "ZF", Type: types.SourceRSS, URL: ts.URL, MaxEntries: 15,
	}}
	items, err := s.Fetch(context.Background(), ts.Client(), testHTTPConfig())
	require.NoError(t, err)
	assert.Len(t, items, 15)

	s.src.MaxEntries = 0 // fetcher default
	items, err = s.Fetch(context.Background(), ts.Client(), testHTTPConfig())
	require.NoError(t, err)
	assert.Len(t, items, 10)
}

func TestRSSSource_Fetch_BadXML(t *testing.T) {
	ts := serveXML(t, "definitely not xml <<<")
	defer ts.Close()

	s := &RSSSource{src: types.FeedSource{ID: "x", Type: types.SourceRSS, URL: ts.URL}}
	_, err := s.Fetch(context.Background(), ts.Client(), testHTTPConfig())
	require.Error(t, err)
}

func TestAll_FailingSourceIsSkipped(t *testing.T) {
	good := serveXML(t, sampleRSS)
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	sources := []types.FeedSource{
		{ID: "down", Name: "Sursa căzută", Type: types.SourceRSS, URL: bad.URL},
		{ID: "zf", Name: "Ziarul Financiar", Type: types.SourceRSS, URL: good.URL},
	}

	var log bytes.Buffer
	items := All(context.Background(), sources, http.DefaultClient, testHTTPConfig(), &log)

	assert.Len(t, items, 2, "the healthy source still contributes")
	assert.Contains(t, log.String(), "warning: source down failed")
}

func TestNormalizePublished(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"rfc1123z", "Mon, 12 Jan 2026 08:30:00 +0200", "2026-01-12T06:30:00Z"},
		{"rfc3339 passthrough", "2026-01-10T09:00:00Z", "2026-01-10T09:00:00Z"},
		{"date only", "2026-01-10", "2026-01-10T00:00:00Z"},
		{"unparseable kept verbatim", "ieri la prânz", "ieri la prânz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePublished(tt.in))
		})
	}
}

func TestNormalizePublished_EmptyBecomesNow(t *testing.T) {
	got := normalizePublished("")
	_, err := time.Parse(time.RFC3339, got)
	require.NoError(t, err)
}
