// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render serializes an enriched article into its static HTML page
// and its flat JSON sidecar record. Rendering is pure: persistence belongs
// to the caller.
package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/finro/content-engine/pkg/types"
)

// Render produces the article's HTML document and its JSON record. The
// record's URL field is the site-relative route "/{category}/{slug}".
func Render(article *types.Article, site types.SiteConfig) (string, types.ArticleRecord, error) {
	doc, err := Document(article, site)
	if err != nil {
		return "", types.ArticleRecord{}, err
	}
	return doc, Record(article), nil
}

// Record builds the flat JSON sidecar for an enriched article.
func Record(article *types.Article) types.ArticleRecord {
	return types.ArticleRecord{
		Title:           article.Title,
		Slug:            article.Slug,
		Category:        article.Category,
		Subcategory:     article.Subcategory,
		CityTags:        article.CityTags,
		Rating:          article.Rating,
		MetaTitle:       article.MetaTitle,
		MetaDescription: article.MetaDescription,
		MetaKeywords:    article.MetaKeywords,
		Author:          article.Author,
		Published:       article.Published,
		ReadingTime:     article.ReadingTime,
		Source:          article.SourceName,
		SourceURL:       article.URL,
		HashID:          article.HashID,
		URL:             "/" + article.Category + "/" + article.Slug,
	}
}

// pageData is the template context for one article page.
type pageData struct {
	Article    *types.Article
	Site       types.SiteConfig
	Route      string
	Canonical  string
	Keywords   string
	Paragraphs []string
	Modified   string
	PubDate    string
}

// Document renders the full static HTML page for an enriched article.
func Document(article *types.Article, site types.SiteConfig) (string, error) {
	route := "/" + article.Category + "/" + article.Slug
	data := pageData{
		Article:    article,
		Site:       site,
		Route:      route,
		Canonical:  site.BaseURL + route,
		Keywords:   strings.Join(article.MetaKeywords, ", "),
		Paragraphs: splitParagraphs(article.Content),
		Modified:   time.Now().UTC().Format(time.RFC3339),
		PubDate:    datePart(article.Published),
	}

	var b strings.Builder
	if err := pageTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering article %s: %w", article.Slug, err)
	}
	return b.String(), nil
}

// splitParagraphs breaks body text on blank-line boundaries, dropping empty
// fragments.
func splitParagraphs(content string) []string {
	var paragraphs []string
	for _, p := range strings.Split(content, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// datePart returns the YYYY-MM-DD prefix of an RFC3339 timestamp, or the
// raw value when it is shorter.
func datePart(published string) string {
	if len(published) >= 10 {
		return published[:10]
	}
	return published
}

// title uppercases the first letter of a subcategory label for display.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var pageTemplate = template.Must(template.New("article").Funcs(template.FuncMap{
	"title": title,
}).Parse(`<!DOCTYPE html>
<html lang="ro">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Article.MetaTitle}}</title>
    <meta name="description" content="{{.Article.MetaDescription}}">
    <meta name="keywords" content="{{.Keywords}}">
    <meta name="author" content="{{.Article.Author}}">
    <meta name="robots" content="index, follow">
    <meta property="og:title" content="{{.Article.MetaTitle}}">
    <meta property="og:description" content="{{.Article.MetaDescription}}">
    <meta property="og:type" content="article">
    <meta property="og:url" content="{{.Canonical}}">
    <link rel="canonical" href="{{.Canonical}}">
    <script type="application/ld+json">
    {
        "@context": "https://schema.org",
        "@type": "Article",
        "headline": {{.Article.Title}},
        "description": {{.Article.MetaDescription}},
        "author": {"@type": "Person", "name": {{.Article.Author}}},
        "publisher": {"@type": "Organization", "name": {{.Site.Publisher}}},
        "datePublished": {{.Article.Published}},
        "dateModified": {{.Modified}},
        "mainEntityOfPage": {{.Canonical}},
        "articleSection": {{.Article.Subcategory}}
    }
    </script>
    <link rel="stylesheet" href="../../css/style.css">
</head>
<body>
    <!-- Top Ad Slot -->
    <div class="ad-slot ad-slot--top" aria-label="Reclamă">
        <div class="ad-placeholder"><span class="ad-label">AD · 728×90 Leaderboard</span></div>
    </div>

    <main class="main">
        <div class="main__grid">
            <article class="article-page" itemscope itemtype="https://schema.org/Article">
                <div class="article-page__header">
                    <span class="card__category">{{title .Article.Subcategory}}</span>
                    {{- if .Article.Rating}}
                    <span class="card__badge card__badge--review">⭐ {{.Article.Rating}}</span>
                    {{- end}}
                    {{- range .Article.CityTags}}
                    <span class="card__badge card__badge--city">{{title .}}</span>
                    {{- end}}
                    <h1 itemprop="headline">{{.Article.Title}}</h1>
                    <div class="card__meta">
                        <span itemprop="author">{{.Article.Author}}</span>
                        <time datetime="{{.Article.Published}}" itemprop="datePublished">{{.PubDate}}</time>
                        <span>{{.Article.ReadingTime}} min citire</span>
                    </div>
                </div>

                <!-- In-article Ad -->
                <div class="ad-slot ad-slot--in-content" aria-label="Reclamă">
                    <div class="ad-placeholder"><span class="ad-label">AD · 336×280 In-Article</span></div>
                </div>

                <div class="article-page__content" itemprop="articleBody">
                    <p class="article-page__lead"><strong>{{.Article.Summary}}</strong></p>
                    {{- range .Paragraphs}}
                    <p>{{.}}</p>
                    {{- end}}
                </div>

                <div class="article-page__source">
                    <p>Sursă: <a href="{{.Article.URL}}" target="_blank" rel="nofollow noopener">{{.Article.SourceName}}</a></p>
                </div>

                <!-- Post-article Ad -->
                <div class="ad-slot ad-slot--in-content" aria-label="Reclamă">
                    <div class="ad-placeholder"><span class="ad-label">AD · 728×90 Post-Article</span></div>
                </div>
            </article>

            <aside class="sidebar">
                <div class="ad-slot ad-slot--sidebar" aria-label="Reclamă">
                    <div class="ad-placeholder"><span class="ad-label">AD · 300×250</span></div>
                </div>
            </aside>
        </div>
    </main>

    <script src="../../js/main.js"></script>
</body>
</html>
`))
