// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package meta

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/finro/content-engine/pkg/types"
)

var testSite = types.SiteConfig{TitleSuffix: " | FinRo.ro"}

var testTaxonomy = types.Taxonomy{
	{Label: "credite", Keywords: []string{"credit", "ipotecar", "dobândă", "IRCC", "ROBOR", "împrumut"}},
}

func TestEnrich_MetaTitle(t *testing.T) {
	short := &types.Article{Title: "Dobânda de referință scade", Subcategory: "credite"}
	Enrich(short, nil, testTaxonomy, testSite)
	assert.Equal(t, "Dobânda de referință scade | FinRo.ro", short.MetaTitle)

	long := &types.Article{
		Title:       strings.Repeat("a", 75),
		Subcategory: "credite",
	}
	Enrich(long, nil, testTaxonomy, testSite)
	assert.Equal(t, strings.Repeat("a", 57)+"..."+testSite.TitleSuffix, long.MetaTitle)
	assert.LessOrEqual(t, len(long.MetaTitle), 60+len(testSite.TitleSuffix))
}

func TestEnrich_MetaTitleDoesNotSplitRunes(t *testing.T) {
	a := &types.Article{Title: strings.Repeat("ă", 40)} // 80 bytes
	Enrich(a, nil, nil, testSite)
	assert.True(t, utf8.ValidString(a.MetaTitle))
}

func TestEnrich_MetaDescription(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		title   string
		want    string
	}{
		{"prefers summary", "Un rezumat scurt.", "Titlu", "Un rezumat scurt."},
		{"falls back to title", "", "Titlu de rezervă", "Titlu de rezervă"},
		{"caps at 155", strings.Repeat("b", 200), "t", strings.Repeat("b", 152) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &types.Article{Title: tt.title, Summary: tt.summary}
			Enrich(a, nil, nil, testSite)
			assert.Equal(t, tt.want, a.MetaDescription)
			assert.LessOrEqual(t, len(a.MetaDescription), 155)
		})
	}
}

func TestEnrich_KeywordUnion(t *testing.T) {
	a := &types.Article{Title: "t", Subcategory: "credite"}
	Enrich(a, []string{"finanțe personale", "România", "credit"}, testTaxonomy, testSite)

	// Base keywords first, then the first 4 taxonomy keywords, duplicates
	// removed with first occurrence kept.
	assert.Equal(t,
		[]string{"finanțe personale", "România", "credit", "ipotecar", "dobândă", "IRCC"},
		a.MetaKeywords)
}

func TestEnrich_KeywordsForGeneralLabel(t *testing.T) {
	a := &types.Article{Title: "t", Subcategory: "general"}
	Enrich(a, []string{"tehnologie"}, testTaxonomy, testSite)
	assert.Equal(t, []string{"tehnologie"}, a.MetaKeywords)
}

func TestEnrich_ReadingTime(t *testing.T) {
	short := &types.Article{Title: "t", Summary: "câteva cuvinte doar"}
	Enrich(short, nil, nil, testSite)
	assert.Equal(t, 2, short.ReadingTime, "floor of 2 minutes")

	long := &types.Article{
		Title:   "t",
		Content: strings.Repeat("cuvânt ", 850),
	}
	Enrich(long, nil, nil, testSite)
	assert.Equal(t, 4, long.ReadingTime)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"diacritics folded", "Dobânda crește în România", "dobanda-creste-in-romania"},
		{"punctuation collapsed", "Credit: ce urmează? (analiză)", "credit-ce-urmeaza-analiza"},
		{"uppercase lowered", "ANAF și TVA", "anaf-si-tva"},
		{"edges trimmed", "  - Titlu -  ", "titlu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.title))
		})
	}
}

func TestSlug_CapsAt80OnWordBoundary(t *testing.T) {
	title := strings.Repeat("cuvant ", 20)
	slug := Slug(title)
	assert.LessOrEqual(t, len(slug), 80)
	assert.False(t, strings.HasSuffix(slug, "-"))
	// Cut lands on a word boundary, never mid-word.
	for _, part := range strings.Split(slug, "-") {
		assert.Equal(t, "cuvant", part)
	}
}
