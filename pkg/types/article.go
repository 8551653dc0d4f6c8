// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CandidateItem is a feed or scrape result that has not yet been accepted
// into the article store. Fetchers create them; everything downstream reads
// them until the pipeline promotes one into an Article.
type CandidateItem struct {
	// Title is the entry headline as published by the source.
	Title string

	// URL is the canonical link to the original article.
	URL string

	// Published is the source-reported publication timestamp, verbatim when
	// RFC3339 and normalized to RFC3339 otherwise.
	Published string

	// Summary is a short plain-text teaser, capped at 500 characters.
	Summary string

	// SourceID identifies the configured source that produced the item.
	SourceID string

	// SourceName is the human-readable source name used for attribution.
	SourceName string
}

// Article is one accepted item after classification and enrichment. It is
// created once per accepted CandidateItem and never updated in place; a later
// run with the same URL is stopped by the fingerprint set.
type Article struct {
	Title      string
	Slug       string
	URL        string
	SourceID   string
	SourceName string
	Published  string
	Summary    string

	// Content is the extracted body text, blank-line separated paragraphs.
	// Empty when extraction failed; the article is still produced.
	Content string

	// Category is the agent's content vertical (e.g. "finante").
	Category string

	// Subcategory is the taxonomy label assigned by keyword scoring,
	// "general" when nothing matched.
	Subcategory string

	// CityTags holds Romanian city keys detected in the text. Only the
	// investitii agent populates it.
	CityTags []string

	// Rating is a normalized review score such as "8.5/10". Only the tech
	// agent populates it.
	Rating string

	MetaTitle       string
	MetaDescription string
	MetaKeywords    []string

	// ReadingTime is the estimated reading time in minutes, never below 2.
	ReadingTime int

	Author string

	// HashID is the 12-character URL fingerprint used for deduplication and
	// as the record filename.
	HashID string
}

// ArticleRecord is the flat JSON sidecar persisted for each accepted article
// and aggregated into category indexes. Field names are part of the on-disk
// interface consumed by the static front-end.
type ArticleRecord struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory"`
	CityTags        []string `json:"city_tags,omitempty"`
	Rating          string   `json:"rating,omitempty"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	MetaKeywords    []string `json:"meta_keywords"`
	Author          string   `json:"author"`
	Published       string   `json:"published"`
	ReadingTime     int      `json:"reading_time"`
	Source          string   `json:"source"`
	SourceURL       string   `json:"source_url"`
	HashID          string   `json:"hash_id"`

	// URL is the site-relative route, "/{category}/{slug}".
	URL string `json:"url"`
}

// CategoryIndex is the aggregated listing document for one category,
// rebuilt from scratch on every run.
type CategoryIndex struct {
	Category string `json:"category"`

	// Subcategory is set on per-subcategory sub-indexes only.
	Subcategory string `json:"subcategory,omitempty"`

	// City is set on per-city sub-indexes only.
	City string `json:"city,omitempty"`

	// Total is the true count of matching records, not the capped length
	// of Articles.
	Total int `json:"total"`

	// Updated is the rebuild timestamp in RFC3339.
	Updated string `json:"updated"`

	Articles []ArticleRecord `json:"articles"`
}

// SourceType distinguishes how a FeedSource is fetched.
type SourceType string

const (
	SourceRSS    SourceType = "rss"
	SourceScrape SourceType = "scrape"
)

// FeedSource describes one configured upstream source. Loaded at process
// start and immutable afterwards.
type FeedSource struct {
	// ID is a short stable identifier (e.g. "bnr", "zf").
	ID string `yaml:"id"`

	// Name is the display name used in logs and source attribution.
	Name string `yaml:"name"`

	// Type selects the fetch strategy: "rss" or "scrape".
	Type SourceType `yaml:"type"`

	// URL is the feed endpoint for RSS sources or the page endpoint for
	// scrape sources.
	URL string `yaml:"url"`

	// Selector is the CSS selector matching item nodes on scrape pages.
	Selector string `yaml:"selector,omitempty"`

	// FilterKeywords, when non-empty, retains only entries whose
	// title+summary contains at least one keyword (case-insensitive).
	FilterKeywords []string `yaml:"filter_keywords,omitempty"`

	// MaxEntries bounds how many feed entries are considered per run.
	// Zero means the fetcher default of 10.
	MaxEntries int `yaml:"max_entries,omitempty"`
}

// TaxonomyEntry maps one subcategory label to its keyword list. Order of
// declaration breaks classification ties, so taxonomies are slices.
type TaxonomyEntry struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// Taxonomy is the ordered subcategory keyword mapping for one agent.
type Taxonomy []TaxonomyEntry

// Keywords returns the keyword list for label, or nil when the label is not
// in the taxonomy (including the "general" sentinel).
func (t Taxonomy) Keywords(label string) []string {
	for _, e := range t {
		if e.Label == label {
			return e.Keywords
		}
	}
	return nil
}

// AgentDefinition bundles everything one content agent needs: its category,
// sources, taxonomy, and per-agent tuning.
type AgentDefinition struct {
	// Name is the agent identifier used on the command line (e.g. "finante").
	Name string `yaml:"name"`

	// Category is the content vertical the agent writes into. Usually equal
	// to Name.
	Category string `yaml:"category"`

	// Sources lists upstream feeds and pages in fetch order.
	Sources []FeedSource `yaml:"sources"`

	// Taxonomy is the ordered subcategory keyword mapping.
	Taxonomy Taxonomy `yaml:"taxonomy"`

	// BaseKeywords seed every article's meta keyword list.
	BaseKeywords []string `yaml:"base_keywords"`

	// MaxArticles caps newly accepted articles per run.
	MaxArticles int `yaml:"max_articles"`

	// ContentCap truncates extracted body text, in characters.
	ContentCap int `yaml:"content_cap"`

	// DetectCities enables Romanian city tagging (investitii agent).
	DetectCities bool `yaml:"detect_cities,omitempty"`

	// ExtractRating enables review rating extraction (tech agent).
	ExtractRating bool `yaml:"extract_rating,omitempty"`
}
