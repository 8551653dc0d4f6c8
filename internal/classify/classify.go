// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify assigns subcategory labels by keyword-overlap scoring
// against an agent's taxonomy, and provides the tech and investitii agents'
// auxiliary taggers.
package classify

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/finro/content-engine/pkg/types"
)

// GeneralLabel is the sentinel returned when no taxonomy keyword matches.
// It is a valid taxonomy member from the consumers' point of view, not an
// error case.
const GeneralLabel = "general"

// Classify scores each taxonomy label by counting how many of its keywords
// occur as case-insensitive substrings of text (each keyword counts at most
// once no matter how often it repeats) and returns the label with the
// strictly highest score. Ties go to the first-declared label. A top score
// of zero returns GeneralLabel. Pure and deterministic.
func Classify(text string, taxonomy types.Taxonomy) string {
	lower := strings.ToLower(text)

	best := GeneralLabel
	bestScore := 0
	for _, entry := range taxonomy {
		score := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				score++
			}
		}
		if score > bestScore {
			best = entry.Label
			bestScore = score
		}
	}
	return best
}

// cityKeywords maps Romanian city keys to the landmark and spelling variants
// that identify them in article text.
var cityKeywords = []struct {
	key      string
	keywords []string
}{
	{"brasov", []string{"Brasov", "Brașov", "Coresi", "AFI Park Brasov", "Ghimbav", "Tractorul"}},
	{"bucuresti", []string{"Bucuresti", "București", "Bucharest", "Ilfov", "One United", "Floreasca", "Pipera", "Baneasa"}},
	{"timisoara", []string{"Timisoara", "Timișoara", "Iulius Town", "Paltim", "Continental Timisoara"}},
	{"cluj", []string{"Cluj", "Cluj-Napoca", "RIVUS", "Iulius Mall Cluj", "Borhanci", "Sophia"}},
	{"emergente", []string{"Oradea", "Sibiu", "Iasi", "Iași", "Constanta", "Constanța", "Craiova", "Arad", "Alba Iulia"}},
}

// DetectCities returns the city keys whose keywords appear in text,
// in declaration order.
func DetectCities(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, city := range cityKeywords {
		for _, kw := range city.keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				found = append(found, city.key)
				break
			}
		}
	}
	return found
}

// ratingPatterns match review scores in descending priority: explicit x/10,
// labeled ratings, and bare percentages.
var ratingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+\.?\d?)\s*/\s*10`),
	regexp.MustCompile(`(?i)rating[:\s]+(\d+\.?\d?)`),
	regexp.MustCompile(`(?i)scor[:\s]+(\d+\.?\d?)`),
	regexp.MustCompile(`(?i)(\d+\.?\d?)%`),
}

// ExtractRating pulls a review score out of text and normalizes it to the
// "x/10" form. Percentages are scaled down by ten. Returns "" when no
// plausible score is found.
func ExtractRating(text string) string {
	for _, p := range ratingPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		val, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		switch {
		case val <= 10:
			return trimRating(val) + "/10"
		case val <= 100:
			return fmt.Sprintf("%.1f/10", val/10)
		}
	}
	return ""
}

// trimRating formats val without a trailing ".0" (8 stays "8", 8.5 stays "8.5").
func trimRating(val float64) string {
	s := strconv.FormatFloat(val, 'f', -1, 64)
	return s
}
