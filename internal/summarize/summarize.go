// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize produces short extractive summaries of Romanian article
// text. Sentences are scored by the frequency of their content words and the
// top-scoring ones are emitted in original order.
package summarize

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultSentences is the summary length used for article leads.
const DefaultSentences = 3

// fallbackLen is the prefix returned when the text is too short or scoring
// produces nothing.
const fallbackLen = 300

// minTextLen is the threshold below which the input is returned unchanged.
const minTextLen = 100

// romanianStopwords are excluded from frequency scoring. The list covers the
// high-frequency function words that would otherwise dominate every sentence.
var romanianStopwords = map[string]struct{}{
	"și": {}, "si": {}, "în": {}, "in": {}, "de": {}, "la": {}, "cu": {},
	"pe": {}, "din": {}, "un": {}, "o": {}, "al": {}, "ale": {}, "a": {},
	"ai": {}, "este": {}, "sunt": {}, "fi": {}, "fost": {}, "va": {},
	"vor": {}, "se": {}, "sa": {}, "să": {}, "ca": {}, "că": {}, "care": {},
	"pentru": {}, "mai": {}, "dar": {}, "sau": {}, "nu": {}, "au": {},
	"ar": {}, "el": {}, "ea": {}, "ei": {}, "lor": {}, "lui": {}, "cel": {},
	"cea": {}, "cele": {}, "acest": {}, "această": {}, "aceasta": {},
	"după": {}, "dupa": {}, "prin": {}, "fără": {}, "fara": {}, "până": {},
	"pana": {}, "între": {}, "intre": {}, "despre": {}, "când": {}, "cand": {},
	"unde": {}, "cum": {}, "fie": {}, "își": {}, "isi": {}, "său": {},
}

// Text returns an extractive summary of at most sentenceCount sentences.
// Inputs under 100 characters come back unchanged; when sentence splitting
// or scoring yields nothing useful, a 300-character prefix is returned
// instead. Never returns an error.
func Text(text string, sentenceCount int) string {
	text = strings.TrimSpace(text)
	if len(text) < minTextLen {
		return text
	}
	if sentenceCount <= 0 {
		sentenceCount = DefaultSentences
	}

	sentences := splitSentences(text)
	if len(sentences) <= sentenceCount {
		return strings.Join(sentences, " ")
	}

	freq := wordFrequencies(text)
	if len(freq) == 0 {
		return prefix(text)
	}

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(sentences))
	for i, s := range sentences {
		words := contentWords(s)
		if len(words) == 0 {
			ranked[i] = scored{index: i}
			continue
		}
		var sum float64
		for _, w := range words {
			sum += float64(freq[w])
		}
		ranked[i] = scored{index: i, score: sum / float64(len(words))}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	picked := ranked[:sentenceCount]
	sort.Slice(picked, func(i, j int) bool {
		return picked[i].index < picked[j].index
	})

	parts := make([]string, len(picked))
	for i, p := range picked {
		parts[i] = sentences[p.index]
	}
	result := strings.Join(parts, " ")
	if result == "" {
		return prefix(text)
	}
	return result
}

// ForArticle summarizes text and appends a source attribution clause.
func ForArticle(text, sourceName string) string {
	s := Text(text, DefaultSentences)
	if sourceName != "" && s != "" {
		s += " (Conform " + sourceName + ")"
	}
	return s
}

// splitSentences breaks text on terminal punctuation followed by space and
// an uppercase letter, keeping abbreviations intact more often than a naive
// split on periods would.
func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(strings.Join(strings.Fields(text), " "))

	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Consume a run of terminal punctuation.
		end := i
		for end+1 < len(runes) && (runes[end+1] == '.' || runes[end+1] == '!' || runes[end+1] == '?') {
			end++
		}
		boundary := end+1 >= len(runes) ||
			(runes[end+1] == ' ' && end+2 < len(runes) && unicode.IsUpper(runes[end+2]))
		if boundary {
			s := strings.TrimSpace(string(runes[start : end+1]))
			if s != "" {
				sentences = append(sentences, s)
			}
			start = end + 1
			i = end
		}
	}
	if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

// wordFrequencies counts content-word occurrences across the whole text.
func wordFrequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, w := range contentWords(text) {
		freq[w]++
	}
	return freq
}

// contentWords lowercases, strips punctuation, and drops stopwords and
// words shorter than three characters.
func contentWords(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var words []string
	for _, w := range fields {
		if len([]rune(w)) < 3 {
			continue
		}
		if _, stop := romanianStopwords[w]; stop {
			continue
		}
		words = append(words, w)
	}
	return words
}

// prefix returns the first 300 bytes of text on a rune boundary.
func prefix(text string) string {
	if len(text) <= fallbackLen {
		return text
	}
	n := fallbackLen
	for n > 0 && text[n]&0xC0 == 0x80 {
		n--
	}
	return strings.TrimSpace(text[:n])
}
