// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package meta

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxSlugLen bounds generated slugs; longer slugs are cut at the previous
// hyphen when possible so words stay whole.
const maxSlugLen = 80

// foldDiacritics decomposes text and strips combining marks, turning
// "dobândă" into "dobanda". Romanian commas-below (ș, ț) decompose to s/t
// plus a mark, so they fold correctly too.
var foldDiacritics = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Slug converts title into a lowercase URL-safe slug of at most 80
// characters: diacritics folded, every non-alphanumeric run collapsed to a
// single hyphen.
func Slug(title string) string {
	folded, _, err := transform.String(foldDiacritics, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
		if idx := strings.LastIndexByte(slug, '-'); idx > 0 {
			slug = slug[:idx]
		}
	}
	return slug
}
