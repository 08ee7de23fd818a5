package domain

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	nonSlugChars   = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
	trailingDashes = regexp.MustCompile(`-+$`)
	wordSeparators = regexp.MustCompile(`[-_\s]+`)
)

// Slug converts a title to its anchor form following the GitHub convention:
// lowercased, trimmed, stripped of everything outside word characters,
// whitespace and hyphens, with whitespace runs collapsed to single hyphens
// and trailing hyphens removed. The same function backs synthesized anchors,
// link rewriting and TOC generation so the three always agree.
func Slug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonSlugChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, "-")

	return trailingDashes.ReplaceAllString(s, "")
}

// TitleCase derives a human-readable title from a path component, turning
// "getting-started" into "Getting Started".
func TitleCase(component string) string {
	words := wordSeparators.Split(strings.TrimSpace(component), -1)

	out := make([]string, 0, len(words))

	for _, word := range words {
		if word == "" {
			continue
		}

		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		out = append(out, string(runes))
	}

	return strings.Join(out, " ")
}
