package domain

import (
	"regexp"
	"strings"
)

// headingMarkers matches a run of '#' characters at the start of a line.
// Anchoring to line starts keeps '#' inside inline text untouched.
var headingMarkers = regexp.MustCompile(`(?m)^#+`)

// ShiftHeadings deepens every line-leading heading marker run in body by
// shift additional '#' characters, preserving the rest of each line. A zero
// shift returns the body unchanged.
func ShiftHeadings(body string, shift int) string {
	if shift <= 0 {
		return body
	}

	extra := strings.Repeat("#", shift)

	return headingMarkers.ReplaceAllStringFunc(body, func(run string) string {
		return run + extra
	})
}
