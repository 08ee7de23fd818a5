package domain

import (
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/mdbundle/internal/model"
)

var (
	inlineLinks = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
	refDefLinks = regexp.MustCompile(`(?m)^(\s*\[[^\]]+\]:\s*)(\S+)`)
)

// RewriteLinks points every non-external link in body at the in-document
// anchor of its target. Targets are resolved against dir, the directory of
// the referencing file. The index must already contain an entry for every
// file in the set, so this runs only after the title pass has finished.
func RewriteLinks(body string, dir m.Path, index *TitleIndex) string {
	body = inlineLinks.ReplaceAllStringFunc(body, func(link string) string {
		parts := inlineLinks.FindStringSubmatch(link)

		return "[" + parts[1] + "](" + rewriteTarget(parts[2], dir, index) + ")"
	})

	return refDefLinks.ReplaceAllStringFunc(body, func(def string) string {
		parts := refDefLinks.FindStringSubmatch(def)

		return parts[1] + rewriteTarget(parts[2], dir, index)
	})
}

// rewriteTarget maps one link target to its new anchor. External links pass
// through, targets carrying a fragment keep the fragment alone, and anything
// the index cannot resolve collapses to an empty target rather than failing
// the run.
func rewriteTarget(target string, dir m.Path, index *TitleIndex) string {
	if strings.HasPrefix(target, "http") {
		return target
	}

	resolved := filepath.Join(string(dir), filepath.FromSlash(target))

	if i := strings.Index(resolved, "#"); i >= 0 {
		return resolved[i:]
	}

	entry, ok := index.Get(m.Path(resolved))
	if !ok {
		return ""
	}

	return "#" + Slug(entry.Title)
}
