package domain

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	m "github.com/mouse-blink/mdbundle/internal/model"
)

// Marker lines delimiting the generated table of contents. The region
// between them is regenerated on every run.
const (
	TocStartMarker = "<!-- toc -->"
	TocEndMarker   = "<!-- tocstop -->"
)

// WrapDocument applies the optional global title and table of contents to
// the joined document. With neither requested the content passes through
// unchanged. The title heading always precedes the marker pair.
func WrapDocument(content string, cfg m.Config) string {
	if cfg.Title == "" && !cfg.Toc {
		return content
	}

	if cfg.Toc && !strings.Contains(content, TocStartMarker) {
		content = TocStartMarker + "\n\n" + TocEndMarker + "\n" + content
	}

	if cfg.Title != "" {
		content = "# " + cfg.Title + "\n" + content
	}

	if cfg.Toc {
		content = insertToc(content, cfg.TocLevel)
	}

	return content
}

// insertToc regenerates the region between the TOC markers from the
// document's headings. When no headings are found the markers stay in place
// as empty placeholders.
func insertToc(content string, maxLevel int) string {
	start := strings.Index(content, TocStartMarker)
	end := strings.Index(content, TocEndMarker)

	if start < 0 || end < 0 || end < start {
		return content
	}

	toc := renderToc(collectHeadings([]byte(content), maxLevel))
	if toc == "" {
		return content
	}

	return content[:start+len(TocStartMarker)] + "\n\n" + toc + "\n" + content[end:]
}

type tocHeading struct {
	level int
	text  string
}

// collectHeadings parses the document with goldmark and returns every
// heading up to maxLevel in document order. Parsing rather than scanning
// lines keeps fenced code blocks from contributing entries.
func collectHeadings(source []byte, maxLevel int) []tocHeading {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var headings []tocHeading

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok || h.Level > maxLevel {
			continue
		}

		headings = append(headings, tocHeading{level: h.Level, text: string(h.Text(source))})
	}

	return headings
}

// renderToc builds the nested link list. Repeated heading slugs receive
// -1, -2, ... suffixes matching the anchors GitHub assigns to duplicates.
func renderToc(headings []tocHeading) string {
	if len(headings) == 0 {
		return ""
	}

	top := headings[0].level
	for _, h := range headings {
		if h.level < top {
			top = h.level
		}
	}

	seen := make(map[string]int, len(headings))

	var b strings.Builder

	for _, h := range headings {
		anchor := Slug(h.text)
		if n := seen[anchor]; n > 0 {
			seen[anchor]++
			anchor = fmt.Sprintf("%s-%d", anchor, n)
		} else {
			seen[anchor] = 1
		}

		indent := strings.Repeat("  ", h.level-top)
		fmt.Fprintf(&b, "%s- [%s](#%s)\n", indent, h.text, anchor)
	}

	return b.String()
}
