// Package domain implements the markdown concatenation core: title
// derivation, heading shifting, link rewriting and the two-pass driver that
// joins everything into one document.
package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/mdbundle/internal/model"
)

// Concatenator runs the two-pass bundling process over an ordered document
// list. Each run owns its own title index; instances are not reused.
type Concatenator struct {
	cfg m.Config
}

// NewConcatenator creates a driver for the given configuration.
func NewConcatenator(cfg m.Config) *Concatenator {
	return &Concatenator{cfg: cfg}
}

// Bundle produces the final markdown document. Pass 1 assigns titles and
// shifts heading levels for every file before pass 2 rewrites any link,
// because a link may point at a file later in the list.
func (c *Concatenator) Bundle(docs []*m.Document) (string, error) {
	index := NewTitleIndex()
	deriver := NewTitleDeriver(c.cfg, index)

	for _, doc := range docs {
		prefix, level, err := deriver.Derive(doc)
		if err != nil {
			return "", err
		}

		body := doc.Body
		if c.cfg.DecreaseTitleLevels {
			body = ShiftHeadings(body, level)
		}

		if len(prefix) > 0 {
			body = strings.Join(prefix, "\n") + "\n" + body
		}

		doc.Body = body
	}

	for _, doc := range docs {
		if _, ok := index.Get(doc.Path); !ok {
			// Pass 1 recorded an entry for every processed file, so a miss
			// here is a pass-ordering bug, not a recoverable condition.
			return "", fmt.Errorf("%w: %s", ErrTitleNotFound, doc.Path)
		}

		dir := m.Path(filepath.Dir(string(doc.Path)))
		doc.Body = RewriteLinks(doc.Body, dir, index)
	}

	bodies := make([]string, 0, len(docs))
	for _, doc := range docs {
		bodies = append(bodies, doc.Body)
	}

	return WrapDocument(strings.Join(bodies, c.joiner()), c.cfg), nil
}

// Titles runs only the title-assignment pass and returns the resulting
// index, for callers that want the planned structure without the joined
// output. Document bodies are left untouched.
func (c *Concatenator) Titles(docs []*m.Document) (*TitleIndex, error) {
	index := NewTitleIndex()
	deriver := NewTitleDeriver(c.cfg, index)

	for _, doc := range docs {
		if _, _, err := deriver.Derive(doc); err != nil {
			return nil, err
		}
	}

	return index, nil
}

// joiner returns the effective separator: a bare newline by default, custom
// strings wrapped in newlines on both sides.
func (c *Concatenator) joiner() string {
	if c.cfg.JoinString == "" || c.cfg.JoinString == "\n" {
		return "\n"
	}

	return "\n" + c.cfg.JoinString + "\n"
}
