package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/mdbundle/internal/model"
)

// Errors raised on title-index invariant violations. Both indicate a
// pass-ordering bug in the driver, never bad user input.
var (
	ErrDuplicateTitle = errors.New("title already recorded for path")
	ErrTitleNotFound  = errors.New("no title recorded for path")
)

// TitleIndex maps absolute file and directory paths to the titles assigned
// during the first pass. Entries are append-only within one run; membership
// doubles as the visited set for first-encounter directory titling.
type TitleIndex struct {
	entries map[m.Path]m.TitleEntry
}

// NewTitleIndex creates an empty index for one bundle run.
func NewTitleIndex() *TitleIndex {
	return &TitleIndex{entries: make(map[m.Path]m.TitleEntry)}
}

// Put records the entry for a path. Recording the same path twice is an
// invariant violation and fails rather than overwriting.
func (ix *TitleIndex) Put(entry m.TitleEntry) error {
	if _, ok := ix.entries[entry.Path]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTitle, entry.Path)
	}

	ix.entries[entry.Path] = entry

	return nil
}

// Get returns the entry recorded for path.
func (ix *TitleIndex) Get(path m.Path) (m.TitleEntry, bool) {
	entry, ok := ix.entries[path]

	return entry, ok
}

// Len reports the number of recorded entries.
func (ix *TitleIndex) Len() int {
	return len(ix.entries)
}

// TitleDeriver assigns a title and heading level to every file and, when
// directory titling is enabled, to each directory ancestor the first time it
// is seen across the whole file set.
type TitleDeriver struct {
	cfg   m.Config
	index *TitleIndex
}

// NewTitleDeriver creates a deriver writing into the provided index.
func NewTitleDeriver(cfg m.Config, index *TitleIndex) *TitleDeriver {
	return &TitleDeriver{cfg: cfg, index: index}
}

// Derive records title entries for doc and its newly-seen directory
// ancestors. It returns the synthesized markdown lines to prefix the body
// with and the heading level assigned to the file's own content.
func (d *TitleDeriver) Derive(doc *m.Document) ([]string, int, error) {
	level := d.cfg.StartTitleLevelAt - 1

	var lines []string

	if d.cfg.DirNameAsTitle {
		dirLines, dirLevel, err := d.deriveDirs(doc, level)
		if err != nil {
			return nil, 0, err
		}

		lines = append(lines, dirLines...)
		level = dirLevel
	}

	title := d.fileTitle(doc)

	var markdown string

	if title != "" {
		level++
		markdown = headingLine(level, title)
	} else {
		// No derivable title: keep the file addressable by emitting an
		// anchor named after its root-relative path. The entry's Title is
		// that same path so link rewriting slugs the identical string.
		rel, err := relativeTo(doc.Root, doc.Path)
		if err != nil {
			return nil, 0, err
		}

		title = rel
		markdown = fmt.Sprintf("<a name=%q></a>", Slug(title))
	}

	entry := m.TitleEntry{Path: doc.Path, Title: title, Level: level, Markdown: markdown}
	if err := d.index.Put(entry); err != nil {
		return nil, 0, err
	}

	lines = append(lines, markdown)

	return lines, level, nil
}

// deriveDirs walks the file's directory ancestors in order, consuming one
// heading level per newly-seen directory. Directories encountered again via
// a later file consume nothing and emit nothing.
func (d *TitleDeriver) deriveDirs(doc *m.Document, level int) ([]string, int, error) {
	rel, err := relativeTo(doc.Root, m.Path(filepath.Dir(string(doc.Path))))
	if err != nil {
		return nil, 0, err
	}

	if rel == "." {
		return nil, level, nil
	}

	var lines []string

	cumulative := string(doc.Root)

	for _, part := range strings.Split(rel, "/") {
		cumulative = filepath.Join(cumulative, part)

		if _, ok := d.index.Get(m.Path(cumulative)); ok {
			continue
		}

		level++
		title := TitleCase(part)
		heading := headingLine(level, title)

		entry := m.TitleEntry{Path: m.Path(cumulative), Title: title, Level: level, Markdown: heading}
		if err := d.index.Put(entry); err != nil {
			return nil, 0, err
		}

		lines = append(lines, heading)
	}

	return lines, level, nil
}

// fileTitle resolves the file's own display title: the configured
// front-matter key wins, then the title-cased file name, then nothing.
func (d *TitleDeriver) fileTitle(doc *m.Document) string {
	if d.cfg.TitleKey != "" {
		if value, ok := doc.Meta[d.cfg.TitleKey]; ok {
			if s := strings.TrimSpace(fmt.Sprint(value)); s != "" {
				return s
			}
		}
	}

	if d.cfg.FileNameAsTitle {
		base := filepath.Base(string(doc.Path))

		return TitleCase(strings.TrimSuffix(base, filepath.Ext(base)))
	}

	return ""
}

func headingLine(level int, title string) string {
	return strings.Repeat("#", level) + " " + title
}

// relativeTo returns target relative to root in slash form.
func relativeTo(root, target m.Path) (string, error) {
	rel, err := filepath.Rel(string(root), string(target))
	if err != nil {
		return "", fmt.Errorf("path %s outside root %s: %w", target, root, err)
	}

	return filepath.ToSlash(rel), nil
}
