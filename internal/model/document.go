package model

// Path represents a file system path.
type Path string

// Source identifies a discovered markdown file together with the root
// directory its relative layout is computed against.
type Source struct {
	Path Path // absolute file path
	Root Path // absolute directory the file was discovered under
}

// Document represents one markdown file flowing through a bundle run.
// It is created by the adapter when the file is read and mutated twice by
// the driver: once when titles are prefixed, once when links are rewritten.
type Document struct {
	Path Path           // absolute file path
	Root Path           // root directory used for relative titles and anchors
	Raw  string         // original content, front matter included
	Meta map[string]any // decoded front matter, empty when absent
	Body string         // working body, owned by the driver for one run
}

// TitleEntry records the title and heading level assigned to a file or
// directory during the first pass. A path is recorded at most once per run.
type TitleEntry struct {
	Path     Path
	Title    string
	Level    int
	Markdown string // rendered heading line, or anchor tag for title-less files
}
