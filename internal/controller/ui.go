// Package controller provides the output surfaces of the mdbundle CLI.
package controller

// Listing is one row of the discovery dry-run: a file plus the title and
// heading level the bundle would assign to it.
type Listing struct {
	Path  string
	Title string
	Level int
}

// UI renders command results. Implementations choose the medium (plain
// writer output or an interactive pager).
type UI interface {
	DisplayListing(listings []Listing) error
	DisplayDocument(content string) error
}
