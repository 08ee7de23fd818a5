// Package adapter contains filesystem and front-matter plumbing for the
// mdbundle CLI.
package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/mdbundle/internal/model"
)

// DocumentFSAdapter abstracts discovery and reading of markdown sources so
// the domain layer never touches the disk directly.
type DocumentFSAdapter interface {
	// Discover walks the given roots and returns the absolute paths of all
	// files matching the include globs and none of the ignore globs, in walk
	// order, de-duplicated across roots. A root that is itself a file is
	// included regardless of the include set.
	Discover(roots []m.Path, include, ignore []string) ([]m.Source, error)

	// ReadDocuments loads the sources and splits front matter. Reads may run
	// concurrently up to the worker limit; the returned slice preserves the
	// order of sources regardless of completion order.
	ReadDocuments(ctx context.Context, sources []m.Source, workers int) ([]*m.Document, error)
}

// LocalDocumentFSAdapter is the disk-backed implementation used by the CLI.
type LocalDocumentFSAdapter struct{}

// NewLocalDocumentFSAdapter constructs a LocalDocumentFSAdapter ready to be
// wired into the commands.
func NewLocalDocumentFSAdapter() *LocalDocumentFSAdapter {
	return &LocalDocumentFSAdapter{}
}

// Discover implements DocumentFSAdapter.
func (a *LocalDocumentFSAdapter) Discover(roots []m.Path, include, ignore []string) ([]m.Source, error) {
	if len(include) == 0 {
		include = m.DefaultInclude
	}

	includes, err := compileGlobs(include)
	if err != nil {
		return nil, err
	}

	ignores, err := compileGlobs(ignore)
	if err != nil {
		return nil, err
	}

	seen := make(map[m.Path]struct{})

	var sources []m.Source

	add := func(path, root string) {
		if _, ok := seen[m.Path(path)]; ok {
			return
		}

		seen[m.Path(path)] = struct{}{}
		sources = append(sources, m.Source{Path: m.Path(path), Root: m.Path(root)})
	}

	for _, root := range roots {
		abs, err := filepath.Abs(string(root))
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			add(abs, filepath.Dir(abs))

			continue
		}

		err = filepath.Walk(abs, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				return nil
			}

			rel, err := filepath.Rel(abs, path)
			if err != nil {
				return err
			}

			rel = filepath.ToSlash(rel)

			if !matchAny(includes, rel) || matchAny(ignores, rel) {
				return nil
			}

			add(path, abs)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

// ReadDocuments implements DocumentFSAdapter.
func (a *LocalDocumentFSAdapter) ReadDocuments(ctx context.Context, sources []m.Source, workers int) ([]*m.Document, error) {
	if workers < 1 {
		workers = 1
	}

	docs := make([]*m.Document, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			raw, err := os.ReadFile(string(src.Path))
			if err != nil {
				return fmt.Errorf("read %s: %w", src.Path, err)
			}

			meta, body, err := SplitFrontMatter(raw)
			if err != nil {
				return fmt.Errorf("front matter in %s: %w", src.Path, err)
			}

			docs[i] = &m.Document{
				Path: src.Path,
				Root: src.Root,
				Raw:  string(raw),
				Meta: meta,
				Body: body,
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}

		globs = append(globs, g)
	}

	return globs, nil
}

// matchAny tests rel against every glob, also with a leading slash so that
// "**/"-prefixed patterns cover files sitting directly in the root.
func matchAny(globs []glob.Glob, rel string) bool {
	for _, g := range globs {
		if g.Match(rel) || g.Match("/"+rel) {
			return true
		}
	}

	return false
}
