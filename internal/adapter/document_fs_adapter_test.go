package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/mdbundle/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDiscoverMatchesDefaultIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "# A\n")
	writeFile(t, dir, "sub/b.md", "b\n")
	writeFile(t, dir, "sub/c.txt", "not markdown\n")

	a := NewLocalDocumentFSAdapter()

	sources, err := a.Discover([]m.Path{m.Path(dir)}, nil, nil)
	require.NoError(t, err)

	require.Len(t, sources, 2)
	assert.Equal(t, m.Path(filepath.Join(dir, "a.md")), sources[0].Path)
	assert.Equal(t, m.Path(filepath.Join(dir, "sub", "b.md")), sources[1].Path)
	assert.Equal(t, m.Path(dir), sources[0].Root)
}

func TestDiscoverHonorsIgnoreGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "a\n")
	writeFile(t, dir, "sub/b.md", "b\n")

	a := NewLocalDocumentFSAdapter()

	sources, err := a.Discover([]m.Path{m.Path(dir)}, nil, []string{"sub/**"})
	require.NoError(t, err)

	require.Len(t, sources, 1)
	assert.Equal(t, m.Path(filepath.Join(dir, "a.md")), sources[0].Path)
}

func TestDiscoverFileArgumentTakenAsIs(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "single.md", "s\n")

	a := NewLocalDocumentFSAdapter()

	sources, err := a.Discover([]m.Path{m.Path(path)}, nil, nil)
	require.NoError(t, err)

	require.Len(t, sources, 1)
	assert.Equal(t, m.Path(path), sources[0].Path)
	assert.Equal(t, m.Path(dir), sources[0].Root)
}

func TestDiscoverDeduplicatesAcrossRoots(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "a\n")

	a := NewLocalDocumentFSAdapter()

	sources, err := a.Discover([]m.Path{m.Path(dir), m.Path(dir)}, nil, nil)
	require.NoError(t, err)
	assert.Len(t, sources, 1)
}

func TestDiscoverMissingRootFails(t *testing.T) {
	a := NewLocalDocumentFSAdapter()

	_, err := a.Discover([]m.Path{"/definitely/not/there"}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root path error")
}

func TestDiscoverRejectsBadGlob(t *testing.T) {
	dir := t.TempDir()

	a := NewLocalDocumentFSAdapter()

	_, err := a.Discover([]m.Path{m.Path(dir)}, []string{"[unclosed"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad glob")
}

func TestReadDocumentsSplitsFrontMatter(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.md", "---\ntitle: Hello\n---\nbody text\n")

	a := NewLocalDocumentFSAdapter()

	docs, err := a.ReadDocuments(context.Background(), []m.Source{{Path: m.Path(path), Root: m.Path(dir)}}, 2)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, "Hello", docs[0].Meta["title"])
	assert.Contains(t, docs[0].Body, "body text")
	assert.NotContains(t, docs[0].Body, "---")
	assert.Contains(t, docs[0].Raw, "title: Hello")
}

func TestReadDocumentsWithoutFrontMatter(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.md", "plain body\n")

	a := NewLocalDocumentFSAdapter()

	docs, err := a.ReadDocuments(context.Background(), []m.Source{{Path: m.Path(path), Root: m.Path(dir)}}, 1)
	require.NoError(t, err)

	assert.Empty(t, docs[0].Meta)
	assert.Equal(t, "plain body\n", docs[0].Body)
}

func TestReadDocumentsPreservesOrder(t *testing.T) {
	dir := t.TempDir()

	sources := make([]m.Source, 0, 8)

	for _, name := range []string{"e.md", "a.md", "g.md", "c.md", "b.md", "f.md", "d.md", "h.md"} {
		path := writeFile(t, dir, name, name+"\n")
		sources = append(sources, m.Source{Path: m.Path(path), Root: m.Path(dir)})
	}

	a := NewLocalDocumentFSAdapter()

	docs, err := a.ReadDocuments(context.Background(), sources, 4)
	require.NoError(t, err)
	require.Len(t, docs, len(sources))

	for i, src := range sources {
		assert.Equal(t, src.Path, docs[i].Path)
	}
}

func TestReadDocumentsMissingFileFails(t *testing.T) {
	a := NewLocalDocumentFSAdapter()

	_, err := a.ReadDocuments(context.Background(), []m.Source{{Path: "/nope.md", Root: "/"}}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read /nope.md")
}
