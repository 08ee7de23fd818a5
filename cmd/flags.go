package cmd

import (
	"context"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/mdbundle/internal/model"
)

// bundleFlags collects the configuration flags shared by the bundling
// commands (root, list, preview). Each command owns its own instance.
type bundleFlags struct {
	title               string
	toc                 bool
	tocLevel            int
	include             []string
	ignore              []string
	decreaseTitleLevels bool
	startTitleLevelAt   int
	joinString          string
	titleKey            string
	fileNameAsTitle     bool
	dirNameAsTitle      bool
	parallel            int
}

func (f *bundleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "global title prepended as a level-1 heading")
	cmd.Flags().BoolVar(&f.toc, "toc", false, "generate a table of contents")
	cmd.Flags().IntVar(&f.tocLevel, "toc-level", 3, "maximum heading level included in the table of contents")
	cmd.Flags().StringArrayVarP(&f.include, "include", "i", m.DefaultInclude, "include files matching glob (can be repeated)")
	cmd.Flags().StringArrayVarP(&f.ignore, "ignore", "x", nil, "exclude files matching glob (can be repeated)")
	cmd.Flags().BoolVar(&f.decreaseTitleLevels, "decrease-title-levels", false, "shift body headings below the synthesized titles")
	cmd.Flags().IntVar(&f.startTitleLevelAt, "start-title-level-at", 1, "heading level of the first synthesized title")
	cmd.Flags().StringVar(&f.joinString, "join-string", "\n", "string used to join bundled files")
	cmd.Flags().StringVar(&f.titleKey, "title-key", "", "front-matter key used as the file title")
	cmd.Flags().BoolVar(&f.fileNameAsTitle, "file-name-as-title", false, "derive file titles from file names")
	cmd.Flags().BoolVar(&f.dirNameAsTitle, "dir-name-as-title", false, "derive section titles from directory names")
	cmd.Flags().IntVarP(&f.parallel, "parallel", "p", 4, "number of concurrent file reads")
}

func (f *bundleFlags) config() m.Config {
	return m.Config{
		Title:               f.title,
		Toc:                 f.toc,
		TocLevel:            f.tocLevel,
		Include:             f.include,
		Ignore:              f.ignore,
		DecreaseTitleLevels: f.decreaseTitleLevels,
		StartTitleLevelAt:   f.startTitleLevelAt,
		JoinString:          f.joinString,
		TitleKey:            f.titleKey,
		FileNameAsTitle:     f.fileNameAsTitle,
		DirNameAsTitle:      f.dirNameAsTitle,
	}
}

// loadDocuments runs discovery and the concurrent reads for the given
// positional arguments.
func loadDocuments(ctx context.Context, args []string, f *bundleFlags) ([]*m.Document, error) {
	roots := make([]m.Path, 0, len(args))
	for _, arg := range args {
		roots = append(roots, m.Path(arg))
	}

	sources, err := fsAdapter.Discover(roots, f.include, f.ignore)
	if err != nil {
		return nil, err
	}

	return fsAdapter.ReadDocuments(ctx, sources, f.parallel)
}
