package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/mdbundle/internal/controller"
	"github.com/mouse-blink/mdbundle/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	flags := &bundleFlags{}

	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List the files a bundle would include",
		Long:  listLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := loadDocuments(cmd.Context(), args, flags)
			if err != nil {
				return err
			}

			index, err := domain.NewConcatenator(flags.config()).Titles(docs)
			if err != nil {
				return err
			}

			listings := make([]controller.Listing, 0, len(docs))

			for _, doc := range docs {
				entry, ok := index.Get(doc.Path)
				if !ok {
					return fmt.Errorf("no title derived for %s", doc.Path)
				}

				display := string(doc.Path)
				if rel, err := filepath.Rel(string(doc.Root), string(doc.Path)); err == nil {
					display = rel
				}

				listings = append(listings, controller.Listing{
					Path:  display,
					Title: entry.Title,
					Level: entry.Level,
				})
			}

			return controller.NewSimpleUI(cmd).DisplayListing(listings)
		},
	}

	flags.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
