package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/mdbundle/internal/controller"
	"github.com/mouse-blink/mdbundle/internal/domain"
)

// newPreviewUI builds the pager surface; swapped out in tests.
var newPreviewUI = func(title string) controller.UI {
	return controller.NewPagerUI(title)
}

// previewCmd represents the preview command.
var previewCmd = newPreviewCmd()

func newPreviewCmd() *cobra.Command {
	flags := &bundleFlags{}

	cmd := &cobra.Command{
		Use:   "preview [paths...]",
		Short: "Preview the bundled document in an interactive pager",
		Long:  previewLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := loadDocuments(cmd.Context(), args, flags)
			if err != nil {
				return err
			}

			out, err := domain.NewConcatenator(flags.config()).Bundle(docs)
			if err != nil {
				return err
			}

			title := flags.title
			if title == "" {
				title = "mdbundle preview"
			}

			return newPreviewUI(title).DisplayDocument(out)
		},
	}

	flags.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
