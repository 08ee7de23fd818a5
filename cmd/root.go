// Package cmd provides the root command and CLI setup for mdbundle.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/mdbundle/internal/adapter"
	"github.com/mouse-blink/mdbundle/internal/controller"
	"github.com/mouse-blink/mdbundle/internal/domain"
)

var fsAdapter adapter.DocumentFSAdapter

func init() {
	fsAdapter = adapter.NewLocalDocumentFSAdapter()
}

var debugFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	flags := &bundleFlags{}

	cmd := &cobra.Command{
		Use:           "mdbundle [paths...]",
		Short:         "Concatenate markdown files into a single document",
		Long:          rootLongDescription,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := loadDocuments(cmd.Context(), args, flags)
			if err != nil {
				return err
			}

			out, err := domain.NewConcatenator(flags.config()).Bundle(docs)
			if err != nil {
				return err
			}

			return controller.NewSimpleUI(cmd).DisplayDocument(out)
		},
	}

	flags.register(cmd)
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "print the full error chain on failure")

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mdbundle: %s\n", formatError(err, debugFlag))
		os.Exit(1)
	}
}

// formatError renders the short message by default and the full unwrap chain
// in debug mode.
func formatError(err error, debug bool) string {
	if !debug {
		return err.Error()
	}

	var b strings.Builder

	for e := err; e != nil; e = errors.Unwrap(e) {
		if b.Len() > 0 {
			b.WriteString("\n  caused by: ")
		}

		b.WriteString(e.Error())
	}

	return b.String()
}
