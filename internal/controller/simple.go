package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var summaryStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("6")).
	Bold(true)

// SimpleUI implements UI by writing plain text through the cobra Command's
// output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayListing prints the discovered files with their derived titles and
// levels as a table, followed by a styled summary line.
func (s *SimpleUI) DisplayListing(listings []Listing) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Title", "Level"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, l := range listings {
		table.Append([]string{l.Path, l.Title, strconv.Itoa(l.Level)})
	}

	table.Render()

	s.printf("%s\n", tableBuffer.String())
	s.printf("%s\n", summaryStyle.Render(fmt.Sprintf("%d file(s) ready to bundle", len(listings))))

	return nil
}

// DisplayDocument writes the bundled document as-is.
func (s *SimpleUI) DisplayDocument(content string) error {
	_, err := fmt.Fprint(s.cmd.OutOrStdout(), content)

	return err
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
