package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	if args == nil {
		args = []string{}
	}

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return buf.String(), err
}

func TestRootCmdBundlesDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.md", "# A\n")
	writeFixture(t, dir, "sub/b.md", "[link](../a.md)")

	out, err := runCommand(t, newRootCmd(),
		"--file-name-as-title", "--dir-name-as-title", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "# Sub")
	assert.Contains(t, out, "## B")
	assert.Contains(t, out, "# A")
	assert.Contains(t, out, "[link](#a)")
}

func TestRootCmdFrontMatterTitleKey(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.md", "---\ntitle: From Meta\n---\nbody\n")

	out, err := runCommand(t, newRootCmd(), "--title-key", "title", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "# From Meta")
	assert.NotContains(t, out, "---")
}

func TestRootCmdTocAndTitle(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.md", "content\n")

	out, err := runCommand(t, newRootCmd(),
		"--title", "Handbook", "--toc", "--file-name-as-title", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "# Handbook")
	assert.Contains(t, out, "<!-- toc -->")
	assert.Contains(t, out, "- [Handbook](#handbook)")
}

func TestRootCmdRequiresPathArgument(t *testing.T) {
	_, err := runCommand(t, newRootCmd())
	require.Error(t, err)
}

func TestRootCmdMissingPathFails(t *testing.T) {
	_, err := runCommand(t, newRootCmd(), "/definitely/not/there")
	require.Error(t, err)
}

func TestRootCmdFlagDefaults(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "3", cmd.Flags().Lookup("toc-level").DefValue)
	assert.Equal(t, "1", cmd.Flags().Lookup("start-title-level-at").DefValue)
	assert.Equal(t, "false", cmd.Flags().Lookup("toc").DefValue)
	assert.Equal(t, "4", cmd.Flags().Lookup("parallel").DefValue)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
}

func TestFormatError(t *testing.T) {
	inner := errors.New("root cause")
	wrapped := fmt.Errorf("outer context: %w", inner)

	assert.Equal(t, "outer context: root cause", formatError(wrapped, false))

	debug := formatError(wrapped, true)
	assert.Contains(t, debug, "outer context: root cause")
	assert.Contains(t, debug, "caused by: root cause")
}
