package cmd

const rootLongDescription = `Mdbundle concatenates the markdown files found under one or more
directories (or given as file arguments) into a single document written to
standard output.

Heading levels are renumbered so nested content sits below its section,
section titles can be synthesized from directory and file names or a
front-matter key, cross-file links are rewritten to in-document anchors, and
an optional global title and table of contents are prepended.`

const listLongDescription = `List the files a bundle would include, together with the title and
heading level each one would be assigned. Nothing is concatenated; use this
as a dry run to check include and ignore globs.`

const previewLongDescription = `Run the full concatenation and open the result in an interactive pager
instead of writing it to standard output. Press q to quit.`
