package model

// Config holds the behavior flags for one bundle run. It is constructed once
// per invocation and read-only thereafter.
type Config struct {
	Title               string   // global title prepended as a level-1 heading
	Toc                 bool     // generate a table of contents
	TocLevel            int      // maximum heading level included in the TOC
	Include             []string // include globs applied to root-relative paths
	Ignore              []string // exclude globs applied to root-relative paths
	DecreaseTitleLevels bool     // shift body headings below the synthesized titles
	StartTitleLevelAt   int      // heading level of the first synthesized title
	JoinString          string   // separator between bundled files
	TitleKey            string   // front-matter key used as the file title
	FileNameAsTitle     bool     // derive file titles from file names
	DirNameAsTitle      bool     // derive section titles from directory names
}

// DefaultInclude is the include set used when none is configured.
var DefaultInclude = []string{"**/*.md"}

// DefaultConfig returns the configuration used when no flags are set.
func DefaultConfig() Config {
	return Config{
		TocLevel:          3,
		Include:           DefaultInclude,
		StartTitleLevelAt: 1,
		JoinString:        "\n",
	}
}
