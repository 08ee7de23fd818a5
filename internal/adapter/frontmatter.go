package adapter

import (
	"bytes"

	"github.com/adrg/frontmatter"
)

// SplitFrontMatter separates a leading YAML front-matter block from the
// markdown body. Files without a block come back with empty metadata and the
// body unchanged.
func SplitFrontMatter(source []byte) (map[string]any, string, error) {
	meta := map[string]any{}

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, "", err
	}

	return meta, string(body), nil
}
