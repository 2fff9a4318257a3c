package parser

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// FrontMatter 是 weave 输出的 Markdown 头部
type FrontMatter struct {
	Language string         `yaml:"language"`
	Title    string         `yaml:"title,omitempty"`
	Custom   map[string]any `yaml:",inline"`
}

// ParseFrontMatter extracts the YAML frontmatter and returns the Markdown
// body without delimiters. Sources without frontmatter return a zero
// FrontMatter and the full body.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, body, nil
}

// RenderFrontMatter renders the "---" delimited header block.
func RenderFrontMatter(meta FrontMatter) ([]byte, error) {
	out, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("render frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(out)
	buf.WriteString("---\n")
	return buf.Bytes(), nil
}
