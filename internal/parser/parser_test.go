package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadings(t *testing.T) {
	md := "# Intro\n\ntext\n\n## Setup *fast*\n\n```\n# not a heading\n```\n\n### `code` title\n"
	got := Headings(md)

	require.Len(t, got, 3)
	assert.Equal(t, Heading{Level: 1, Text: "Intro", ID: "intro"}, got[0])
	assert.Equal(t, 2, got[1].Level)
	assert.Equal(t, "Setup fast", got[1].Text)
	assert.Equal(t, "code title", got[2].Text)
}

func TestHeadings_None(t *testing.T) {
	assert.Empty(t, Headings("just a paragraph"))
	assert.Empty(t, Headings(""))
}

func TestSplitFenced(t *testing.T) {
	src := "# Title\n\nIntro text.\n\n```python\nprint(1)\nprint(2)\n```\n\nBetween.\n\n~~~go\nfunc main() {}\n~~~\n"
	blocks := SplitFenced([]byte(src))

	require.Len(t, blocks, 4)
	assert.Equal(t, Block{Kind: BlockMarkup, Text: "# Title\n\nIntro text."}, blocks[0])
	assert.Equal(t, Block{Kind: BlockCode, Text: "print(1)\nprint(2)", Language: "python"}, blocks[1])
	assert.Equal(t, Block{Kind: BlockMarkup, Text: "Between."}, blocks[2])
	assert.Equal(t, Block{Kind: BlockCode, Text: "func main() {}", Language: "go"}, blocks[3])
}

func TestSplitFenced_AdjacentAndUntagged(t *testing.T) {
	src := "```\nx = 1\n```\n```js\ny\n```\n"
	blocks := SplitFenced([]byte(src))

	require.Len(t, blocks, 2)
	assert.Equal(t, Block{Kind: BlockCode, Text: "x = 1"}, blocks[0])
	assert.Equal(t, Block{Kind: BlockCode, Text: "y", Language: "js"}, blocks[1])
}

func TestSplitFenced_LongerFence(t *testing.T) {
	src := "````md\n```inner```\n```\n````\n"
	blocks := SplitFenced([]byte(src))

	require.Len(t, blocks, 1)
	assert.Equal(t, "```inner```\n```", blocks[0].Text)
	assert.Equal(t, "md", blocks[0].Language)
}

func TestSplitFenced_NestedFenceStaysMarkup(t *testing.T) {
	src := "> quoted\n>\n> ```go\n> x\n> ```\n"
	blocks := SplitFenced([]byte(src))

	require.Len(t, blocks, 1)
	assert.Equal(t, BlockMarkup, blocks[0].Kind)
}

func TestSplitFenced_MarkupOnly(t *testing.T) {
	blocks := SplitFenced([]byte("\n\nhello\n\n"))
	require.Len(t, blocks, 1)
	assert.Equal(t, "hello", blocks[0].Text)

	assert.Empty(t, SplitFenced([]byte("  \n")))
}

func TestFrontMatterRoundTrip(t *testing.T) {
	header, err := RenderFrontMatter(FrontMatter{Language: "python"})
	require.NoError(t, err)
	assert.Equal(t, "---\nlanguage: python\n---\n", string(header))

	meta, body, err := ParseFrontMatter(append(header, []byte("\nbody\n")...))
	require.NoError(t, err)
	assert.Equal(t, "python", meta.Language)
	assert.Contains(t, string(body), "body")
}

func TestParseFrontMatter_Absent(t *testing.T) {
	meta, body, err := ParseFrontMatter([]byte("# no header\n"))
	require.NoError(t, err)
	assert.Equal(t, "", meta.Language)
	assert.Equal(t, "# no header\n", string(body))
}

func TestSplitFenced_CellBreak(t *testing.T) {
	src := "A\n\n<!-- cell -->\n\nB\n<!-- cell -->\n<!-- cell -->\n```go\nx\n```\ninline <!-- cell --> stays\n"
	blocks := SplitFenced([]byte(src))

	require.Len(t, blocks, 4)
	assert.Equal(t, Block{Kind: BlockMarkup, Text: "A"}, blocks[0])
	assert.Equal(t, Block{Kind: BlockMarkup, Text: "B"}, blocks[1])
	assert.Equal(t, Block{Kind: BlockCode, Text: "x", Language: "go"}, blocks[2])
	assert.Equal(t, Block{Kind: BlockMarkup, Text: "inline <!-- cell --> stays"}, blocks[3])
}
