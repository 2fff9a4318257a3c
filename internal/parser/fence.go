package parser

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// BlockKind 区分 Markdown 正文与围栏代码块
type BlockKind int

const (
	BlockMarkup BlockKind = iota + 1
	BlockCode
)

// Block 是 SplitFenced 的输出单元
type Block struct {
	Kind     BlockKind
	Text     string
	Language string
}

type fenceRange struct {
	start, end int // 字节范围，包含开闭围栏行
	code       string
	language   string
}

// SplitFenced 将 Markdown 按顶层围栏代码块切分
//
// 顶层 ``` / ~~~ 代码块成为 BlockCode，代码块之间的原始文本成为 BlockMarkup。
// 正文中单独成行的 CellBreak 把正文切成多个 BlockMarkup。
// 嵌套在列表或引用中的代码块保留在正文里。
func SplitFenced(source []byte) []Block {
	doc := ParseAST(source)

	fences := make([]fenceRange, 0)
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		fb, ok := c.(*ast.FencedCodeBlock)
		if !ok {
			continue
		}
		if r, ok := locateFence(fb, source); ok {
			fences = append(fences, r)
		}
	}

	blocks := make([]Block, 0, len(fences)*2+1)
	cursor := 0
	for _, f := range fences {
		blocks = appendMarkup(blocks, source[cursor:f.start])
		blocks = append(blocks, Block{Kind: BlockCode, Text: f.code, Language: f.language})
		cursor = f.end
	}
	blocks = appendMarkup(blocks, source[cursor:])
	return blocks
}

// CellBreak 分隔相邻的正文块，单独成行时 SplitFenced 在此处切分
const CellBreak = "<!-- cell -->"

func appendMarkup(blocks []Block, raw []byte) []Block {
	var part strings.Builder
	for _, line := range strings.SplitAfter(string(raw), "\n") {
		if strings.TrimSpace(line) == CellBreak {
			blocks = appendMarkupPart(blocks, part.String())
			part.Reset()
			continue
		}
		part.WriteString(line)
	}
	return appendMarkupPart(blocks, part.String())
}

func appendMarkupPart(blocks []Block, raw string) []Block {
	s := strings.Trim(raw, "\r\n")
	if strings.TrimSpace(s) == "" {
		return blocks
	}
	return append(blocks, Block{Kind: BlockMarkup, Text: s})
}

// locateFence 找到围栏代码块在源码中的完整范围
//
// goldmark 只记录代码内容行和 info 字符串的位置，开闭围栏行需要从这两者推算。
// 无 info 且无内容的代码块无法定位，返回 false，留在正文中。
func locateFence(fb *ast.FencedCodeBlock, source []byte) (fenceRange, bool) {
	lines := fb.Lines()

	var openStart int
	switch {
	case fb.Info != nil:
		openStart = lineStart(source, fb.Info.Segment.Start)
	case lines.Len() > 0:
		first := lineStart(source, lines.At(0).Start)
		if first == 0 {
			return fenceRange{}, false
		}
		openStart = lineStart(source, first-1)
	default:
		return fenceRange{}, false
	}

	fenceChar, fenceLen := fenceMarker(source[openStart:lineEnd(source, openStart)])
	if fenceLen == 0 {
		return fenceRange{}, false
	}

	var code bytes.Buffer
	contentEnd := lineEnd(source, openStart)
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(source))
		contentEnd = lineEnd(source, seg.Start)
	}

	end := contentEnd
	if contentEnd < len(source) {
		next := lineEnd(source, contentEnd)
		if isClosingFence(source[contentEnd:next], fenceChar, fenceLen) {
			end = next
		}
	}

	return fenceRange{
		start:    openStart,
		end:      end,
		code:     strings.TrimSuffix(code.String(), "\n"),
		language: string(fb.Language(source)),
	}, true
}

func lineStart(source []byte, pos int) int {
	if pos > len(source) {
		pos = len(source)
	}
	i := bytes.LastIndexByte(source[:pos], '\n')
	return i + 1
}

// lineEnd 返回 pos 所在行之后下一行的起始位置
func lineEnd(source []byte, pos int) int {
	if pos >= len(source) {
		return len(source)
	}
	i := bytes.IndexByte(source[pos:], '\n')
	if i < 0 {
		return len(source)
	}
	return pos + i + 1
}

func fenceMarker(line []byte) (byte, int) {
	trimmed := bytes.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 || len(trimmed) == 0 {
		return 0, 0
	}
	ch := trimmed[0]
	if ch != '`' && ch != '~' {
		return 0, 0
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == ch {
		n++
	}
	if n < 3 {
		return 0, 0
	}
	return ch, n
}

func isClosingFence(line []byte, ch byte, minLen int) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) < minLen {
		return false
	}
	for _, b := range trimmed {
		if b != ch {
			return false
		}
	}
	return true
}
