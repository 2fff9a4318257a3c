package lpnb

import (
	"fmt"
	"strings"

	"github.com/riverfjs/lpnb-go/internal/buffer"
	"github.com/riverfjs/lpnb-go/internal/parser"
)

// Weave 将 cell 序列渲染为 Markdown 文档
//
// 头部 frontmatter 记录 notebook 语言；Markup cell 原样输出，
// Code cell 输出为带语言标记的围栏代码块。与 .lpnb 不同，
// 每个 Code cell 的语言都会保留。相邻的 Markup cell 之间写入
// parser.CellBreak，ImportMarkdown 据此还原 cell 边界。
func Weave(cells []Cell) ([]byte, error) {
	language := FirstCodeLanguage(cells)

	header, err := parser.RenderFrontMatter(parser.FrontMatter{Language: language})
	if err != nil {
		return nil, err
	}

	buf := buffer.New()
	buf.Write(string(header))
	prevMarkup := false
	for _, c := range cells {
		switch c.Kind {
		case CellKindMarkup:
			if prevMarkup {
				buf.WriteBlock(parser.CellBreak)
			}
			buf.WriteBlock(c.Value)
		case CellKindCode:
			lang := c.LanguageID
			if lang == "" {
				lang = language
			}
			buf.WriteBlock(fenceCode(c.Value, lang))
		default:
			return nil, fmt.Errorf("weave: unknown cell kind %d", int(c.Kind))
		}
		prevMarkup = c.Kind == CellKindMarkup
	}
	return buf.Bytes(), nil
}

// fenceCode 生成围栏代码块，围栏长度大于代码中最长的反引号序列
func fenceCode(code string, language string) string {
	fence := strings.Repeat("`", max(3, longestRun(code, '`')+1))

	var sb strings.Builder
	sb.WriteString(fence)
	sb.WriteString(language)
	sb.WriteByte('\n')
	if code = strings.TrimRight(code, "\n"); code != "" {
		sb.WriteString(code)
		sb.WriteByte('\n')
	}
	sb.WriteString(fence)
	return sb.String()
}

func longestRun(s string, ch byte) int {
	best, cur := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == ch {
			cur++
			if cur > best {
				best = cur
			}
		} else {
			cur = 0
		}
	}
	return best
}

// ImportMarkdown 是 Weave 的逆操作：顶层围栏代码块成为 Code cell，其余文本成为 Markup cell
//
// frontmatter 中的 language 是没有 info 字符串的代码块的默认语言。
// 单独成行的 parser.CellBreak 分隔相邻的 Markup cell。
// 还原并不完全：Markup cell 内的顶层围栏代码块会被拆成独立的 Code cell，
// 空白的 Markup cell 会被丢弃，首尾换行会被去掉。
func ImportMarkdown(source []byte) (*NotebookData, error) {
	meta, body, err := parser.ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	language := meta.Language
	if language == "" {
		language = PlainTextLanguage
	}

	cells := make([]Cell, 0)
	for _, block := range parser.SplitFenced(body) {
		switch block.Kind {
		case parser.BlockMarkup:
			cells = append(cells, NewMarkupCell(block.Text))
		case parser.BlockCode:
			lang := block.Language
			if lang == "" {
				lang = language
			}
			cells = append(cells, NewCodeCell(block.Text, lang))
		}
	}
	return &NotebookData{Cells: cells}, nil
}
