package lpnb

import (
	"github.com/riverfjs/lpnb-go/internal/types"
)

// CellKind 区分 Markup cell 与 Code cell
type CellKind = types.CellKind

// Cell 是 notebook 中的一个单元：类型、文本和语言
type Cell = types.Cell

// Section 是 .lpnb 文件中的一个 docs/code 段落
type Section = types.Section

// Metadata 是 .lpnb 文件的 metadata 块
type Metadata = types.Metadata

// Document 是 .lpnb 文件的完整结构
type Document = types.Document

const (
	// CellKindMarkup marks a documentation cell.
	CellKindMarkup = types.CellKindMarkup
	// CellKindCode marks a source code cell.
	CellKindCode = types.CellKindCode

	// PlainTextLanguage is used when a notebook declares no language.
	PlainTextLanguage = types.PlainTextLanguage
	// MarkdownLanguage is the language id given to markup cells.
	MarkdownLanguage = types.MarkdownLanguage
)

// NotebookData 是交给宿主环境的 cell 列表
type NotebookData struct {
	Cells []Cell `json:"cells"`
}

// NewMarkupCell creates a markup cell tagged as markdown.
func NewMarkupCell(value string) Cell {
	return Cell{Kind: CellKindMarkup, Value: value, LanguageID: MarkdownLanguage}
}

// NewCodeCell creates a code cell.
func NewCodeCell(value string, languageID string) Cell {
	return Cell{Kind: CellKindCode, Value: value, LanguageID: languageID}
}

// FirstCodeLanguage returns the language of the first code cell, or
// PlainTextLanguage when there is none or it has no language.
func FirstCodeLanguage(cells []Cell) string {
	for _, c := range cells {
		if c.Kind != CellKindCode {
			continue
		}
		if c.LanguageID != "" {
			return c.LanguageID
		}
		break
	}
	return PlainTextLanguage
}
