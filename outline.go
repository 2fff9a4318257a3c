package lpnb

import (
	"strings"

	"github.com/riverfjs/lpnb-go/internal/parser"
)

// Heading 是 Markup cell 中的一个标题
type Heading struct {
	Cell  int    `json:"cell"`
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id,omitempty"`
}

// Outline returns the headings of all markup cells in document order.
func Outline(cells []Cell) []Heading {
	headings := make([]Heading, 0)
	for i, c := range cells {
		if c.Kind != CellKindMarkup {
			continue
		}
		for _, h := range parser.Headings(c.Value) {
			headings = append(headings, Heading{Cell: i, Level: h.Level, Text: h.Text, ID: h.ID})
		}
	}
	return headings
}

// Stats 统计 notebook 中的 cell 数量与代码行数
type Stats struct {
	MarkupCells int `json:"markupCells"`
	CodeCells   int `json:"codeCells"`
	CodeLines   int `json:"codeLines"`
}

// CountCells computes Stats for cells.
func CountCells(cells []Cell) Stats {
	var st Stats
	for _, c := range cells {
		switch c.Kind {
		case CellKindMarkup:
			st.MarkupCells++
		case CellKindCode:
			st.CodeCells++
			if v := strings.TrimRight(c.Value, "\n"); v != "" {
				st.CodeLines += strings.Count(v, "\n") + 1
			}
		}
	}
	return st
}
