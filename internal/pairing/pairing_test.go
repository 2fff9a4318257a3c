package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riverfjs/lpnb-go/internal/types"
)

func md(v string) types.Cell {
	return types.Cell{Kind: types.CellKindMarkup, Value: v, LanguageID: types.MarkdownLanguage}
}

func code(v string) types.Cell {
	return types.Cell{Kind: types.CellKindCode, Value: v, LanguageID: "python"}
}

func TestPair(t *testing.T) {
	tests := []struct {
		name  string
		cells []types.Cell
		want  []types.Section
	}{
		{
			name:  "empty",
			cells: nil,
			want:  []types.Section{},
		},
		{
			name:  "markup then code pairs",
			cells: []types.Cell{md("A"), code("x")},
			want:  []types.Section{{Docs: "A", Code: "x"}},
		},
		{
			name:  "two markups stay apart",
			cells: []types.Cell{md("A"), md("B")},
			want:  []types.Section{{Docs: "A"}, {Docs: "B"}},
		},
		{
			name:  "code never pairs backward",
			cells: []types.Cell{code("x"), md("A")},
			want:  []types.Section{{Code: "x"}, {Docs: "A"}},
		},
		{
			name:  "lone code",
			cells: []types.Cell{code("x")},
			want:  []types.Section{{Code: "x"}},
		},
		{
			name:  "consecutive code cells",
			cells: []types.Cell{md("A"), code("x"), code("y")},
			want:  []types.Section{{Docs: "A", Code: "x"}, {Code: "y"}},
		},
		{
			name:  "pairing is strictly adjacent",
			cells: []types.Cell{md("A"), md("B"), code("x")},
			want:  []types.Section{{Docs: "A"}, {Docs: "B", Code: "x"}},
		},
		{
			name:  "mixed sequence",
			cells: []types.Cell{code("a"), md("B"), code("c"), md("D"), md("E"), code("f"), md("G")},
			want: []types.Section{
				{Code: "a"},
				{Docs: "B", Code: "c"},
				{Docs: "D"},
				{Docs: "E", Code: "f"},
				{Docs: "G"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pair(tt.cells))
		})
	}
}

func TestScanner_States(t *testing.T) {
	sc := NewScanner()
	assert.Equal(t, Free, sc.State())

	sc.Feed(md("A"))
	assert.Equal(t, AwaitingPair, sc.State())

	sc.Feed(md("B"))
	assert.Equal(t, AwaitingPair, sc.State(), "a second markup replaces the held one")

	sc.Feed(code("x"))
	assert.Equal(t, Free, sc.State())

	sc.Feed(code("y"))
	assert.Equal(t, Free, sc.State())

	assert.Equal(t, []types.Section{{Docs: "A"}, {Docs: "B", Code: "x"}, {Code: "y"}}, sc.Finish())
	assert.Equal(t, Free, sc.State())
}

func TestScanner_FinishFlushesHeldMarkup(t *testing.T) {
	sc := NewScanner()
	sc.Feed(md("tail"))
	assert.Equal(t, []types.Section{{Docs: "tail"}}, sc.Finish())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "free", Free.String())
	assert.Equal(t, "awaiting_pair", AwaitingPair.String())
	assert.Equal(t, "unknown", State(7).String())
}
