package pairing

import (
	"github.com/riverfjs/lpnb-go/internal/types"
)

// State 扫描器状态
type State int

const (
	// Free: no markup cell is waiting for a partner.
	Free State = iota
	// AwaitingPair: a markup cell is held and may pair with the next code cell.
	AwaitingPair
)

// String returns the string representation of State.
func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case AwaitingPair:
		return "awaiting_pair"
	default:
		return "unknown"
	}
}

// Scanner 将 cell 序列按"紧邻贪心"规则配对成 section
//
// 规则：
//   - Markup 之后紧跟 Code => 一个 section {docs, code}
//   - Markup 之后是 Markup 或结尾 => {docs, ""}
//   - 未被配对的 Code => {"", code}
//
// Code 永远不会向前配对。
type Scanner struct {
	state    State
	held     string
	sections []types.Section
}

// NewScanner creates a scanner in the Free state.
func NewScanner() *Scanner {
	return &Scanner{
		state:    Free,
		sections: make([]types.Section, 0),
	}
}

// State returns the current scanner state.
func (s *Scanner) State() State {
	return s.state
}

// Feed consumes one cell.
func (s *Scanner) Feed(cell types.Cell) {
	switch s.state {
	case Free:
		if cell.Kind == types.CellKindMarkup {
			s.hold(cell.Value)
			return
		}
		s.emit(types.Section{Code: cell.Value})
	case AwaitingPair:
		if cell.Kind == types.CellKindMarkup {
			s.emit(types.Section{Docs: s.held})
			s.hold(cell.Value)
			return
		}
		s.emit(types.Section{Docs: s.held, Code: cell.Value})
		s.release()
	}
}

// Finish flushes a held markup cell and returns the sections built so far.
func (s *Scanner) Finish() []types.Section {
	if s.state == AwaitingPair {
		s.emit(types.Section{Docs: s.held})
		s.release()
	}
	return s.sections
}

func (s *Scanner) hold(docs string) {
	s.held = docs
	s.state = AwaitingPair
}

func (s *Scanner) release() {
	s.held = ""
	s.state = Free
}

func (s *Scanner) emit(section types.Section) {
	s.sections = append(s.sections, section)
}

// Pair runs a fresh Scanner over cells.
func Pair(cells []types.Cell) []types.Section {
	sc := NewScanner()
	for _, c := range cells {
		sc.Feed(c)
	}
	return sc.Finish()
}
