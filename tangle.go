package lpnb

import (
	"strings"

	"github.com/riverfjs/lpnb-go/internal/util"
)

// TangleResult 是 tangle 的输出：所有 Code cell 拼接成的源码
type TangleResult struct {
	Language string
	Ext      string
	Source   string
	Cells    int
}

// Filename returns the tangled file name derived from the notebook path.
func (r TangleResult) Filename(notebookPath string) string {
	return util.TangleFilename(notebookPath, r.Language)
}

// Tangle 按顺序拼接 Code cell，cell 之间以一个空行分隔
//
// language 为空时取第一个 Code cell 的语言并包含全部 Code cell；
// 否则只包含 LanguageID 等于 language 的 cell。
func Tangle(cells []Cell, language string) TangleResult {
	all := language == ""
	if all {
		language = FirstCodeLanguage(cells)
	}

	parts := make([]string, 0)
	for _, c := range cells {
		if c.Kind != CellKindCode {
			continue
		}
		if !all && c.LanguageID != language {
			continue
		}
		parts = append(parts, strings.TrimRight(c.Value, "\n")+"\n")
	}

	return TangleResult{
		Language: language,
		Ext:      util.GetExt(language),
		Source:   strings.Join(parts, "\n"),
		Cells:    len(parts),
	}
}
