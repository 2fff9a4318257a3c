package emitter

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/riverfjs/lpnb-go/internal/types"
)

// Indent YAML 缩进宽度
const Indent = 2

// Emit 将 Document 编码为 YAML 字节
func Emit(doc *types.Document) ([]byte, error) {
	if doc.Sections == nil {
		doc.Sections = []types.Section{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(Indent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("emit notebook: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("emit notebook: %w", err)
	}
	return buf.Bytes(), nil
}
