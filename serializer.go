package lpnb

import (
	"bytes"
	"context"
	"strings"
	"unicode/utf8"

	"github.com/riverfjs/lpnb-go/internal/emitter"
	"github.com/riverfjs/lpnb-go/internal/pairing"
	"github.com/riverfjs/lpnb-go/internal/tree"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// NotebookSerializer 是宿主环境调用的接口
type NotebookSerializer interface {
	DeserializeNotebook(ctx context.Context, content []byte) (*NotebookData, error)
	SerializeNotebook(ctx context.Context, data *NotebookData) ([]byte, error)
}

// Serializer 在 .lpnb YAML 与 cell 序列之间转换。
// 它只持有不可变的选项，可以被并发使用。
type Serializer struct {
	opts *Options
}

var _ NotebookSerializer = (*Serializer)(nil)

// NewSerializer creates a Serializer with the given options.
func NewSerializer(opts ...Option) *Serializer {
	return &Serializer{opts: applyOptions(opts...)}
}

// DeserializeNotebook 将 notebook 字节转换为 cell 序列
//
// 解析失败时通过 Notifier 提示一次，并按空文档处理；strict 模式下返回错误。
// ctx 仅为与宿主签名保持一致，转换本身不会阻塞。
func (s *Serializer) DeserializeNotebook(_ context.Context, content []byte) (*NotebookData, error) {
	text := decodeText(content)

	root, err := tree.Parse([]byte(text))
	if err != nil {
		merr := wrapMalformedDocument(err)
		Logger.Warn("notebook yaml parse failed", "error", err)
		if s.opts.Strict {
			return nil, merr
		}
		s.opts.Notifier.ShowErrorMessage("Error parsing notebook YAML: " + err.Error())
		root = nil
	}

	cells := s.extractCells(root)
	Logger.Debug("notebook deserialized", "cells", len(cells))
	return &NotebookData{Cells: cells}, nil
}

func (s *Serializer) extractCells(root *tree.Node) []Cell {
	cells := make([]Cell, 0)

	// 缺失或 null 的根等同于空 mapping；Get 对非 mapping 节点返回 Null
	defaultLang := s.opts.DefaultLanguage
	if lang := root.Path("metadata", "language"); lang.Truthy() {
		defaultLang = lang.Text()
	}

	sections := root.Get("sections")
	if sections.Kind != tree.Sequence {
		return cells
	}

	for _, section := range sections.Items {
		switch section.Kind {
		case tree.Mapping:
			if docs := section.Get("docs"); docs.Truthy() {
				cells = append(cells, Cell{Kind: CellKindMarkup, Value: docs.Text(), LanguageID: s.opts.MarkupLanguage})
			}
			if code := section.Get("code"); code.Truthy() {
				cells = append(cells, Cell{Kind: CellKindCode, Value: code.Text(), LanguageID: defaultLang})
			}
		case tree.Sequence, tree.Scalar, tree.Null:
			// 非 mapping 元素没有 docs/code 字段
		}
	}
	return cells
}

// SerializeNotebook 将 cell 序列转换为 notebook 字节
//
// metadata.language 取第一个 Code cell 的语言；其余 Code cell 的语言不会保存。
func (s *Serializer) SerializeNotebook(_ context.Context, data *NotebookData) ([]byte, error) {
	var cells []Cell
	if data != nil {
		cells = data.Cells
	}

	doc := &Document{
		Metadata: Metadata{Language: FirstCodeLanguage(cells)},
		Sections: pairing.Pair(cells),
	}
	return emitter.Emit(doc)
}

// decodeText 按 UTF-8 解码，去掉 BOM，非法字节替换为 U+FFFD
func decodeText(content []byte) string {
	content = bytes.TrimPrefix(content, utf8BOM)
	if utf8.Valid(content) {
		return string(content)
	}
	return strings.ToValidUTF8(string(content), string(utf8.RuneError))
}
