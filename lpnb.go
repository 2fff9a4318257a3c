// Package lpnb 在 literate programming notebook（.lpnb，YAML）与 cell 序列之间互相转换
//
// 磁盘格式：
//
//	metadata:
//	  language: python
//	sections:
//	  - docs: "# Intro"
//	    code: print(1)
//
// 每个 section 最多产生两个 cell：先 Markup（docs），后 Code（code）。
// 序列化时 Markup 只与紧随其后的 Code 配对。
//
// 主要 API：
//   - Serializer.DeserializeNotebook(): bytes → cells
//   - Serializer.SerializeNotebook(): cells → bytes
//   - Tangle() / Weave() / ImportMarkdown(): 源码与 Markdown 导出导入
//
// 示例：
//
//	s := lpnb.NewSerializer()
//	data, _ := s.DeserializeNotebook(ctx, content)
//	for _, cell := range data.Cells {
//	    switch cell.Kind {
//	    case lpnb.CellKindMarkup:
//	        // 渲染文档
//	    case lpnb.CellKindCode:
//	        // 执行代码
//	    }
//	}
package lpnb

import (
	"context"
)

// Deserialize 使用默认选项将 notebook 字节转换为 cell 序列
func Deserialize(ctx context.Context, content []byte, opts ...Option) (*NotebookData, error) {
	return NewSerializer(opts...).DeserializeNotebook(ctx, content)
}

// Serialize 使用默认选项将 cell 序列转换为 notebook 字节
func Serialize(ctx context.Context, data *NotebookData, opts ...Option) ([]byte, error) {
	return NewSerializer(opts...).SerializeNotebook(ctx, data)
}

// Format 将 notebook 规范化：先反序列化再序列化
//
// 格式化会丢弃空 section 和非首个 code cell 的语言信息，
// 与编辑器保存文件时的行为一致。格式化总是使用 strict 模式，
// 无法解析的输入返回 MalformedDocument 错误，而不是被替换为空 notebook。
func Format(ctx context.Context, content []byte, opts ...Option) ([]byte, error) {
	s := NewSerializer(append(opts, WithStrict(true))...)
	data, err := s.DeserializeNotebook(ctx, content)
	if err != nil {
		return nil, err
	}
	return s.SerializeNotebook(ctx, data)
}
