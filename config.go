package lpnb

import (
	"sync"
)

// NotebookType 是注册到宿主环境的 notebook 类型名
const NotebookType = "literateProgramming.notebook"

var (
	defaultOptions     *Options
	defaultOptionsOnce sync.Once

	defaultRegistration     *Registration
	defaultRegistrationOnce sync.Once
)

// DefaultOptions returns the default conversion options (singleton).
// Callers must not mutate the returned value.
func DefaultOptions() *Options {
	defaultOptionsOnce.Do(func() {
		defaultOptions = &Options{
			DefaultLanguage: PlainTextLanguage,
			MarkupLanguage:  MarkdownLanguage,
			Notifier:        LogNotifier{},
			Strict:          false,
		}
	})
	return defaultOptions
}

// SerializerOptions 对应宿主注册 serializer 时的选项
type SerializerOptions struct {
	// TransientOutputs 为 false：输出随文档保存
	TransientOutputs bool
	// TransientCellMetadata 为空：没有 cell 元数据被视为临时数据
	TransientCellMetadata map[string]bool
}

// Registration 描述 serializer 在宿主中的注册信息
type Registration struct {
	NotebookType string
	Options      SerializerOptions
}

// DefaultRegistration returns the registration used by Register (singleton).
func DefaultRegistration() *Registration {
	defaultRegistrationOnce.Do(func() {
		defaultRegistration = &Registration{
			NotebookType: NotebookType,
			Options: SerializerOptions{
				TransientOutputs:      false,
				TransientCellMetadata: map[string]bool{},
			},
		}
	})
	return defaultRegistration
}
