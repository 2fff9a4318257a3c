package lpnb

import (
	"fmt"
)

// Host 是宿主 notebook 环境的注册入口
type Host interface {
	RegisterNotebookSerializer(notebookType string, serializer NotebookSerializer, options SerializerOptions) error
}

// Register 将 serializer 按默认注册信息注册到宿主。serializer 为 nil 时使用 NewSerializer()。
func Register(host Host, serializer NotebookSerializer) error {
	if host == nil {
		return fmt.Errorf("register %s: nil host", NotebookType)
	}
	if serializer == nil {
		serializer = NewSerializer()
	}

	reg := DefaultRegistration()
	opts := SerializerOptions{
		TransientOutputs:      reg.Options.TransientOutputs,
		TransientCellMetadata: make(map[string]bool, len(reg.Options.TransientCellMetadata)),
	}
	for k, v := range reg.Options.TransientCellMetadata {
		opts.TransientCellMetadata[k] = v
	}

	if err := host.RegisterNotebookSerializer(reg.NotebookType, serializer, opts); err != nil {
		return fmt.Errorf("register %s: %w", reg.NotebookType, err)
	}
	Logger.Debug("notebook serializer registered", "type", reg.NotebookType)
	return nil
}
