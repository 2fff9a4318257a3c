package lpnb

// Options holds options for notebook conversion.
type Options struct {
	// DefaultLanguage 用于未声明 metadata.language 的 notebook
	DefaultLanguage string
	// MarkupLanguage 是 Markup cell 的语言标记
	MarkupLanguage string
	// Notifier 接收解析失败的用户提示
	Notifier Notifier
	// Strict 为 true 时解析失败直接返回错误，而不是降级为空 notebook
	Strict bool
}

// Option is a function that configures Options.
type Option func(*Options)

// WithDefaultLanguage sets the fallback language for code cells.
func WithDefaultLanguage(language string) Option {
	return func(opts *Options) {
		if language != "" {
			opts.DefaultLanguage = language
		}
	}
}

// WithMarkupLanguage sets the language id given to markup cells.
func WithMarkupLanguage(language string) Option {
	return func(opts *Options) {
		if language != "" {
			opts.MarkupLanguage = language
		}
	}
}

// WithNotifier sets the channel used to surface parse failures.
func WithNotifier(n Notifier) Option {
	return func(opts *Options) {
		if n != nil {
			opts.Notifier = n
		}
	}
}

// WithStrict makes malformed documents fail instead of loading empty.
func WithStrict(enable bool) Option {
	return func(opts *Options) {
		opts.Strict = enable
	}
}

// defaultConvertOptions returns a fresh copy of the default options.
func defaultConvertOptions() *Options {
	defaults := *DefaultOptions()
	return &defaults
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *Options {
	options := defaultConvertOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}
	return options
}
