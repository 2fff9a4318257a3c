package types

const (
	// PlainTextLanguage 是没有 metadata.language 时使用的语言标记
	PlainTextLanguage = "plaintext"
	// MarkdownLanguage 是 Markup cell 的宿主标记
	MarkdownLanguage = "markdown"
)

// CellKind 表示 cell 的类型
type CellKind int

const (
	// CellKindMarkup is a documentation cell.
	CellKindMarkup CellKind = iota + 1
	// CellKindCode is an executable code cell.
	CellKindCode
)

// String returns the string representation of CellKind.
func (k CellKind) String() string {
	switch k {
	case CellKindMarkup:
		return "markup"
	case CellKindCode:
		return "code"
	default:
		return "unknown"
	}
}

// MarshalText lets CellKind appear as a string in JSON output.
func (k CellKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Cell 表示宿主环境中的一个 notebook cell
type Cell struct {
	Kind       CellKind `json:"kind"`
	Value      string   `json:"value"`
	LanguageID string   `json:"languageId,omitempty"`
}

// Section 是磁盘格式中的一个单元：可选的文档块 + 可选的代码块
type Section struct {
	Docs string `yaml:"docs"`
	Code string `yaml:"code"`
}

// Empty reports whether the section carries neither docs nor code.
func (s Section) Empty() bool {
	return s.Docs == "" && s.Code == ""
}

// Metadata 文档级元数据
type Metadata struct {
	Language string `yaml:"language"`
}

// Document 是磁盘格式的根节点
type Document struct {
	Metadata Metadata  `yaml:"metadata"`
	Sections []Section `yaml:"sections"`
}
