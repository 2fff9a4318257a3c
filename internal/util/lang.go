package util

import (
	"path/filepath"
	"strings"
)

// DefaultLanguageToExt maps editor language ids to file extensions.
var DefaultLanguageToExt = map[string]string{
	"python":          "py",
	"javascript":      "js",
	"typescript":      "ts",
	"java":            "java",
	"cpp":             "cpp",
	"c++":             "cpp",
	"c":               "c",
	"csharp":          "cs",
	"html":            "html",
	"css":             "css",
	"bash":            "sh",
	"shell":           "sh",
	"shellscript":     "sh",
	"php":             "php",
	"markdown":        "md",
	"dotenv":          "env",
	"json":            "json",
	"yaml":            "yaml",
	"xml":             "xml",
	"dockerfile":      "dockerfile",
	"plaintext":       "txt",
	"toml":            "toml",
	"go":              "go",
	"ruby":            "rb",
	"rust":            "rs",
	"perl":            "pl",
	"swift":           "swift",
	"kotlin":          "kt",
	"sql":             "sql",
	"javascriptreact": "jsx",
	"typescriptreact": "tsx",
	"graphql":         "graphql",
	"r":               "r",
	"dart":            "dart",
	"scala":           "scala",
	"groovy":          "groovy",
	"lua":             "lua",
	"haskell":         "hs",
}

// GetExt returns the file extension for a given language id.
func GetExt(language string) string {
	ext, ok := DefaultLanguageToExt[strings.ToLower(strings.TrimSpace(language))]
	if !ok {
		return "txt"
	}
	return ext
}

// TangleFilename 根据 notebook 路径和语言生成源码文件名
//
// "notes/intro.lpnb" + "python" => "notes/intro.py"
func TangleFilename(notebookPath string, language string) string {
	ext := GetExt(language)
	if notebookPath == "" {
		return "tangled." + ext
	}
	base := strings.TrimSuffix(notebookPath, filepath.Ext(notebookPath))
	return base + "." + ext
}
