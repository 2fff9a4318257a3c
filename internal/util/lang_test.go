package util

import "testing"

func TestGetExt(t *testing.T) {
	tests := []struct {
		language string
		want     string
	}{
		{"python", "py"},
		{"Go", "go"},
		{" rust ", "rs"},
		{"plaintext", "txt"},
		{"shellscript", "sh"},
		{"brainfuck", "txt"},
		{"", "txt"},
	}
	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			if got := GetExt(tt.language); got != tt.want {
				t.Errorf("GetExt(%q) = %q, want %q", tt.language, got, tt.want)
			}
		})
	}
}

func TestTangleFilename(t *testing.T) {
	tests := []struct {
		path     string
		language string
		want     string
	}{
		{"notes/intro.lpnb", "python", "notes/intro.py"},
		{"intro", "go", "intro.go"},
		{"", "typescript", "tangled.ts"},
		{"a.b.lpnb", "unknown", "a.b.txt"},
	}
	for _, tt := range tests {
		if got := TangleFilename(tt.path, tt.language); got != tt.want {
			t.Errorf("TangleFilename(%q, %q) = %q, want %q", tt.path, tt.language, got, tt.want)
		}
	}
}
