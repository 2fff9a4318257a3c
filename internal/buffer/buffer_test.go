package buffer

import "testing"

func TestWriteBlock_Separation(t *testing.T) {
	b := New()
	b.WriteBlock("# Title")
	b.WriteBlock("\n\nbody\n")
	b.WriteBlock("")
	b.WriteBlock("tail")

	want := "# Title\n\nbody\n\ntail\n"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWriteBlock_AfterRawWrite(t *testing.T) {
	b := New()
	b.Write("---\nlanguage: go\n---\n")
	b.WriteBlock("text")

	want := "---\nlanguage: go\n---\n\ntext\n"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTrailingNewlineCount(t *testing.T) {
	b := New()
	if b.TrailingNewlineCount() != 0 {
		t.Fatalf("empty buffer should have no trailing newlines")
	}
	b.Write("a\n")
	b.Write("\n")
	if got := b.TrailingNewlineCount(); got != 2 {
		t.Errorf("TrailingNewlineCount() = %d, want 2", got)
	}
}

func TestReset(t *testing.T) {
	b := New()
	b.WriteBlock("x")
	b.Reset()
	if b.Len() != 0 || b.String() != "" {
		t.Errorf("Reset() should empty the buffer, got %q", b.String())
	}
}
