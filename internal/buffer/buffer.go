package buffer

import "strings"

// BlockBuffer accumulates Markdown blocks and keeps exactly one blank line
// between them.
type BlockBuffer struct {
	parts []string
}

// New creates a new BlockBuffer.
func New() *BlockBuffer {
	return &BlockBuffer{
		parts: make([]string, 0),
	}
}

// Write appends raw text without any separation handling.
func (b *BlockBuffer) Write(text string) {
	if text == "" {
		return
	}
	b.parts = append(b.parts, text)
}

// WriteBlock 写入一个块，自动补齐前面的空行，并保证块以换行结尾
func (b *BlockBuffer) WriteBlock(text string) {
	text = strings.Trim(text, "\n")
	if text == "" {
		return
	}
	if len(b.parts) > 0 {
		for n := b.TrailingNewlineCount(); n < 2; n++ {
			b.parts = append(b.parts, "\n")
		}
	}
	b.parts = append(b.parts, text, "\n")
}

// TrailingNewlineCount counts trailing newline characters in the buffer.
func (b *BlockBuffer) TrailingNewlineCount() int {
	count := 0
	for i := len(b.parts) - 1; i >= 0; i-- {
		part := b.parts[i]
		for j := len(part) - 1; j >= 0; j-- {
			if part[j] == '\n' {
				count++
			} else {
				return count
			}
		}
	}
	return count
}

// Len returns the accumulated length in bytes.
func (b *BlockBuffer) Len() int {
	total := 0
	for _, p := range b.parts {
		total += len(p)
	}
	return total
}

// String returns the accumulated text.
func (b *BlockBuffer) String() string {
	if len(b.parts) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(b.Len())
	for _, p := range b.parts {
		sb.WriteString(p)
	}
	return sb.String()
}

// Bytes returns the accumulated text as bytes.
func (b *BlockBuffer) Bytes() []byte {
	return []byte(b.String())
}

// Reset clears the buffer.
func (b *BlockBuffer) Reset() {
	b.parts = b.parts[:0]
}
