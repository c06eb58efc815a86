package mdcode

import "strings"

// Block is a single fenced code region extracted from a document.
type Block struct {
	Index     int
	Lang      string
	Meta      Meta
	Lines     []string
	StartLine int
	EndLine   int
}

// Code returns the block lines joined by newlines, without a trailing newline.
func (b *Block) Code() []byte {
	return []byte(strings.Join(b.Lines, "\n"))
}

type Blocks []*Block
