package mdcode

import "strings"

// Fence is the marker that opens and closes a code block.
const Fence = "```"

// Indent is the number of leading runes removed from every content line.
const Indent = 4

// Scan splits source into lines and returns the fenced code blocks in order of
// appearance. Any line starting with [Fence] toggles the block state, so nested
// fences are not recognized. A block that is still open at the end of source is
// dropped. Every content line loses its first [Indent] runes, whatever they are.
func Scan(source []byte) Blocks {
	var (
		blocks  Blocks
		current *Block
	)

	for i, line := range strings.Split(string(source), "\n") {
		if !strings.HasPrefix(line, Fence) {
			if current != nil {
				current.Lines = append(current.Lines, dedent(line))
			}

			continue
		}

		if current == nil {
			current = openBlock(line[len(Fence):], i+1)

			continue
		}

		current.Index = len(blocks)
		current.EndLine = i + 1
		blocks = append(blocks, current)
		current = nil
	}

	return blocks
}

func openBlock(info string, line int) *Block {
	block := &Block{StartLine: line, Lines: []string{}}

	// The info string is informational only; a malformed one never stops extraction.
	if lang, meta, err := parseInfo([]byte(info)); err == nil {
		block.Lang, block.Meta = lang, meta
	}

	return block
}

func dedent(line string) string {
	n := 0

	for i := range line {
		if n == Indent {
			return line[i:]
		}

		n++
	}

	return ""
}
