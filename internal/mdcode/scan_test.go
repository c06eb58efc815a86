package mdcode_test

import (
	"testing"

	"github.com/ezerfernandes/mdrender/internal/mdcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(blocks mdcode.Blocks) []string {
	res := make([]string, len(blocks))
	for i, b := range blocks {
		res[i] = string(b.Code())
	}

	return res
}

func TestScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "two blocks",
			source: "text\n```foo\n    line1\n    line2\n```\nmore text\n```\n    line3\n```",
			want:   []string{"line1\nline2", "line3"},
		},
		{
			name:   "no blocks",
			source: "# Title\n\njust text\n",
			want:   []string{},
		},
		{
			name:   "empty input",
			source: "",
			want:   []string{},
		},
		{
			name:   "unterminated trailing block",
			source: "```\n    a\n```\n```\n    b\n",
			want:   []string{"a"},
		},
		{
			name:   "short lines truncated",
			source: "```\nab\n\n    \n     x\n```\n",
			want:   []string{"\n\n\n x"},
		},
		{
			name:   "empty block",
			source: "```make\n```\n",
			want:   []string{""},
		},
		{
			name:   "nested fence closes block",
			source: "```md\n    outer\n```go\n    inner\n```\n",
			want:   []string{"outer"},
		},
		{
			name:   "indented fence is not a fence",
			source: "```\n    a\n  ```\n    b\n```\n",
			want:   []string{"a\n`\nb"},
		},
		{
			name:   "carriage returns are kept",
			source: "```\r\n    a\r\n```\r\n",
			want:   []string{"a\r"},
		},
		{
			name:   "multibyte runes",
			source: "```\n    ☃x\n··· y\n```\n",
			want:   []string{"☃x\ny"},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blocks := mdcode.Scan([]byte(tt.source))

			assert.Equal(t, tt.want, codes(blocks))
		})
	}
}

func TestScanStripIsUnconditional(t *testing.T) {
	t.Parallel()

	blocks := mdcode.Scan([]byte("```\n\tall:\n\t\techo hi\n```\n"))

	require.Len(t, blocks, 1)
	assert.Equal(t, []string{":", "ho hi"}, blocks[0].Lines)
}

func TestScanIndexAndLines(t *testing.T) {
	t.Parallel()

	source := "intro\n```make file=Makefile\n    all:\n```\n\n```sh\n    echo\n```\n"

	blocks := mdcode.Scan([]byte(source))
	require.Len(t, blocks, 2)

	assert.Equal(t, 0, blocks[0].Index)
	assert.Equal(t, "make", blocks[0].Lang)
	assert.Equal(t, "Makefile", blocks[0].Meta.Get("file"))
	assert.Equal(t, 2, blocks[0].StartLine)
	assert.Equal(t, 4, blocks[0].EndLine)

	assert.Equal(t, 1, blocks[1].Index)
	assert.Equal(t, "sh", blocks[1].Lang)
	assert.Equal(t, 6, blocks[1].StartLine)
	assert.Equal(t, 8, blocks[1].EndLine)
}

func TestScanBadInfoString(t *testing.T) {
	t.Parallel()

	blocks := mdcode.Scan([]byte("```sh 'unterminated\n    echo\n```\n"))

	require.Len(t, blocks, 1)
	assert.Equal(t, "echo", string(blocks[0].Code()))
}
