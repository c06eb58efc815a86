package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the Chroma style used by [Chroma] when none is set.
const DefaultStyle = "github"

// Chroma renders files in-process with Chroma, producing a standalone HTML
// page per file. Unknown languages fall back to plain text.
type Chroma struct {
	// Dir is the directory job paths are relative to.
	Dir string

	// Style is the name of a registered Chroma style.
	Style string

	// LineNumbers adds line numbers to the output.
	LineNumbers bool
}

// Render highlights job.Input and writes the page to job.Output.
func (c *Chroma) Render(_ context.Context, job Job) error {
	src, err := os.ReadFile(c.path(job.Input))
	if err != nil {
		return errtrace.Wrap(err)
	}

	var buf bytes.Buffer

	if err := c.Highlight(&buf, src, job.Lang); err != nil {
		return errtrace.Wrap(err)
	}

	return errtrace.Wrap(os.WriteFile(c.path(job.Output), buf.Bytes(), 0o644)) //nolint:gomnd
}

// Highlight writes src as a standalone highlighted HTML page to buf.
func (c *Chroma) Highlight(buf *bytes.Buffer, src []byte, lang string) error {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, string(src))
	if err != nil {
		return errtrace.Wrap(err)
	}

	formatter := chromahtml.New(
		chromahtml.Standalone(true),
		chromahtml.WithLineNumbers(c.LineNumbers),
	)

	return errtrace.Wrap(formatter.Format(buf, c.style(), iterator))
}

func (c *Chroma) style() *chroma.Style {
	name := c.Style
	if len(name) == 0 {
		name = DefaultStyle
	}

	return styles.Get(name)
}

func (c *Chroma) path(name string) string {
	if len(c.Dir) == 0 || filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(c.Dir, name)
}
