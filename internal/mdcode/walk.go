package mdcode

import (
	"bytes"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var reInfo = regexp.MustCompile(`\s*(\w+)\s*(.*)\s*`)

// Walker is a callback invoked for each fenced code block found in a Markdown
// document. Returning an error stops the walk.
type Walker func(block *Block) error

// Walk parses a Markdown document as CommonMark and calls walker for every
// fenced code block, in document order. Unlike [Scan], fence indentation and
// unterminated fences follow CommonMark rules and content lines are not dedented.
func Walk(source []byte, walker Walker) error {
	parser := goldmark.DefaultParser()
	reader := text.NewReader(source)
	root := parser.Parse(reader).OwnerDocument()

	index := 0

	return ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		node = transformCommentedCodeBlock(node, entering, source)

		fcb := asFencedCodeBlock(node, entering)
		if fcb == nil {
			return ast.WalkContinue, nil
		}

		block, err := extractBlock(fcb, source)
		if err != nil {
			return ast.WalkStop, err
		}

		block.Index = index
		index++

		if err := walker(block); err != nil {
			return ast.WalkStop, err
		}

		return ast.WalkContinue, nil
	})
}

func asFencedCodeBlock(node ast.Node, entering bool) *ast.FencedCodeBlock {
	if entering || node.Kind() != ast.KindFencedCodeBlock {
		return nil
	}

	if fcb, ok := node.(*ast.FencedCodeBlock); ok {
		return fcb
	}

	return nil
}

func extractBlock(fcb *ast.FencedCodeBlock, source []byte) (*Block, error) {
	lang, meta, err := extractInfo(fcb, source)
	if err != nil {
		return nil, err
	}

	block := &Block{Lang: lang, Meta: meta, Lines: extractLines(fcb, source)}
	block.StartLine, block.EndLine = extractBounds(fcb, source)

	return block, nil
}

func extractBounds(fcb *ast.FencedCodeBlock, source []byte) (int, int) {
	var startLine, endLine int

	if fcb.Info != nil {
		startLine = lineAt(source, fcb.Info.Segment.Start)
	} else {
		lines := fcb.Lines()
		if lines.Len() > 0 {
			startLine = lineAt(source, lines.At(0).Start) - 1
		}
	}

	lines := fcb.Lines()
	if lines.Len() > 0 {
		endLine = lineAt(source, lines.At(lines.Len()-1).Stop)
	} else if startLine > 0 {
		endLine = startLine + 1
	}

	return startLine, endLine
}

func lineAt(source []byte, offset int) int {
	line := 1

	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
		}
	}

	return line
}

func extractLines(fcb *ast.FencedCodeBlock, source []byte) []string {
	lines := fcb.Lines()
	res := make([]string, 0, lines.Len())

	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		value := bytes.TrimSuffix(seg.Value(source), []byte("\n"))

		res = append(res, string(bytes.TrimSuffix(value, []byte("\r"))))
	}

	return res
}

func extractInfo(fcb *ast.FencedCodeBlock, source []byte) (string, Meta, error) {
	if fcb.Info == nil {
		return "", nil, nil
	}

	return parseInfo(fcb.Info.Text(source))
}

func parseInfo(text []byte) (string, Meta, error) {
	all := reInfo.FindSubmatch(text)
	if all == nil {
		return "", nil, nil
	}

	var (
		lang string
		meta Meta
		err  error
	)

	if len(all) > 1 {
		lang = string(all[1])
	}

	if len(all) <= 2 { //nolint:gomnd
		return lang, meta, nil
	}

	meta, err = parseMeta(bytes.TrimSpace(all[2]))

	return lang, meta, err
}

var (
	reCommentedCodeBlock = regexp.MustCompile(`^\s*(<!--)?\s*<script\s*type=["']text/markdown["']\s*>\s*$`)
	reFences             = regexp.MustCompile("^\\s*```")
)

// transformCommentedCodeBlock turns a fenced block wrapped in a
// <script type="text/markdown"> HTML block into a regular fenced code block.
func transformCommentedCodeBlock(node ast.Node, entering bool, source []byte) ast.Node { //nolint:ireturn
	if entering || node.Kind() != ast.KindHTMLBlock {
		return node
	}

	html, ok := node.(*ast.HTMLBlock)
	if !ok {
		return node
	}

	const minLines = 2

	lines := html.Lines()
	if lines.Len() < minLines {
		return node
	}

	seg := lines.At(0)
	line := seg.Value(source)

	if !reCommentedCodeBlock.Match(line) {
		return node
	}

	seg = lines.At(1)
	line = seg.Value(source)

	loc := reFences.FindIndex(line)
	if loc == nil {
		return node
	}

	info := ast.NewTextSegment(text.NewSegment(seg.Start+loc[1], seg.Stop-1))
	fcb := ast.NewFencedCodeBlock(info)

	seg = lines.At(lines.Len() - 1)
	line = seg.Value(source)

	if !reFences.Match(line) {
		return node
	}

	segs := text.NewSegments()

	for i := 2; i < lines.Len()-1; i++ {
		segs.Append(lines.At(i))
	}

	fcb.SetLines(segs)

	return fcb
}
