package cmd

import (
	"os"

	"github.com/ezerfernandes/mdrender/internal/mdcode"
)

// blocks reads filename and returns the blocks accepted by the filter. Skipped
// blocks keep their index, so file names stay stable under filtering.
func blocks(filename string, opts *options) (mdcode.Blocks, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var all mdcode.Blocks

	if opts.commonmark {
		if all, err = mdcode.Unfence(src); err != nil {
			return nil, err
		}
	} else {
		all = mdcode.Scan(src)
	}

	res := make(mdcode.Blocks, 0, len(all))

	for _, block := range all {
		if opts.filter(block.Lang) {
			res = append(res, block)
		}
	}

	return res, nil
}
