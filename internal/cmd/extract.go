package cmd

import (
	_ "embed"
	"os"

	"github.com/ezerfernandes/mdrender/internal/output"
	"github.com/spf13/cobra"
)

//go:embed help/extract.md
var extractHelp string

func extractCmd(opts *options) *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "extract [flags] [filename]",
		Short: "Write code blocks to numbered files without rendering",
		Long:  extractHelp,
		Args:  checkargs,
		RunE:  func(_ *cobra.Command, args []string) error {
			_, err := extractRun(source(args), opts)

			return err
		},

		DisableAutoGenTag: true,
	}
}

func extractRun(filename string, opts *options) ([]output.File, error) {
	all, err := blocks(filename, opts)
	if err != nil {
		return nil, err
	}

	if len(all) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(opts.dir, dirMode); err != nil {
		return nil, err
	}

	writer := &output.Writer{FS: output.DirFS(opts.dir), Naming: opts.naming()}

	files, err := writer.Write(all)

	for _, file := range files {
		opts.status("--- block %d (%s) : L%d-%d : %s ---\n", file.Block.Index, langLabel(file.Block.Lang), file.Block.StartLine, file.Block.EndLine, file.Name)
	}

	return files, err
}

func langLabel(lang string) string {
	if len(lang) == 0 {
		return "-"
	}

	return lang
}
