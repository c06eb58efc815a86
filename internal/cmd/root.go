// Package cmd implements the mdrender command line.
package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"braces.dev/errtrace"
	"github.com/ezerfernandes/mdrender/internal/output"
	"github.com/ezerfernandes/mdrender/internal/render"
	"github.com/spf13/cobra"
)

//go:embed help/root.md
var rootHelp string

const (
	defaultSource = "Makefile.md"

	dirMode = 0o755
)

type statusFunc = render.StatusFunc

type options struct {
	config     string
	dir        string
	prefix     string
	ext        string
	lang       string
	command    string
	builtin    bool
	style      string
	pattern    string
	commonmark bool
	quiet      bool
	trace      bool

	status statusFunc
	filter filterFunc
}

func (opts *options) createStatus(w io.Writer) {
	if opts.quiet {
		opts.status = func(string, ...interface{}) {}

		return
	}

	opts.status = func(format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
	}
}

func (opts *options) naming() output.Naming {
	return output.Naming{Prefix: opts.prefix, Ext: opts.ext}
}

func (opts *options) renderer(stdout, stderr io.Writer) render.Renderer { //nolint:ireturn
	if opts.builtin {
		return &render.Chroma{Dir: opts.dir, Style: opts.style}
	}

	return &render.Command{Template: opts.command, Dir: opts.dir, Stdout: stdout, Stderr: stderr}
}

// Execute runs the command line with args and exits the process with a
// non-zero status on failure.
func Execute(args []string, stdout, stderr io.Writer) {
	if err := execute(args, stdout, stderr); err != nil {
		os.Exit(1)
	}
}

func execute(args []string, stdout, stderr io.Writer) error {
	opts := new(options)
	root := rootCmd(opts)

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err != nil && opts.trace {
		fmt.Fprintln(stderr, errtrace.FormatString(err))
	}

	return err
}

func rootCmd(opts *options) *cobra.Command {
	root := renderCmd(opts)

	root.Use = "mdrender [flags] [filename]"
	root.Aliases = nil
	root.Long = rootHelp
	root.SilenceUsage = true
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd, opts); err != nil {
			return err
		}

		opts.createStatus(cmd.ErrOrStderr())

		var err error

		opts.filter, err = filter(opts.pattern)

		return err
	}

	flags := root.PersistentFlags()

	flags.StringVar(&opts.config, "config", "", "config file (default .mdrender.yaml in the working directory)")
	flags.StringVarP(&opts.dir, "dir", "d", ".", "directory to write output files to")
	flags.StringVar(&opts.prefix, "prefix", output.DefaultNaming.Prefix, "output file name prefix")
	flags.StringVar(&opts.ext, "ext", output.DefaultNaming.Ext, "output file name extension")
	flags.StringVarP(&opts.pattern, "filter", "f", "*", "only blocks whose language matches this glob pattern")
	flags.BoolVar(&opts.commonmark, "commonmark", false, "locate code blocks with a CommonMark parser")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status messages")
	flags.BoolVar(&opts.trace, "trace", false, "print the return trace of a failure")

	root.AddCommand(renderCmd(opts), extractCmd(opts), listCmd(opts))

	return root
}

func checkargs(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most one filename, got %d", errTooManyArgs, len(args))
	}

	return nil
}

func source(args []string) string {
	if len(args) == 0 {
		return defaultSource
	}

	return args[0]
}

var errTooManyArgs = errors.New("too many arguments")
