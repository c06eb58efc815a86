package cmd

import (
	_ "embed"
	"errors"

	"github.com/ezerfernandes/mdrender/internal/render"
	"github.com/spf13/cobra"
)

//go:embed help/render.md
var renderHelp string

func renderCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "render [flags] [filename]",
		Short: "Extract code blocks and render them to HTML",
		Long:  renderHelp,
		Args:  checkargs,
		RunE:  func(cmd *cobra.Command, args []string) error {
			return renderRun(cmd, source(args), opts)
		},

		DisableAutoGenTag: true,
	}

	flags := cmd.Flags()

	flags.StringVarP(&opts.lang, "lang", "l", render.DefaultLang, "language label passed to the renderer")
	flags.StringVarP(&opts.command, "command", "c", render.DefaultCommand, "renderer command template")
	flags.BoolVar(&opts.builtin, "builtin", false, "render with the built-in highlighter instead of a command")
	flags.StringVar(&opts.style, "style", render.DefaultStyle, "highlighting style for --builtin")

	return cmd
}

func renderRun(cmd *cobra.Command, filename string, opts *options) error {
	files, err := extractRun(filename, opts)
	if err != nil {
		return err
	}

	jobs := make([]render.Job, len(files))
	for i, file := range files {
		jobs[i] = render.NewJob(file.Block.Index, file.Name, opts.lang)
	}

	err = render.All(cmd.Context(), opts.renderer(cmd.OutOrStdout(), cmd.ErrOrStderr()), jobs, opts.status)

	var exitErr *render.ExitError
	if errors.As(err, &exitErr) {
		opts.status("error: %s exited with %d, %d render(s) skipped\n", exitErr.Input, exitErr.Status, skipped(jobs, exitErr.Input))
	}

	return err
}

func skipped(jobs []render.Job, failed string) int {
	for i, job := range jobs {
		if job.Input == failed {
			return len(jobs) - i - 1
		}
	}

	return 0
}
