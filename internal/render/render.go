// Package render turns extracted code files into highlighted HTML.
//
// A [Renderer] handles one file at a time. [All] drives a renderer over a list
// of jobs in order and stops at the first failure.
package render

import (
	"context"

	"braces.dev/errtrace"
)

// DefaultLang is the language label handed to renderers when none is configured.
const DefaultLang = "makefile"

// Job describes a single file to render.
type Job struct {
	// Index of the block the input file was extracted from.
	Index int

	// Input is the path of the extracted code file, relative to the
	// renderer's working directory.
	Input string

	// Output is the path of the HTML file to produce.
	Output string

	// Lang is the language label used for highlighting.
	Lang string
}

// NewJob returns a job rendering input to input.html.
func NewJob(index int, input, lang string) Job {
	return Job{Index: index, Input: input, Output: OutputName(input), Lang: lang}
}

// OutputName returns the HTML file name for an input file.
func OutputName(input string) string {
	return input + ".html"
}

// Renderer renders a single job.
type Renderer interface {
	Render(ctx context.Context, job Job) error
}

// StatusFunc reports progress.
type StatusFunc func(format string, args ...interface{})

// All renders jobs sequentially, in order. It returns the first error and does
// not start any job after it.
func All(ctx context.Context, r Renderer, jobs []Job, status StatusFunc) error {
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return errtrace.Wrap(err)
		}

		if status != nil {
			status("--- render %d : %s -> %s ---\n", job.Index, job.Input, job.Output)
		}

		if err := r.Render(ctx, job); err != nil {
			return errtrace.Wrap(err)
		}
	}

	return nil
}
