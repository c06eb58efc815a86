package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// DefaultCommand invokes Pygments with the language label, the output path and
// the input path.
const DefaultCommand = "pygmentize -l {lang} -o {out} {}"

// Command renders files by running a shell command template. Templates are
// interpreted by a POSIX shell implemented in Go, so they may use pipes,
// redirections and quoting.
//
// Placeholders:
//
//	{}      input file
//	{out}   output file
//	{lang}  language label
//	{index} block index
//	{dir}   absolute working directory
type Command struct {
	Template string

	// Dir is the working directory the command runs in. Defaults to the
	// current directory.
	Dir string

	Stdout io.Writer
	Stderr io.Writer
}

// ExitError reports a renderer command that exited with a non-zero status.
type ExitError struct {
	Input  string
	Status int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("render %s: command exited with %d", e.Input, e.Status)
}

// ErrEmptyCommand is returned when the command template is blank.
var ErrEmptyCommand = errors.New("render command is empty")

// Render runs the command for job and returns an [*ExitError] on a non-zero exit.
func (c *Command) Render(ctx context.Context, job Job) error {
	if len(strings.TrimSpace(c.Template)) == 0 {
		return errtrace.Wrap(ErrEmptyCommand)
	}

	dir, err := filepath.Abs(c.dir())
	if err != nil {
		return errtrace.Wrap(err)
	}

	status, err := runCommand(ctx, c.Expand(job, dir), dir, c.stdout(), c.stderr())
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("render %s: %w", job.Input, err))
	}

	if status != 0 {
		return errtrace.Wrap(&ExitError{Input: job.Input, Status: status})
	}

	return nil
}

// Expand substitutes the placeholders of the template for job. Paths are
// quoted for the shell.
func (c *Command) Expand(job Job, dir string) string {
	return strings.NewReplacer(
		"{}", quote(job.Input),
		"{out}", quote(job.Output),
		"{lang}", quote(job.Lang),
		"{index}", fmt.Sprint(job.Index),
		"{dir}", quote(dir),
	).Replace(c.Template)
}

func (c *Command) dir() string {
	if len(c.Dir) == 0 {
		return "."
	}

	return c.Dir
}

func (c *Command) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}

	return c.Stdout
}

func (c *Command) stderr() io.Writer {
	if c.Stderr == nil {
		return os.Stderr
	}

	return c.Stderr
}

func quote(s string) string {
	if q, err := syntax.Quote(s, syntax.LangPOSIX); err == nil {
		return q
	}

	return s
}

func runCommand(ctx context.Context, command, dir string, stdout, stderr io.Writer) (int, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return -1, err
	}

	runner, err := interp.New(interp.Dir(dir), interp.StdIO(os.Stdin, stdout, stderr))
	if err != nil {
		return -1, err
	}

	err = runner.Run(ctx, file)
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return int(status), nil
		}

		return -1, err
	}

	return 0, nil
}
