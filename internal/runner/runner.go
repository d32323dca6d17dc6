package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	scaffolderrors "github.com/conneroisu/vitewind/internal/errors"
	"github.com/conneroisu/vitewind/internal/logging"
	"github.com/conneroisu/vitewind/internal/validation"
)

const killWaitDelay = 3 * time.Second

// Result is the captured output of a successful command.
type Result struct {
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Runner runs one command to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	out     io.Writer
	allowed map[string]bool
	logger  logging.Logger
}

// Option configures an ExecRunner.
type Option func(*ExecRunner)

// WithOutput sets where status lines and captured stdout are printed.
func WithOutput(w io.Writer) Option {
	return func(r *ExecRunner) { r.out = w }
}

// WithLogger sets the structured logger.
func WithLogger(logger logging.Logger) Option {
	return func(r *ExecRunner) { r.logger = logger.WithComponent("runner") }
}

// NewExecRunner creates a runner that only executes binaries named in
// allowed.
func NewExecRunner(allowed map[string]bool, opts ...Option) *ExecRunner {
	r := &ExecRunner{
		out:     os.Stdout,
		allowed: allowed,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes cmd in its working directory. On success every line of
// stdout is echoed and the status line is marked succeeded. A non-zero exit
// or a spawn failure returns a command-type ScaffoldError carrying the exit
// code and the captured stderr.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	text := cmd.String()

	if err := validation.ValidateCommand(cmd.Name, r.allowed); err != nil {
		return Result{}, scaffolderrors.Wrap(err, scaffolderrors.ErrorTypeValidation,
			scaffolderrors.ErrCodeCommandRejected, "refusing to run "+text)
	}

	status := NewStatusLine(r.out, cmd.Message)
	perf := logging.StartOperation(r.logger.With("dir", cmd.WorkDir()), text)

	var stdout, stderr bytes.Buffer
	proc := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	proc.Dir = cmd.WorkDir()
	proc.Stdout = &stdout
	proc.Stderr = &stderr
	// npm leaves grandchildren holding the output pipes after a kill
	proc.WaitDelay = killWaitDelay

	start := time.Now()
	err := proc.Run()
	result := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		status.Fail()
		printLines(r.out, result.Stderr)

		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		if ctx.Err() != nil {
			err = fmt.Errorf("%w: %w", ctx.Err(), err)
		}

		cmdErr := scaffolderrors.NewCommandError(text, exitCode, err).
			WithContext("dir", cmd.WorkDir()).
			WithContext("stderr", strings.TrimSpace(result.Stderr))
		perf.EndWithError(ctx, cmdErr)
		return result, cmdErr
	}

	printLines(r.out, result.Stdout)
	status.Success()
	perf.End(ctx)

	return result, nil
}

func printLines(w io.Writer, s string) {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return
	}
	for _, line := range strings.Split(s, "\n") {
		fmt.Fprintln(w, line)
	}
}
