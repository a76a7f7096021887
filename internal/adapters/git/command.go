package git

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/renato0307/chronopick/internal/logging"
)

// CommandError is returned when a git command exits unsuccessfully
type CommandError struct {
	Args   []string
	Err    error
	Output string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// runner executes git inside a working directory
type runner struct {
	dir     string
	echo    io.Writer
	verbose bool
}

func (r *runner) command(ctx context.Context, args ...string) *exec.Cmd {
	if r.verbose && r.echo != nil {
		fmt.Fprintf(r.echo, " > git %s\n", strings.Join(args, " "))
	}
	logging.Logger.Debug("Running git", "dir", r.dir, "args", args)

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.dir
	// Never block on an interactive editor; conflict resolution happens
	// through the recovery menu
	cmd.Env = append(os.Environ(), "GIT_EDITOR=true")
	return cmd
}

// output runs git and returns its trimmed stdout
func (r *runner) output(ctx context.Context, args ...string) (string, error) {
	out, err := r.rawOutput(ctx, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// rawOutput runs git and returns stdout untouched
func (r *runner) rawOutput(ctx context.Context, args ...string) (string, error) {
	cmd := r.command(ctx, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logging.Logger.Debug("Git command failed", "args", args, "error", err, "stderr", stderr.String())
		return "", &CommandError{Args: args, Err: err, Output: stderr.String() + stdout.String()}
	}
	return stdout.String(), nil
}

// stream runs git with stdout attached to w
func (r *runner) stream(ctx context.Context, w io.Writer, args ...string) error {
	cmd := r.command(ctx, args...)
	var stderr bytes.Buffer
	cmd.Stdout = w
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &CommandError{Args: args, Err: err, Output: stderr.String()}
	}
	return nil
}

// lines splits command output into non-empty lines
func lines(output string) []string {
	var result []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			result = append(result, line)
		}
	}
	return result
}

// nulFields splits -z output into paths, keeping surrounding whitespace
func nulFields(output string) []string {
	var result []string
	for _, field := range strings.Split(output, "\x00") {
		if field != "" {
			result = append(result, field)
		}
	}
	return result
}
