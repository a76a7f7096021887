package editor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/renato0307/chronopick/internal/logging"
	"github.com/renato0307/chronopick/internal/ports"
)

// Opener implements ports.EditorOpener by running a terminal editor in the
// foreground and waiting for it to exit
type Opener struct {
	cliEditor string
	dir       string
	stderr    io.Writer
	stdin     io.Reader
	stdout    io.Writer
}

var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener attached to the process terminal.
// cliEditor is the editor given on the command line and takes precedence.
// dir is the repository root that file paths are relative to ("" means the
// process cwd).
func NewOpener(cliEditor, dir string) *Opener {
	return &Opener{
		cliEditor: cliEditor,
		dir:       dir,
		stderr:    os.Stderr,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
	}
}

// OpenFiles opens files in the editor and blocks until it exits
// Priority: cliEditor → $CHRONOPICK_EDITOR → $VISUAL → $EDITOR → platform defaults
func (o *Opener) OpenFiles(ctx context.Context, files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("no files to open")
	}

	editor, args := findEditor(o.cliEditor)
	if editor == "" {
		return fmt.Errorf("no suitable editor found. Set --editor flag, $CHRONOPICK_EDITOR, $VISUAL, or $EDITOR")
	}
	args = append(args, files...)

	logging.Logger.Info("Opening editor", "editor", editor, "dir", o.dir, "files", files)

	cmd := exec.CommandContext(ctx, editor, args...)
	cmd.Dir = o.dir
	cmd.Stdin = o.stdin
	cmd.Stdout = o.stdout
	cmd.Stderr = o.stderr

	if err := cmd.Run(); err != nil {
		logging.Logger.Warn("Editor exited with error", "error", err, "editor", editor)
		return fmt.Errorf("editor %s failed: %w", editor, err)
	}
	return nil
}

// findEditor returns the editor binary and its leading arguments.
// Values such as "code --wait" are split on whitespace.
func findEditor(cliEditor string) (string, []string) {
	candidates := []string{
		cliEditor,
		os.Getenv("CHRONOPICK_EDITOR"),
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
	}
	for _, candidate := range candidates {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return fields[0], fields[1:]
		}
	}

	return findPlatformEditor()
}
