package git

import (
	"context"
	"fmt"
	"io"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/logging"
)

// unmergedFiles asks git for the current list of conflicted paths.
// Paths are NUL separated and unquoted so they can be passed back to git as is.
func unmergedFiles(ctx context.Context, r *runner) ([]string, error) {
	output, err := r.rawOutput(ctx, "-c", "core.quotePath=false", "diff", "--name-only", "-z", "--diff-filter=U")
	if err != nil {
		return nil, fmt.Errorf("failed to list unmerged files: %w", err)
	}
	files := nulFields(output)
	logging.Logger.Debug("Unmerged files", "count", len(files))
	return files, nil
}

// resolveFile checks out one side of a conflicted path and stages it
func resolveFile(ctx context.Context, r *runner, path string, side domain.ResolveSide) error {
	switch side {
	case domain.SideOurs, domain.SideTheirs:
	default:
		return fmt.Errorf("unknown resolve side %q", side)
	}

	logging.Logger.Info("Resolving file", "path", path, "side", side)
	if _, err := r.output(ctx, "checkout", "--"+string(side), "--", path); err != nil {
		return fmt.Errorf("failed to take %s for %s: %w", side, path, err)
	}
	if _, err := r.output(ctx, "add", "--", path); err != nil {
		return fmt.Errorf("failed to stage %s: %w", path, err)
	}
	return nil
}

func showStagedDiff(ctx context.Context, r *runner, w io.Writer) error {
	if err := r.stream(ctx, w, "--no-pager", "diff", "--cached", "--color=always"); err != nil {
		return fmt.Errorf("failed to show diff: %w", err)
	}
	return nil
}
