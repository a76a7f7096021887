package git

import (
	"context"
	"fmt"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/logging"
)

// cherryPick applies one commit. Any non-zero exit is reported as a conflict
// so the caller can route it to recovery.
func cherryPick(ctx context.Context, r *runner, hash string) error {
	logging.Logger.Info("Cherry-picking commit", "hash", hash)
	if _, err := r.output(ctx, "cherry-pick", hash); err != nil {
		logging.Logger.Warn("Cherry-pick failed", "hash", hash, "error", err)
		return fmt.Errorf("%w: %w", domain.ErrCherryPickConflict, err)
	}
	return nil
}

// continueCherryPick resumes the sequencer without opening an editor
func continueCherryPick(ctx context.Context, r *runner) error {
	logging.Logger.Info("Continuing cherry-pick")
	if _, err := r.output(ctx, "cherry-pick", "--continue", "--no-edit"); err != nil {
		return fmt.Errorf("cherry-pick --continue failed: %w", err)
	}
	return nil
}

func skipCherryPick(ctx context.Context, r *runner) error {
	logging.Logger.Info("Skipping cherry-pick")
	if _, err := r.output(ctx, "cherry-pick", "--skip"); err != nil {
		return fmt.Errorf("cherry-pick --skip failed: %w", err)
	}
	return nil
}

func abortCherryPick(ctx context.Context, r *runner) error {
	logging.Logger.Info("Aborting cherry-pick")
	if _, err := r.output(ctx, "cherry-pick", "--abort"); err != nil {
		return fmt.Errorf("cherry-pick --abort failed: %w", err)
	}
	return nil
}
