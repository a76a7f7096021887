package git

import (
	"context"
	"fmt"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/logging"
)

// currentBranch returns the checked-out branch, or "" on a detached HEAD
func currentBranch(ctx context.Context, r *runner) (string, error) {
	branch, err := r.output(ctx, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return branch, nil
}

// headCommit resolves HEAD to a full commit hash
func headCommit(ctx context.Context, r *runner) (string, error) {
	hash, err := r.output(ctx, "rev-parse", "--verify", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return hash, nil
}

func checkout(ctx context.Context, r *runner, branch string) error {
	logging.Logger.Info("Checking out branch", "branch", branch)
	if _, err := r.output(ctx, "checkout", branch); err != nil {
		logging.Logger.Error("Checkout failed", "branch", branch, "error", err)
		return fmt.Errorf("failed to checkout %s: %w", branch, err)
	}
	return nil
}

// verifyRef checks that ref resolves to a commit
func verifyRef(ctx context.Context, r *runner, ref string) error {
	if _, err := r.output(ctx, "rev-parse", "--verify", "--quiet", ref+"^{commit}"); err != nil {
		logging.Logger.Debug("Ref does not resolve", "ref", ref, "error", err)
		return fmt.Errorf("%w: %s", domain.ErrBranchNotFound, ref)
	}
	return nil
}
