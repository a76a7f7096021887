package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/logging"
	"github.com/renato0307/chronopick/internal/ports"
)

// ReplayGit is the part of git the replay engine drives
type ReplayGit interface {
	ports.BranchManager
	ports.CherryPicker
}

// ReplayEngine applies ordered changes to a target branch one at a time
type ReplayEngine struct {
	git      ReplayGit
	reporter ports.ReplayReporter
	resolver ConflictResolver
}

// NewReplayEngine creates a new ReplayEngine
func NewReplayEngine(git ReplayGit, resolver ConflictResolver, reporter ports.ReplayReporter) *ReplayEngine {
	return &ReplayEngine{
		git:      git,
		reporter: reporter,
		resolver: resolver,
	}
}

// Run cherry-picks changes onto target in the given order.
//
// The branch checked out before the run, or the commit on a detached HEAD,
// is restored on every exit path including panics. A restore failure is
// joined into the returned error and never replaces the summary, which is
// always reported.
func (e *ReplayEngine) Run(ctx context.Context, changes []domain.ChangeRecord, target string) (summary domain.ReplaySummary, err error) {
	if len(changes) == 0 {
		logging.Logger.Info("Nothing to replay")
		return domain.ReplaySummary{}, nil
	}

	original, err := e.git.CurrentBranch(ctx)
	session := domain.NewReplaySession(changes, original)
	if err != nil {
		session.AbortRemaining()
		e.reporter.Summary(session.Summary)
		return session.Summary, fmt.Errorf("failed to determine current branch: %w", err)
	}
	if original == "" {
		head, err := e.git.HeadCommit(ctx)
		if err != nil {
			session.AbortRemaining()
			e.reporter.Summary(session.Summary)
			return session.Summary, fmt.Errorf("failed to determine current commit: %w", err)
		}
		session.OriginalCommit = head
	}

	defer func() {
		// Cleanup must run even if the caller's context is already done
		if restoreErr := e.restore(context.WithoutCancel(ctx), session); restoreErr != nil {
			e.reporter.Failure("Failed to restore the original branch", restoreErr)
			err = errors.Join(err, restoreErr)
		}
		summary = session.Summary
		e.reporter.Summary(summary)
	}()

	if target != original {
		if err := e.git.Checkout(ctx, target); err != nil {
			session.AbortRemaining()
			return session.Summary, fmt.Errorf("failed to switch to %s: %w", target, err)
		}
	}

	logging.Logger.Info("Starting replay", "changes", len(changes), "target", target, "original", original)
	return session.Summary, e.replay(ctx, session)
}

func (e *ReplayEngine) replay(ctx context.Context, session *domain.ReplaySession) error {
	total := len(session.Changes)

	for !session.Done() {
		change := session.Current()
		e.reporter.ChangeStarted(session.Index+1, total, change)
		session.SetState(domain.ChangeApplying)

		applyErr := e.git.CherryPick(ctx, change.ID)
		if applyErr == nil {
			e.reporter.ChangeApplied(change)
			session.Applied()
			continue
		}

		logging.Logger.Warn("Change blocked", "hash", change.ID, "position", session.Index+1, "error", applyErr)
		e.reporter.ChangeBlocked(change, applyErr)
		session.SetState(domain.ChangeBlocked)
		session.MarkConflict()

		outcome, err := e.resolver.Resolve(ctx, change)
		switch outcome {
		case domain.OutcomeApplied:
			session.Applied()
		case domain.OutcomeSkipped:
			session.Skipped()
		case domain.OutcomeSessionAborted:
			logging.Logger.Info("Replay aborted", "position", session.Index+1, "total", total)
			e.reporter.ReplayAborted()
			session.AbortRemaining()
			if err != nil {
				return fmt.Errorf("replay aborted: %w", err)
			}
			return nil
		default:
			session.AbortRemaining()
			return fmt.Errorf("unexpected recovery outcome %d", outcome)
		}
	}

	return nil
}

// restore puts HEAD back where the run found it
func (e *ReplayEngine) restore(ctx context.Context, session *domain.ReplaySession) error {
	if session.OriginalBranch == "" {
		return e.restoreCommit(ctx, session.OriginalCommit)
	}
	return e.restoreBranch(ctx, session.OriginalBranch)
}

// restoreBranch switches back to original unless it is already checked out
func (e *ReplayEngine) restoreBranch(ctx context.Context, original string) error {
	current, err := e.git.CurrentBranch(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore %s: %w", original, err)
	}
	if current == original {
		return nil
	}

	logging.Logger.Info("Restoring original branch", "branch", original, "current", current)
	if err := e.git.Checkout(ctx, original); err != nil {
		return fmt.Errorf("failed to restore %s: %w", original, err)
	}
	return nil
}

// restoreCommit detaches HEAD at commit again unless it is still there
func (e *ReplayEngine) restoreCommit(ctx context.Context, commit string) error {
	current, err := e.git.CurrentBranch(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore %s: %w", commit, err)
	}
	if current == "" {
		head, err := e.git.HeadCommit(ctx)
		if err != nil {
			return fmt.Errorf("failed to restore %s: %w", commit, err)
		}
		if head == commit {
			return nil
		}
	}

	logging.Logger.Info("Restoring detached HEAD", "commit", commit, "current", current)
	e.reporter.Info(fmt.Sprintf("%s before the run, returning to commit %s", domain.ErrDetachedHead, shortHash(commit)))
	if err := e.git.Checkout(ctx, commit); err != nil {
		return fmt.Errorf("failed to restore %s: %w", commit, err)
	}
	return nil
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
