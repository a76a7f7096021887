package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/logging"
	"github.com/renato0307/chronopick/internal/ports"
)

// ConflictResolver resolves a blocked change into a terminal outcome
type ConflictResolver interface {
	Resolve(ctx context.Context, change domain.ChangeRecord) (domain.RecoveryOutcome, error)
}

// RecoveryGit is the part of git the recovery session drives
type RecoveryGit interface {
	ports.CherryPicker
	ports.ConflictInspector
}

// RecoverySession is the interactive loop entered when a cherry-pick fails.
// It runs until the operator's actions end in applied, skipped or aborted.
type RecoverySession struct {
	editor   ports.EditorOpener
	git      RecoveryGit
	prompter ports.Prompter
	reporter ports.ReplayReporter
}

var _ ConflictResolver = (*RecoverySession)(nil)

// NewRecoverySession creates a new RecoverySession
func NewRecoverySession(
	git RecoveryGit,
	editor ports.EditorOpener,
	prompter ports.Prompter,
	reporter ports.ReplayReporter,
) *RecoverySession {
	return &RecoverySession{
		editor:   editor,
		git:      git,
		prompter: prompter,
		reporter: reporter,
	}
}

// Resolve runs the recovery menu for change. If no choice can be read the
// cherry-pick is aborted and OutcomeSessionAborted is returned with the error.
func (s *RecoverySession) Resolve(ctx context.Context, change domain.ChangeRecord) (domain.RecoveryOutcome, error) {
	logging.Logger.Info("Entering conflict recovery", "hash", change.ID, "task", change.TaskID)
	s.reporter.ConflictHeader(change)

	for {
		s.showUnmergedFiles(ctx)

		action, err := s.prompter.ChooseAction(ctx, change)
		if err != nil {
			logging.Logger.Error("Failed to read recovery action", "error", err)
			s.reporter.Failure("Could not read a choice, aborting cherry-pick", err)
			if abortErr := s.git.AbortCherryPick(ctx); abortErr != nil {
				s.reporter.Failure("Abort failed", abortErr)
				err = errors.Join(err, abortErr)
			}
			return domain.OutcomeSessionAborted, fmt.Errorf("conflict recovery interrupted: %w", err)
		}

		logging.Logger.Info("Recovery action chosen", "action", action.Key(), "hash", change.ID)
		if outcome, done := s.perform(ctx, action); done {
			logging.Logger.Info("Conflict recovery finished", "hash", change.ID, "outcome", outcome.String())
			return outcome, nil
		}
	}
}

// perform executes one action; done is false when the menu should be shown again
func (s *RecoverySession) perform(ctx context.Context, action domain.RecoveryAction) (domain.RecoveryOutcome, bool) {
	switch action {
	case domain.ActionDiff:
		s.showDiff(ctx)
		return 0, false

	case domain.ActionList:
		// Files are listed fresh at the top of every iteration
		return 0, false

	case domain.ActionContinue:
		return s.continueOrSkip(ctx)

	case domain.ActionOurs:
		s.resolveAll(ctx, domain.SideOurs)
		return s.continueOrSkip(ctx)

	case domain.ActionTheirs:
		s.resolveAll(ctx, domain.SideTheirs)
		return s.continueOrSkip(ctx)

	case domain.ActionManual:
		if !s.openEditor(ctx) {
			return 0, false
		}
		return s.continueOrSkip(ctx)

	case domain.ActionSkip:
		if err := s.git.SkipCherryPick(ctx); err != nil {
			s.reporter.Failure("Skip reported an error", err)
		}
		return domain.OutcomeSkipped, true

	case domain.ActionAbort:
		if err := s.git.AbortCherryPick(ctx); err != nil {
			s.reporter.Failure("Abort reported an error", err)
		}
		return domain.OutcomeSessionAborted, true

	default:
		s.reporter.Warn(fmt.Sprintf("Invalid choice %q. Try again.", action.Key()))
		return 0, false
	}
}

func (s *RecoverySession) showUnmergedFiles(ctx context.Context) {
	files, err := s.git.UnmergedFiles(ctx)
	if err != nil {
		s.reporter.Failure("Failed to list conflicted files", err)
		return
	}
	s.reporter.UnmergedFiles(files)
}

func (s *RecoverySession) showDiff(ctx context.Context) {
	s.reporter.Info("Showing staged diff")
	if err := s.git.ShowStagedDiff(ctx, s.reporter.Writer()); err != nil {
		s.reporter.Failure("Failed to show diff", err)
	}
}

// resolveAll forces every currently unmerged file to side and stages it.
// It stops at the first failure and leaves the rest for manual resolution.
func (s *RecoverySession) resolveAll(ctx context.Context, side domain.ResolveSide) {
	s.reporter.Info(fmt.Sprintf("Applying strategy: %s", side))

	files, err := s.git.UnmergedFiles(ctx)
	if err != nil {
		s.reporter.Failure("Failed to list conflicted files", err)
		return
	}
	if len(files) == 0 {
		s.reporter.Warn(fmt.Sprintf("%s: nothing to resolve", domain.ErrNoUnmergedFiles))
		return
	}

	for _, f := range files {
		s.reporter.Info(fmt.Sprintf("Taking %s for %s", side, f))
		if err := s.git.ResolveFile(ctx, f, side); err != nil {
			s.reporter.Failure("Strategy failed, resolve the remaining files manually", err)
			return
		}
	}
}

// openEditor opens the unmerged files; false means return to the menu
func (s *RecoverySession) openEditor(ctx context.Context) bool {
	files, err := s.git.UnmergedFiles(ctx)
	if err != nil {
		s.reporter.Failure("Failed to list conflicted files", err)
		return false
	}
	if len(files) == 0 {
		s.reporter.Warn("No conflicted files to open")
		return true
	}

	if err := s.editor.OpenFiles(ctx, files); err != nil {
		s.reporter.Failure("Editor failed", err)
		return false
	}
	return true
}

// continueOrSkip resumes the cherry-pick. When that fails the operator may
// skip the change; otherwise the menu is shown again. It never aborts.
func (s *RecoverySession) continueOrSkip(ctx context.Context) (domain.RecoveryOutcome, bool) {
	s.reporter.Info("Running git cherry-pick --continue --no-edit")
	err := s.git.ContinueCherryPick(ctx)
	if err == nil {
		s.reporter.Info("Continued successfully")
		return domain.OutcomeApplied, true
	}

	s.reporter.Failure("Could not continue the cherry-pick", err)
	skip, promptErr := s.prompter.Confirm(ctx, "Skip this commit?")
	if promptErr != nil {
		s.reporter.Failure("Could not read an answer", promptErr)
		return 0, false
	}
	if !skip {
		s.reporter.Info("Resolve the remaining conflicts, then continue or abort")
		return 0, false
	}

	if err := s.git.SkipCherryPick(ctx); err != nil {
		s.reporter.Failure("Skip reported an error", err)
	}
	return domain.OutcomeSkipped, true
}
