package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/logging"
	"github.com/renato0307/chronopick/internal/ports"
)

// PickService ties discovery, ordering, replay and the journal together
type PickService struct {
	branches ports.BranchManager
	engine   *ReplayEngine
	journal  ports.JournalRepository
	now      func() time.Time
	source   *CommitSource
}

// NewPickService creates a new PickService. journal may be nil to disable recording.
func NewPickService(
	branches ports.BranchManager,
	source *CommitSource,
	engine *ReplayEngine,
	journal ports.JournalRepository,
) *PickService {
	return &PickService{
		branches: branches,
		engine:   engine,
		journal:  journal,
		now:      time.Now,
		source:   source,
	}
}

// ValidateBranches checks both branch names and that the source resolves
func (s *PickService) ValidateBranches(ctx context.Context, sourceBranch, targetBranch string) error {
	for _, name := range []string{sourceBranch, targetBranch} {
		if err := s.branches.ValidateBranchName(name); err != nil {
			return fmt.Errorf("invalid branch %q: %w", name, err)
		}
	}
	if err := s.branches.VerifyRef(ctx, sourceBranch); err != nil {
		logging.Logger.Error("Source branch not found", "branch", sourceBranch, "error", err)
		return fmt.Errorf("source branch %q: %w", sourceBranch, err)
	}
	return nil
}

// Plan discovers the changes of sourceBranch for tasks, oldest first
func (s *PickService) Plan(ctx context.Context, sourceBranch string, tasks domain.TaskSet) ([]domain.ChangeRecord, error) {
	if tasks.Len() == 0 {
		return nil, domain.ErrEmptyTaskSet
	}

	records, err := s.source.Fetch(ctx, sourceBranch, tasks)
	if err != nil {
		return nil, err
	}
	return domain.OrderChronologically(records), nil
}

// ReplayParams describes one replay run
type ReplayParams struct {
	Changes []domain.ChangeRecord
	Source  string
	Target  string
	Tasks   domain.TaskSet
}

// Replay applies the planned changes and records the run in the journal.
// Journal failures are logged and never fail the replay.
func (s *PickService) Replay(ctx context.Context, params ReplayParams) (domain.ReplaySummary, error) {
	started := s.now()
	summary, err := s.engine.Run(ctx, params.Changes, params.Target)

	if s.journal != nil && len(params.Changes) > 0 {
		run := domain.ReplayRun{
			AbortedRemaining: summary.AbortedRemaining,
			Applied:          summary.Applied,
			FinishedAt:       s.now(),
			ID:               uuid.New().String(),
			Results:          summary.Results,
			Skipped:          summary.Skipped,
			Source:           params.Source,
			StartedAt:        started,
			Target:           params.Target,
			Tasks:            params.Tasks.Sorted(),
		}
		// The run is over; record it even if the caller gave up waiting
		if jerr := s.journal.RecordRun(context.WithoutCancel(ctx), run); jerr != nil {
			logging.Logger.Warn("Failed to record replay run", "error", jerr)
		} else {
			logging.Logger.Info("Replay run recorded", "run_id", run.ID)
		}
	}

	return summary, err
}
