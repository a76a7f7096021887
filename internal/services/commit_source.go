package services

import (
	"context"
	"fmt"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/logging"
	"github.com/renato0307/chronopick/internal/ports"
)

// CommitSource discovers the changes of a branch that belong to a task set
type CommitSource struct {
	log ports.CommitLogReader
}

// NewCommitSource creates a new CommitSource
func NewCommitSource(log ports.CommitLogReader) *CommitSource {
	return &CommitSource{
		log: log,
	}
}

// Fetch returns the single-parent changes of branch whose subject carries a
// task ID from tasks. The log query's text match is only a prefilter: the
// task ID is re-extracted from every subject. Order is unspecified.
func (s *CommitSource) Fetch(ctx context.Context, branch string, tasks domain.TaskSet) ([]domain.ChangeRecord, error) {
	if tasks.Len() == 0 {
		return nil, nil
	}

	raw, err := s.log.LogByTasks(ctx, branch, tasks.Sorted())
	if err != nil {
		logging.Logger.Error("Failed to read commit log", "branch", branch, "error", err)
		return nil, fmt.Errorf("failed to read commits from %s: %w", branch, err)
	}

	records := make([]domain.ChangeRecord, 0, len(raw))
	for _, rc := range raw {
		taskID, ok := domain.ExtractTaskID(rc.Subject)
		if !ok || !tasks.Contains(taskID) {
			logging.Logger.Debug("Dropping commit outside task set", "hash", rc.Hash, "subject", rc.Subject, "task", taskID)
			continue
		}
		if rc.ParentCount != 1 {
			logging.Logger.Debug("Dropping commit with unexpected parent count", "hash", rc.Hash, "parents", rc.ParentCount)
			continue
		}

		records = append(records, domain.ChangeRecord{
			Author:    rc.Author,
			CreatedAt: rc.Timestamp,
			ID:        rc.Hash,
			ISODate:   rc.ISODate,
			Subject:   rc.Subject,
			TaskID:    taskID,
		})
	}

	logging.Logger.Info("Commits selected", "branch", branch, "candidates", len(raw), "selected", len(records))
	return records, nil
}
