package storage

import (
	"strings"

	"github.com/renato0307/chronopick/internal/domain"
)

// runModelToDomain converts a ReplayRunModel (GORM) to domain.ReplayRun
func runModelToDomain(m ReplayRunModel) domain.ReplayRun {
	results := make([]domain.ChangeResult, 0, len(m.Changes))
	for _, c := range m.Changes {
		results = append(results, domain.ChangeResult{
			Change: domain.ChangeRecord{
				Author:    c.Author,
				CreatedAt: c.CommittedAt,
				ID:        c.Hash,
				ISODate:   c.ISODate,
				Subject:   c.Subject,
				TaskID:    c.TaskID,
			},
			Conflicts: c.Conflicts,
			State:     domain.ChangeState(c.State),
		})
	}

	var tasks []string
	if m.Tasks != "" {
		tasks = strings.Split(m.Tasks, ",")
	}

	return domain.ReplayRun{
		AbortedRemaining: m.AbortedRemaining,
		Applied:          m.Applied,
		FinishedAt:       m.FinishedAt,
		ID:               m.ID,
		Results:          results,
		Skipped:          m.Skipped,
		Source:           m.Source,
		StartedAt:        m.StartedAt,
		Target:           m.Target,
		Tasks:            tasks,
	}
}

// domainToRunModel converts a domain.ReplayRun to ReplayRunModel (GORM)
func domainToRunModel(r domain.ReplayRun) ReplayRunModel {
	changes := make([]ReplayChangeModel, 0, len(r.Results))
	for i, res := range r.Results {
		changes = append(changes, ReplayChangeModel{
			Author:      res.Change.Author,
			CommittedAt: res.Change.CreatedAt,
			Conflicts:   res.Conflicts,
			Hash:        res.Change.ID,
			ISODate:     res.Change.ISODate,
			Position:    i + 1,
			RunID:       r.ID,
			State:       string(res.State),
			Subject:     res.Change.Subject,
			TaskID:      res.Change.TaskID,
		})
	}

	return ReplayRunModel{
		AbortedRemaining: r.AbortedRemaining,
		Applied:          r.Applied,
		Changes:          changes,
		FinishedAt:       r.FinishedAt.UTC(),
		ID:               r.ID,
		Skipped:          r.Skipped,
		Source:           r.Source,
		StartedAt:        r.StartedAt.UTC(),
		Target:           r.Target,
		Tasks:            strings.Join(r.Tasks, ","),
	}
}
