package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/ports"
)

// ErrJournalDisabled is returned when no journal is available
var ErrJournalDisabled = errors.New("the journal is disabled or could not be opened")

// HistoryService reads recorded replay runs
type HistoryService struct {
	journal ports.JournalRepository
}

// NewHistoryService creates a new HistoryService. journal may be nil.
func NewHistoryService(journal ports.JournalRepository) *HistoryService {
	return &HistoryService{journal: journal}
}

// Recent returns the most recent runs, newest first
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.ReplayRun, error) {
	if s.journal == nil {
		return nil, ErrJournalDisabled
	}
	runs, err := s.journal.ListRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list replay runs: %w", err)
	}
	return runs, nil
}
