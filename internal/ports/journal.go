package ports

import (
	"context"

	"github.com/renato0307/chronopick/internal/domain"
)

// JournalRepository stores finished replay runs
type JournalRepository interface {
	Close() error
	ListRuns(ctx context.Context, limit int) ([]domain.ReplayRun, error)
	RecordRun(ctx context.Context, run domain.ReplayRun) error
}
