package ports

import (
	"context"

	"github.com/renato0307/chronopick/internal/domain"
)

// TaskLookup resolves a release label into the task identifiers planned for it.
// An unknown label yields an empty set and domain.ErrReleaseNotFound.
type TaskLookup interface {
	TasksForRelease(ctx context.Context, release string) (domain.TaskSet, error)
}
