package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/logging"
	"github.com/renato0307/chronopick/internal/ports"
)

// TaskService resolves task sets from the issue tracker
type TaskService struct {
	lookup ports.TaskLookup
}

// NewTaskService creates a new TaskService. lookup may be nil when no
// tracker is configured.
func NewTaskService(lookup ports.TaskLookup) *TaskService {
	return &TaskService{
		lookup: lookup,
	}
}

// ForRelease returns the tasks planned for release. An unknown release
// yields an empty set together with domain.ErrReleaseNotFound.
func (s *TaskService) ForRelease(ctx context.Context, release string) (domain.TaskSet, error) {
	if s.lookup == nil {
		return domain.NewTaskSet(), domain.ErrTrackerNotConfigured
	}

	logging.Logger.Info("Looking up release tasks", "release", release)
	tasks, err := s.lookup.TasksForRelease(ctx, release)
	if err != nil {
		if errors.Is(err, domain.ErrReleaseNotFound) {
			return domain.NewTaskSet(), err
		}
		return nil, fmt.Errorf("failed to look up release %s: %w", release, err)
	}
	logging.Logger.Info("Release tasks found", "release", release, "tasks", tasks.Len())
	return tasks, nil
}

// MergeRelease adds the tasks of release to tasks. An unknown release adds
// nothing and is reported through found so the caller can warn; the tasks
// given explicitly still stand.
func (s *TaskService) MergeRelease(ctx context.Context, tasks domain.TaskSet, release string) (found bool, err error) {
	releaseTasks, err := s.ForRelease(ctx, release)
	if errors.Is(err, domain.ErrReleaseNotFound) {
		logging.Logger.Warn("Release not found, no tasks added", "release", release)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("release %s: %w", release, err)
	}
	tasks.Merge(releaseTasks)
	return true, nil
}

// ExportRelease looks up release and writes its tasks to path as a task file.
// The file is written even when the release is unknown, so later runs fail
// fast on the empty task set.
func (s *TaskService) ExportRelease(ctx context.Context, release, path string) (domain.TaskSet, error) {
	tasks, err := s.ForRelease(ctx, release)
	if err != nil && !errors.Is(err, domain.ErrReleaseNotFound) {
		return nil, err
	}
	if writeErr := WriteTaskFile(path, fmt.Sprintf("tasks for release %s", release), tasks); writeErr != nil {
		return nil, writeErr
	}
	return tasks, err
}
