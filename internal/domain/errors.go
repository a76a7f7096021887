package domain

import "errors"

var (
	ErrBranchNotFound       = errors.New("branch does not exist")
	ErrCherryPickConflict   = errors.New("cherry-pick could not be applied cleanly")
	ErrDetachedHead         = errors.New("no branch is checked out")
	ErrEmptyTaskSet         = errors.New("no tasks specified")
	ErrNoUnmergedFiles      = errors.New("no unmerged files")
	ErrReleaseNotFound      = errors.New("release not found")
	ErrRunExists            = errors.New("replay run already recorded")
	ErrTrackerNotConfigured = errors.New("issue tracker is not configured")
)
