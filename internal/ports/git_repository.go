package ports

import (
	"context"
	"io"

	"github.com/renato0307/chronopick/internal/domain"
)

// CommitLogReader queries the history log
type CommitLogReader interface {
	// LogByTasks returns non-merge commits of branch whose message matches any
	// of the grep patterns. Malformed log lines are dropped.
	LogByTasks(ctx context.Context, branch string, patterns []string) ([]domain.RawCommit, error)
}

// BranchManager inspects and switches branches
type BranchManager interface {
	Checkout(ctx context.Context, branch string) error
	CurrentBranch(ctx context.Context) (string, error)
	// HeadCommit returns the full hash HEAD points at
	HeadCommit(ctx context.Context) (string, error)
	ValidateBranchName(name string) error
	VerifyRef(ctx context.Context, ref string) error
}

// CherryPicker drives git cherry-pick and its sequencer states
type CherryPicker interface {
	AbortCherryPick(ctx context.Context) error
	CherryPick(ctx context.Context, hash string) error
	ContinueCherryPick(ctx context.Context) error
	SkipCherryPick(ctx context.Context) error
}

// ConflictInspector inspects and resolves unmerged files
type ConflictInspector interface {
	// ResolveFile forces path to the given side and stages it
	ResolveFile(ctx context.Context, path string, side domain.ResolveSide) error
	// ShowStagedDiff writes the colorized staged diff to w
	ShowStagedDiff(ctx context.Context, w io.Writer) error
	// UnmergedFiles lists files git currently reports as unmerged
	UnmergedFiles(ctx context.Context) ([]string, error)
}

// GitRepository is the composite interface
type GitRepository interface {
	BranchManager
	CherryPicker
	CommitLogReader
	ConflictInspector
}
