package git

import (
	"context"
	"io"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/ports"
)

// CLIRepository implements ports.GitRepository using local git commands
type CLIRepository struct {
	r *runner
}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// Options configures a CLIRepository
type Options struct {
	// Dir is the working directory git runs in ("" means the process cwd)
	Dir string
	// Echo receives every command line when Verbose is set
	Echo    io.Writer
	Verbose bool
}

// NewCLIRepository creates a new CLIRepository
func NewCLIRepository(opts Options) *CLIRepository {
	return &CLIRepository{
		r: &runner{dir: opts.Dir, echo: opts.Echo, verbose: opts.Verbose},
	}
}

// CommitLogReader methods

// LogByTasks implements CommitLogReader.LogByTasks
func (c *CLIRepository) LogByTasks(ctx context.Context, branch string, patterns []string) ([]domain.RawCommit, error) {
	return logByTasks(ctx, c.r, branch, patterns)
}

// BranchManager methods

// Checkout implements BranchManager.Checkout
func (c *CLIRepository) Checkout(ctx context.Context, branch string) error {
	return checkout(ctx, c.r, branch)
}

// CurrentBranch implements BranchManager.CurrentBranch
func (c *CLIRepository) CurrentBranch(ctx context.Context) (string, error) {
	return currentBranch(ctx, c.r)
}

// HeadCommit implements BranchManager.HeadCommit
func (c *CLIRepository) HeadCommit(ctx context.Context) (string, error) {
	return headCommit(ctx, c.r)
}

// ValidateBranchName implements BranchManager.ValidateBranchName
func (c *CLIRepository) ValidateBranchName(name string) error {
	return validateBranchName(name)
}

// VerifyRef implements BranchManager.VerifyRef
func (c *CLIRepository) VerifyRef(ctx context.Context, ref string) error {
	return verifyRef(ctx, c.r, ref)
}

// CherryPicker methods

// CherryPick implements CherryPicker.CherryPick
func (c *CLIRepository) CherryPick(ctx context.Context, hash string) error {
	return cherryPick(ctx, c.r, hash)
}

// ContinueCherryPick implements CherryPicker.ContinueCherryPick
func (c *CLIRepository) ContinueCherryPick(ctx context.Context) error {
	return continueCherryPick(ctx, c.r)
}

// SkipCherryPick implements CherryPicker.SkipCherryPick
func (c *CLIRepository) SkipCherryPick(ctx context.Context) error {
	return skipCherryPick(ctx, c.r)
}

// AbortCherryPick implements CherryPicker.AbortCherryPick
func (c *CLIRepository) AbortCherryPick(ctx context.Context) error {
	return abortCherryPick(ctx, c.r)
}

// ConflictInspector methods

// UnmergedFiles implements ConflictInspector.UnmergedFiles
func (c *CLIRepository) UnmergedFiles(ctx context.Context) ([]string, error) {
	return unmergedFiles(ctx, c.r)
}

// ResolveFile implements ConflictInspector.ResolveFile
func (c *CLIRepository) ResolveFile(ctx context.Context, path string, side domain.ResolveSide) error {
	return resolveFile(ctx, c.r, path, side)
}

// ShowStagedDiff implements ConflictInspector.ShowStagedDiff
func (c *CLIRepository) ShowStagedDiff(ctx context.Context, w io.Writer) error {
	return showStagedDiff(ctx, c.r, w)
}
