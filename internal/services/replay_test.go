package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/chronopick/internal/domain"
)

func newEngine(git *fakeGit, resolver ConflictResolver) (*ReplayEngine, *fakeReporter) {
	reporter := &fakeReporter{}
	return NewReplayEngine(git, resolver, reporter), reporter
}

func TestReplayEngine_EmptyListDoesNothing(t *testing.T) {
	git := newFakeGit("main")
	engine, _ := newEngine(git, &scriptedResolver{})

	summary, err := engine.Run(context.Background(), nil, "release")

	require.NoError(t, err)
	assert.Equal(t, domain.ReplaySummary{}, summary)
	assert.Zero(t, git.count("checkout"))
	assert.Zero(t, git.count("pick"))
}

func TestReplayEngine_AppliesAllInOrderAndRestoresBranch(t *testing.T) {
	git := newFakeGit("main")
	engine, reporter := newEngine(git, &scriptedResolver{})
	changes := []domain.ChangeRecord{change("a", 1), change("b", 2), change("c", 3)}

	summary, err := engine.Run(context.Background(), changes, "release")

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Applied)
	assert.Zero(t, summary.Skipped)
	assert.Zero(t, summary.AbortedRemaining)
	assert.Equal(t, []string{
		"current", "checkout release", "pick a", "pick b", "pick c", "current", "checkout main",
	}, git.calls)
	assert.Equal(t, "main", git.branch)
	assert.Equal(t, []string{"1/3 a", "2/3 b", "3/3 c"}, reporter.started)
	require.Len(t, reporter.summaries, 1)
	assert.Equal(t, summary, reporter.summaries[0])
	for _, r := range summary.Results {
		assert.Equal(t, domain.ChangeApplied, r.State)
	}
}

func TestReplayEngine_TargetAlreadyCheckedOut(t *testing.T) {
	git := newFakeGit("release")
	engine, _ := newEngine(git, &scriptedResolver{})

	_, err := engine.Run(context.Background(), []domain.ChangeRecord{change("a", 1)}, "release")

	require.NoError(t, err)
	assert.Zero(t, git.count("checkout"))
	assert.Equal(t, "release", git.branch)
}

func TestReplayEngine_BlockedChangeResolvedAndSkipped(t *testing.T) {
	git := newFakeGit("main")
	git.pickErrs["b"] = errConflict
	git.pickErrs["c"] = errConflict
	resolver := &scriptedResolver{outcomes: []domain.RecoveryOutcome{domain.OutcomeApplied, domain.OutcomeSkipped}}
	engine, reporter := newEngine(git, resolver)
	changes := []domain.ChangeRecord{change("a", 1), change("b", 2), change("c", 3), change("d", 4)}

	summary, err := engine.Run(context.Background(), changes, "release")

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Applied)
	assert.Equal(t, 1, summary.Skipped)
	assert.Zero(t, summary.AbortedRemaining)
	assert.Equal(t, []string{"b", "c"}, resolver.calls)
	assert.Equal(t, []string{"b", "c"}, reporter.blocked)
	assert.Equal(t, domain.ChangeApplied, summary.Results[1].State)
	assert.Equal(t, 1, summary.Results[1].Conflicts)
	assert.Equal(t, domain.ChangeSkipped, summary.Results[2].State)
	assert.Equal(t, "main", git.branch)
}

func TestReplayEngine_AbortCountsRemainingAndStops(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		abortAt   int // 1-indexed
		remaining int
	}{
		{"abort at first", 4, 1, 4},
		{"abort in middle", 5, 3, 3},
		{"abort at last", 3, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			git := newFakeGit("main")
			changes := make([]domain.ChangeRecord, tt.n)
			for i := range changes {
				changes[i] = change(string(rune('a'+i)), int64(i))
			}
			blocked := changes[tt.abortAt-1].ID
			git.pickErrs[blocked] = errConflict
			engine, reporter := newEngine(git, &scriptedResolver{outcomes: []domain.RecoveryOutcome{domain.OutcomeSessionAborted}})

			summary, err := engine.Run(context.Background(), changes, "release")

			require.NoError(t, err)
			assert.Equal(t, tt.remaining, summary.AbortedRemaining)
			assert.Equal(t, tt.abortAt-1, summary.Applied)
			assert.Equal(t, tt.abortAt, git.count("pick"), "no change after the aborted one is attempted")
			assert.Equal(t, 1, reporter.aborted)
			assert.Equal(t, "main", git.branch)
			require.Len(t, reporter.summaries, 1)
			for _, r := range summary.Results[tt.abortAt-1:] {
				assert.Equal(t, domain.ChangeAborted, r.State)
			}
		})
	}
}

func TestReplayEngine_ResolverErrorIsReturned(t *testing.T) {
	git := newFakeGit("main")
	git.pickErrs["a"] = errConflict
	promptErr := errors.New("stdin closed")
	resolver := &scriptedResolver{
		outcomes: []domain.RecoveryOutcome{domain.OutcomeSessionAborted},
		errs:     []error{promptErr},
	}
	engine, _ := newEngine(git, resolver)

	summary, err := engine.Run(context.Background(), []domain.ChangeRecord{change("a", 1), change("b", 2)}, "release")

	require.Error(t, err)
	assert.ErrorIs(t, err, promptErr)
	assert.Equal(t, 2, summary.AbortedRemaining)
	assert.Equal(t, "main", git.branch)
}

func TestReplayEngine_TargetCheckoutFailure(t *testing.T) {
	git := newFakeGit("main")
	git.checkoutErr["release"] = errors.New("dirty worktree")
	engine, reporter := newEngine(git, &scriptedResolver{})

	summary, err := engine.Run(context.Background(), []domain.ChangeRecord{change("a", 1), change("b", 2)}, "release")

	require.Error(t, err)
	assert.Equal(t, 2, summary.AbortedRemaining)
	assert.Zero(t, git.count("pick"))
	assert.Equal(t, "main", git.branch)
	require.Len(t, reporter.summaries, 1)
}

func TestReplayEngine_RestoreFailureKeepsSummary(t *testing.T) {
	git := newFakeGit("main")
	git.checkoutErr["main"] = errors.New("local changes would be overwritten")
	engine, reporter := newEngine(git, &scriptedResolver{})

	summary, err := engine.Run(context.Background(), []domain.ChangeRecord{change("a", 1)}, "release")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to restore main")
	assert.Equal(t, 1, summary.Applied)
	require.Len(t, reporter.summaries, 1)
	assert.Equal(t, 1, reporter.summaries[0].Applied)
	require.Len(t, reporter.failures, 1)
}

func checkouts(git *fakeGit) []string {
	var result []string
	for _, c := range git.calls {
		if strings.HasPrefix(c, "checkout ") {
			result = append(result, c)
		}
	}
	return result
}

func TestReplayEngine_DetachedHeadRestoresCommit(t *testing.T) {
	git := newFakeGit("")
	git.head = "0123456789abcdef"
	engine, reporter := newEngine(git, &scriptedResolver{})

	summary, err := engine.Run(context.Background(), []domain.ChangeRecord{change("a", 1)}, "release")

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Applied)
	assert.Equal(t, []string{"checkout release", "checkout 0123456789abcdef"}, checkouts(git))
	assert.Empty(t, git.branch)
	require.NotEmpty(t, reporter.infos)
	assert.Contains(t, reporter.infos[len(reporter.infos)-1], "01234567")
}

func TestReplayEngine_DetachedHeadUnmovedSkipsRestore(t *testing.T) {
	git := newFakeGit("")
	git.head = "0123456789abcdef"
	git.checkoutErr["release"] = errors.New("checkout failed")
	engine, _ := newEngine(git, &scriptedResolver{})

	summary, err := engine.Run(context.Background(), []domain.ChangeRecord{change("a", 1)}, "release")

	require.Error(t, err)
	assert.Equal(t, 1, summary.AbortedRemaining)
	assert.Equal(t, []string{"checkout release"}, checkouts(git))
}

func TestReplayEngine_HeadCommitFailure(t *testing.T) {
	git := newFakeGit("")
	git.headErr = errors.New("bad HEAD")
	engine, reporter := newEngine(git, &scriptedResolver{})

	summary, err := engine.Run(context.Background(), []domain.ChangeRecord{change("a", 1)}, "release")

	require.Error(t, err)
	assert.Equal(t, 1, summary.AbortedRemaining)
	assert.Zero(t, git.count("checkout"))
	assert.Len(t, reporter.summaries, 1)
}

func TestReplayEngine_CurrentBranchFailure(t *testing.T) {
	git := newFakeGit("main")
	git.branchErr = errors.New("not a git repository")
	engine, _ := newEngine(git, &scriptedResolver{})

	summary, err := engine.Run(context.Background(), []domain.ChangeRecord{change("a", 1)}, "release")

	require.Error(t, err)
	assert.Equal(t, 1, summary.AbortedRemaining)
	assert.Zero(t, git.count("pick"))
	assert.Zero(t, git.count("checkout"))
}

func TestReplayEngine_RestoresBranchOnPanic(t *testing.T) {
	git := newFakeGit("main")
	git.pickErrs["a"] = errConflict
	engine, _ := newEngine(git, panickingResolver{})

	assert.Panics(t, func() {
		_, _ = engine.Run(context.Background(), []domain.ChangeRecord{change("a", 1)}, "release")
	})
	assert.Equal(t, "main", git.branch)
}

func TestReplayEngine_CanceledContextStillRestores(t *testing.T) {
	git := newFakeGit("main")
	engine, _ := newEngine(git, &scriptedResolver{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Run(ctx, []domain.ChangeRecord{change("a", 1)}, "release")

	require.NoError(t, err)
	assert.Equal(t, "main", git.branch)
}

type panickingResolver struct{}

func (panickingResolver) Resolve(ctx context.Context, change domain.ChangeRecord) (domain.RecoveryOutcome, error) {
	panic("unexpected termination")
}
