package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/ports"
)

var errConflict = fmt.Errorf("%w: exit status 1", domain.ErrCherryPickConflict)

// fakeGit is a scripted in-memory stand-in for the git adapter
type fakeGit struct {
	calls []string

	branch      string
	branchErr   error
	checkoutErr map[string]error
	head        string
	headErr     error

	logCommits []domain.RawCommit
	logErr     error
	logBranch  string
	logPattern []string

	pickErrs     map[string]error
	continueErrs []error
	skipErr      error
	abortErr     error

	unmerged   []string
	resolveErr map[string]error
	resolved   map[string]domain.ResolveSide
	diff       string
}

var _ ports.GitRepository = (*fakeGit)(nil)

func newFakeGit(branch string) *fakeGit {
	return &fakeGit{
		branch:      branch,
		checkoutErr: map[string]error{},
		pickErrs:    map[string]error{},
		resolveErr:  map[string]error{},
		resolved:    map[string]domain.ResolveSide{},
	}
}

func (f *fakeGit) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGit) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (f *fakeGit) LogByTasks(ctx context.Context, branch string, patterns []string) ([]domain.RawCommit, error) {
	f.record("log %s", branch)
	f.logBranch = branch
	f.logPattern = patterns
	return f.logCommits, f.logErr
}

func (f *fakeGit) Checkout(ctx context.Context, branch string) error {
	f.record("checkout %s", branch)
	if err := f.checkoutErr[branch]; err != nil {
		return err
	}
	f.branch = branch
	if branch == f.head {
		f.branch = ""
	}
	return nil
}

func (f *fakeGit) CurrentBranch(ctx context.Context) (string, error) {
	f.record("current")
	return f.branch, f.branchErr
}

func (f *fakeGit) HeadCommit(ctx context.Context) (string, error) {
	f.record("head")
	return f.head, f.headErr
}

func (f *fakeGit) ValidateBranchName(name string) error {
	if name == "" || name == "bad;name" {
		return errors.New("invalid branch name")
	}
	return nil
}

func (f *fakeGit) VerifyRef(ctx context.Context, ref string) error {
	f.record("verify %s", ref)
	if ref == "missing" {
		return domain.ErrBranchNotFound
	}
	return nil
}

func (f *fakeGit) CherryPick(ctx context.Context, hash string) error {
	f.record("pick %s", hash)
	return f.pickErrs[hash]
}

func (f *fakeGit) ContinueCherryPick(ctx context.Context) error {
	f.record("continue")
	if len(f.continueErrs) == 0 {
		return nil
	}
	err := f.continueErrs[0]
	f.continueErrs = f.continueErrs[1:]
	return err
}

func (f *fakeGit) SkipCherryPick(ctx context.Context) error {
	f.record("skip")
	f.unmerged = nil
	return f.skipErr
}

func (f *fakeGit) AbortCherryPick(ctx context.Context) error {
	f.record("abort")
	f.unmerged = nil
	return f.abortErr
}

func (f *fakeGit) UnmergedFiles(ctx context.Context) ([]string, error) {
	f.record("unmerged")
	out := make([]string, len(f.unmerged))
	copy(out, f.unmerged)
	return out, nil
}

func (f *fakeGit) ResolveFile(ctx context.Context, path string, side domain.ResolveSide) error {
	f.record("resolve %s %s", side, path)
	if err := f.resolveErr[path]; err != nil {
		return err
	}
	f.resolved[path] = side
	remaining := f.unmerged[:0]
	for _, u := range f.unmerged {
		if u != path {
			remaining = append(remaining, u)
		}
	}
	f.unmerged = remaining
	return nil
}

func (f *fakeGit) ShowStagedDiff(ctx context.Context, w io.Writer) error {
	f.record("diff")
	_, err := io.WriteString(w, f.diff)
	return err
}

// fakeReporter records everything it is asked to render
type fakeReporter struct {
	aborted   int
	applied   []string
	blocked   []string
	failures  []string
	headers   []string
	infos     []string
	out       bytes.Buffer
	started   []string
	summaries []domain.ReplaySummary
	unmerged  [][]string
	warnings  []string
}

var _ ports.ReplayReporter = (*fakeReporter)(nil)

func (r *fakeReporter) ChangeApplied(change domain.ChangeRecord) {
	r.applied = append(r.applied, change.ID)
}

func (r *fakeReporter) ChangeBlocked(change domain.ChangeRecord, err error) {
	r.blocked = append(r.blocked, change.ID)
}

func (r *fakeReporter) ChangeStarted(position, total int, change domain.ChangeRecord) {
	r.started = append(r.started, fmt.Sprintf("%d/%d %s", position, total, change.ID))
}

func (r *fakeReporter) ConflictHeader(change domain.ChangeRecord) {
	r.headers = append(r.headers, change.ID)
}

func (r *fakeReporter) Failure(msg string, err error) {
	r.failures = append(r.failures, fmt.Sprintf("%s: %v", msg, err))
}

func (r *fakeReporter) Info(msg string) { r.infos = append(r.infos, msg) }

func (r *fakeReporter) ReplayAborted() { r.aborted++ }

func (r *fakeReporter) Summary(summary domain.ReplaySummary) {
	r.summaries = append(r.summaries, summary)
}

func (r *fakeReporter) UnmergedFiles(files []string) {
	r.unmerged = append(r.unmerged, files)
}

func (r *fakeReporter) Warn(msg string) { r.warnings = append(r.warnings, msg) }

func (r *fakeReporter) Writer() io.Writer { return &r.out }

// mockPrompter is a testify mock for ports.Prompter
type mockPrompter struct {
	mock.Mock
}

var _ ports.Prompter = (*mockPrompter)(nil)

func (m *mockPrompter) ChooseAction(ctx context.Context, change domain.ChangeRecord) (domain.RecoveryAction, error) {
	args := m.Called(ctx, change)
	return args.Get(0).(domain.RecoveryAction), args.Error(1)
}

func (m *mockPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	args := m.Called(ctx, question)
	return args.Bool(0), args.Error(1)
}

// mockEditor is a testify mock for ports.EditorOpener
type mockEditor struct {
	mock.Mock
}

var _ ports.EditorOpener = (*mockEditor)(nil)

func (m *mockEditor) OpenFiles(ctx context.Context, files []string) error {
	return m.Called(ctx, files).Error(0)
}

// scriptedResolver returns canned outcomes, one per blocked change
type scriptedResolver struct {
	calls    []string
	errs     []error
	outcomes []domain.RecoveryOutcome
}

func (s *scriptedResolver) Resolve(ctx context.Context, change domain.ChangeRecord) (domain.RecoveryOutcome, error) {
	i := len(s.calls)
	s.calls = append(s.calls, change.ID)
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	return s.outcomes[i], err
}

func change(id string, createdAt int64) domain.ChangeRecord {
	return domain.ChangeRecord{ID: id, CreatedAt: createdAt, TaskID: "ECO-1", Subject: "ECO-1 " + id}
}
