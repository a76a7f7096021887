//go:build !windows

package cmd

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/chronopick/internal/config"
	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/services"
)

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, out)
}

func commitFile(t *testing.T, dir, name, content, message string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	runGit(t, dir, "add", name)
	runGit(t, dir, "commit", "-m", message)
}

// conflictingRepo returns a repository on main where cherry-picking the ECO-1
// commit of develop conflicts on a.txt
func conflictingRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")
	runGit(t, dir, "config", "commit.gpgsign", "false")
	commitFile(t, dir, "a.txt", "base\n", "add a")
	runGit(t, dir, "branch", "-M", "main")
	runGit(t, dir, "checkout", "-b", "develop")
	commitFile(t, dir, "a.txt", "develop\n", "ECO-1 change a")
	runGit(t, dir, "checkout", "main")
	commitFile(t, dir, "a.txt", "main\n", "main change a")
	return dir
}

func TestPickService_ManualResolutionInRepoDir(t *testing.T) {
	repoDir := conflictingRepo(t)

	// The editor resolves and stages each file relative to its own cwd
	script := filepath.Join(t.TempDir(), "resolve.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nfor f in \"$@\"; do echo resolved > \"$f\" && git add -- \"$f\" || exit 1; done\n"), 0755))

	otherDir := t.TempDir()
	t.Chdir(otherDir)

	stdout, err := os.Create(filepath.Join(t.TempDir(), "stdout"))
	require.NoError(t, err)
	defer stdout.Close()

	c := &Container{
		Settings: &config.Settings{},
		stdin:    strings.NewReader("m\n"),
		stdout:   stdout,
	}
	svc := c.NewPickService(PickOptions{
		Editor:   script,
		Plain:    true,
		RepoDir:  repoDir,
		Reporter: c.NewConsole(true),
	})

	ctx := context.Background()
	tasks := domain.NewTaskSet("ECO-1")
	require.NoError(t, svc.ValidateBranches(ctx, "develop", "main"))
	changes, err := svc.Plan(ctx, "develop", tasks)
	require.NoError(t, err)
	require.Len(t, changes, 1)

	summary, err := svc.Replay(ctx, services.ReplayParams{
		Changes: changes,
		Source:  "develop",
		Target:  "main",
		Tasks:   tasks,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Applied)
	assert.Zero(t, summary.AbortedRemaining)

	data, err := os.ReadFile(filepath.Join(repoDir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "resolved\n", string(data))
	assert.NoFileExists(t, filepath.Join(otherDir, "a.txt"))
}
