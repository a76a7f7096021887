package git

import (
	"context"
	"strconv"
	"strings"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/logging"
)

// fieldSep separates log fields; the unit separator never occurs in subjects
const fieldSep = "\x1f"

// logFormat yields: hash, subject, author, ISO date, parent hashes, unix author time
var logFormat = strings.Join([]string{"%H", "%s", "%an", "%ad", "%P", "%at"}, "%x1f")

const logFieldCount = 6

// logByTasks lists non-merge commits on branch whose message contains any of
// the patterns. Multiple --grep flags are ORed by git.
func logByTasks(ctx context.Context, r *runner, branch string, patterns []string) ([]domain.RawCommit, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	args := []string{
		"log", branch,
		"--format=" + logFormat,
		"--date=iso",
		"--no-merges",
		"--fixed-strings",
	}
	for _, p := range patterns {
		args = append(args, "--grep", p)
	}
	args = append(args, "--")

	logging.Logger.Info("Querying commit log", "branch", branch, "patterns", len(patterns))

	output, err := r.output(ctx, args...)
	if err != nil {
		return nil, err
	}

	commits := parseLogOutput(output)
	logging.Logger.Debug("Parsed commit log", "branch", branch, "commits", len(commits))
	return commits, nil
}

// parseLogOutput parses log lines produced with logFormat. Lines with the
// wrong field count or a non-integer timestamp are dropped.
func parseLogOutput(output string) []domain.RawCommit {
	var commits []domain.RawCommit
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		commit, ok := parseLogLine(line)
		if !ok {
			logging.Logger.Debug("Skipping malformed log line", "line", line)
			continue
		}
		commits = append(commits, commit)
	}
	return commits
}

func parseLogLine(line string) (domain.RawCommit, bool) {
	parts := strings.Split(strings.TrimRight(line, "\r"), fieldSep)
	if len(parts) != logFieldCount {
		return domain.RawCommit{}, false
	}

	hash := strings.TrimSpace(parts[0])
	if hash == "" {
		return domain.RawCommit{}, false
	}

	ts, err := strconv.ParseInt(strings.TrimSpace(parts[5]), 10, 64)
	if err != nil {
		return domain.RawCommit{}, false
	}

	return domain.RawCommit{
		Author:      parts[2],
		Hash:        hash,
		ISODate:     parts[3],
		ParentCount: len(strings.Fields(parts[4])),
		Subject:     parts[1],
		Timestamp:   ts,
	}, true
}
