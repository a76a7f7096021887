package ports

import (
	"io"

	"github.com/renato0307/chronopick/internal/domain"
)

// ReplayReporter renders replay progress for the operator
type ReplayReporter interface {
	ChangeApplied(change domain.ChangeRecord)
	ChangeBlocked(change domain.ChangeRecord, err error)
	ChangeStarted(position, total int, change domain.ChangeRecord)
	ConflictHeader(change domain.ChangeRecord)
	Failure(msg string, err error)
	Info(msg string)
	ReplayAborted()
	Summary(summary domain.ReplaySummary)
	UnmergedFiles(files []string)
	Warn(msg string)
	// Writer is where raw tool output, such as diffs, is streamed
	Writer() io.Writer
}
