package domain

import "time"

// ReplayRun is a recorded replay, kept in the journal for the history command
type ReplayRun struct {
	AbortedRemaining int
	Applied          int
	FinishedAt       time.Time
	ID               string
	Results          []ChangeResult
	Skipped          int
	Source           string
	StartedAt        time.Time
	Target           string
	Tasks            []string
}
