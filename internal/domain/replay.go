package domain

// ChangeState is the lifecycle state of one change during a replay
type ChangeState string

const (
	ChangeAborted  ChangeState = "aborted"
	ChangeApplied  ChangeState = "applied"
	ChangeApplying ChangeState = "applying"
	ChangeBlocked  ChangeState = "blocked"
	ChangePending  ChangeState = "pending"
	ChangeSkipped  ChangeState = "skipped"
)

// RecoveryOutcome is the terminal result of a conflict recovery session
type RecoveryOutcome int

const (
	OutcomeApplied RecoveryOutcome = iota
	OutcomeSkipped
	OutcomeSessionAborted
)

// String returns the outcome name
func (o RecoveryOutcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeSessionAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// ChangeResult records what happened to one change of a replay
type ChangeResult struct {
	Change    ChangeRecord
	Conflicts int // number of recovery sessions entered
	State     ChangeState
}

// ReplaySummary is the outcome of a whole replay run
type ReplaySummary struct {
	AbortedRemaining int
	Applied          int
	Results          []ChangeResult
	Skipped          int
}

// Total returns the number of changes the summary accounts for
func (s ReplaySummary) Total() int {
	return s.Applied + s.Skipped + s.AbortedRemaining
}

// ReplaySession is the engine's working state during a run
type ReplaySession struct {
	Changes        []ChangeRecord
	Index          int
	OriginalBranch string
	// OriginalCommit is set when the run started on a detached HEAD
	OriginalCommit string
	Summary        ReplaySummary
}

// NewReplaySession creates a session for the ordered changes
func NewReplaySession(changes []ChangeRecord, originalBranch string) *ReplaySession {
	results := make([]ChangeResult, len(changes))
	for i, c := range changes {
		results[i] = ChangeResult{Change: c, State: ChangePending}
	}
	return &ReplaySession{
		Changes:        changes,
		OriginalBranch: originalBranch,
		Summary:        ReplaySummary{Results: results},
	}
}

// Current returns the change at the current index
func (s *ReplaySession) Current() ChangeRecord {
	return s.Changes[s.Index]
}

// Done reports whether every change has been processed
func (s *ReplaySession) Done() bool {
	return s.Index >= len(s.Changes)
}

// SetState updates the state of the current change
func (s *ReplaySession) SetState(state ChangeState) {
	s.Summary.Results[s.Index].State = state
}

// MarkConflict counts one more recovery session for the current change
func (s *ReplaySession) MarkConflict() {
	s.Summary.Results[s.Index].Conflicts++
}

// Applied marks the current change applied and advances
func (s *ReplaySession) Applied() {
	s.SetState(ChangeApplied)
	s.Summary.Applied++
	s.Index++
}

// Skipped marks the current change skipped and advances
func (s *ReplaySession) Skipped() {
	s.SetState(ChangeSkipped)
	s.Summary.Skipped++
	s.Index++
}

// AbortRemaining marks the current change and every later one as aborted
// and moves the index past the end
func (s *ReplaySession) AbortRemaining() {
	for i := s.Index; i < len(s.Changes); i++ {
		s.Summary.Results[i].State = ChangeAborted
	}
	s.Summary.AbortedRemaining += len(s.Changes) - s.Index
	s.Index = len(s.Changes)
}
