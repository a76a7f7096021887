package domain

// RawCommit is one parsed line of the history log, before task filtering
type RawCommit struct {
	Author      string
	Hash        string
	ISODate     string
	ParentCount int
	Subject     string
	Timestamp   int64
}

// ChangeRecord is a single historical change selected for replay.
// It always has exactly one parent and a task ID that belongs to the
// requested TaskSet; records that fail either check are never built.
type ChangeRecord struct {
	Author    string
	CreatedAt int64 // Unix seconds, the only sort key
	ID        string
	ISODate   string
	Subject   string
	TaskID    string
}

// ShortID returns the first 8 characters of the change ID
func (c ChangeRecord) ShortID() string {
	if len(c.ID) > 8 {
		return c.ID[:8]
	}
	return c.ID
}

// SubjectPreview returns the subject truncated to max runes with an ellipsis
func (c ChangeRecord) SubjectPreview(max int) string {
	runes := []rune(c.Subject)
	if len(runes) <= max {
		return c.Subject
	}
	return string(runes[:max]) + "..."
}
