package storage

import "time"

// ReplayRunModel is the GORM model for the replay_runs table
type ReplayRunModel struct {
	AbortedRemaining int                 `gorm:"not null;default:0"`
	Applied          int                 `gorm:"not null;default:0"`
	Changes          []ReplayChangeModel `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time
	FinishedAt       time.Time `gorm:"not null"`
	ID               string    `gorm:"primaryKey"`
	Skipped          int       `gorm:"not null;default:0"`
	Source           string    `gorm:"not null;default:''"`
	StartedAt        time.Time `gorm:"not null;index:idx_started_at"`
	Target           string    `gorm:"not null"`
	Tasks            string    `gorm:"not null;default:''"` // comma-separated, sorted
}

// TableName specifies the table name for GORM
func (ReplayRunModel) TableName() string { return "replay_runs" }

// ReplayChangeModel is the GORM model for one change of a replay run
type ReplayChangeModel struct {
	Author      string `gorm:"not null;default:''"`
	CommittedAt int64  `gorm:"not null"`
	Conflicts   int    `gorm:"not null;default:0"`
	Hash        string `gorm:"not null"`
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	ISODate     string `gorm:"not null;default:''"`
	Position    int    `gorm:"not null"`
	RunID       string `gorm:"not null;index:idx_run_id"`
	State       string `gorm:"not null;check:state IN ('pending','applying','applied','blocked','skipped','aborted')"`
	Subject     string `gorm:"not null;default:''"`
	TaskID      string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (ReplayChangeModel) TableName() string { return "replay_changes" }
