package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/renato0307/chronopick/internal/domain"
	"github.com/renato0307/chronopick/internal/logging"
	"github.com/renato0307/chronopick/internal/ports"
)

const maxRetries = 3

// SQLiteJournal implements ports.JournalRepository using GORM
type SQLiteJournal struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.JournalRepository = (*SQLiteJournal)(nil)

// NewSQLiteJournal opens (creating if needed) the journal database at dbPath
func NewSQLiteJournal(dbPath string) (*SQLiteJournal, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:      newGormLogger(),
		NowFunc:     func() time.Time { return time.Now().UTC() },
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&ReplayRunModel{}, &ReplayChangeModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal schema: %w", err)
	}

	logging.Logger.Debug("Journal opened", "path", dbPath)
	return &SQLiteJournal{db: db}, nil
}

// Close closes the database connection
func (j *SQLiteJournal) Close() error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// RecordRun stores run and its per-change results in one transaction
func (j *SQLiteJournal) RecordRun(ctx context.Context, run domain.ReplayRun) error {
	model := domainToRunModel(run)

	err := withRetry(func() error {
		return j.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Create(&model).Error
		})
	}, maxRetries)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return fmt.Errorf("%w: %s", domain.ErrRunExists, run.ID)
		}
		return fmt.Errorf("failed to record run %s: %w", run.ID, err)
	}

	logging.Logger.Debug("Run recorded", "run_id", run.ID, "changes", len(model.Changes))
	return nil
}

// ListRuns returns up to limit runs, newest first. A limit of zero or less
// returns every run.
func (j *SQLiteJournal) ListRuns(ctx context.Context, limit int) ([]domain.ReplayRun, error) {
	var models []ReplayRunModel

	err := withRetry(func() error {
		query := j.db.WithContext(ctx).
			Preload("Changes", func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC")
			}).
			Order("started_at DESC")
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	runs := make([]domain.ReplayRun, 0, len(models))
	for _, m := range models {
		runs = append(runs, runModelToDomain(m))
	}
	return runs, nil
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, err)
}
