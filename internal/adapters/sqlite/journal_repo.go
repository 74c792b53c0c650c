// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/timeclock/internal/ports/secondary"
)

// JournalRepository implements secondary.JournalRepository with SQLite.
type JournalRepository struct {
	db *sql.DB
}

// NewJournalRepository creates a new SQLite journal repository.
func NewJournalRepository(db *sql.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// Append persists a new journal entry. A missing ID is generated.
func (r *JournalRepository) Append(ctx context.Context, entry *secondary.JournalRecord) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	var actor, detail sql.NullString
	if entry.ActorID != "" {
		actor = sql.NullString{String: entry.ActorID, Valid: true}
	}
	if entry.Detail != "" {
		detail = sql.NullString{String: entry.Detail, Valid: true}
	}

	adjusted := 0
	if entry.Adjusted {
		adjusted = 1
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO punch_journal (id, employee_id, actor_id, action, work_date, punch_time, adjusted, detail, seq)
		 SELECT ?, ?, ?, ?, ?, ?, ?, ?, COALESCE(MAX(seq), 0) + 1 FROM punch_journal`,
		entry.ID, entry.EmployeeID, actor, entry.Action, entry.WorkDate, entry.PunchTime, adjusted, detail,
	)
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}

	return nil
}

// List retrieves journal entries matching the filters, newest first.
func (r *JournalRepository) List(ctx context.Context, filters secondary.JournalFilters) ([]*secondary.JournalRecord, error) {
	query := "SELECT id, employee_id, actor_id, action, work_date, punch_time, adjusted, detail, recorded_at FROM punch_journal"

	var (
		where []string
		args  []any
	)
	if filters.EmployeeID != "" {
		where = append(where, "employee_id = ?")
		args = append(args, filters.EmployeeID)
	}
	if filters.Action != "" {
		where = append(where, "action = ?")
		args = append(args, filters.Action)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY seq DESC"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.JournalRecord
	for rows.Next() {
		var (
			actor      sql.NullString
			workDate   sql.NullString
			punchTime  sql.NullString
			detail     sql.NullString
			adjusted   int
			recordedAt time.Time
		)

		record := &secondary.JournalRecord{}
		err := rows.Scan(&record.ID, &record.EmployeeID, &actor, &record.Action, &workDate, &punchTime, &adjusted, &detail, &recordedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}

		record.ActorID = actor.String
		record.WorkDate = workDate.String
		record.PunchTime = punchTime.String
		record.Adjusted = adjusted == 1
		record.Detail = detail.String
		record.RecordedAt = recordedAt.Format(time.RFC3339)

		entries = append(entries, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal entries: %w", err)
	}

	return entries, nil
}

// Ensure JournalRepository implements the interface.
var _ secondary.JournalRepository = (*JournalRepository)(nil)
