package db

import "database/sql"

// SchemaSQL is the complete schema of the punch journal.
//
// This is the single source of truth for the journal schema. Repository
// tests load it through GetSchemaSQL() instead of declaring their own
// tables, so a column referenced by repository code but missing here fails
// immediately with "no such column".
const SchemaSQL = `
-- Punch journal (append-only record of every accepted mutation)
CREATE TABLE IF NOT EXISTS punch_journal (
	id TEXT PRIMARY KEY,
	employee_id TEXT NOT NULL,
	actor_id TEXT,
	action TEXT NOT NULL CHECK(action IN ('start-shift', 'end-shift', 'start-break', 'end-break', 'start-lunch', 'end-lunch', 'register', 'edit-profile')),
	work_date TEXT,
	punch_time TEXT,
	adjusted INTEGER NOT NULL DEFAULT 0,
	detail TEXT,
	seq INTEGER NOT NULL,
	recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_punch_journal_employee ON punch_journal(employee_id);
`

// InitSchema creates the journal tables if they do not exist.
func InitSchema(database *sql.DB) error {
	_, err := database.Exec(SchemaSQL)
	return err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
