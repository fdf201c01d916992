package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schemaSQLite and schemaPostgres differ only in id generation and timestamp
// types; keep the column lists in sync.
const schemaSQLite = `
CREATE TABLE IF NOT EXISTS complaints (
	id                   INTEGER PRIMARY KEY AUTOINCREMENT,
	title                TEXT NOT NULL,
	description          TEXT NOT NULL,
	location             TEXT NOT NULL DEFAULT '',
	source               TEXT NOT NULL DEFAULT 'web',
	reporter_handle      TEXT NOT NULL DEFAULT '',
	department           TEXT NOT NULL DEFAULT '',
	urgency              TEXT NOT NULL DEFAULT 'low',
	confidence           INTEGER NOT NULL DEFAULT 0,
	detected             BOOLEAN NOT NULL DEFAULT 0,
	suggested_department TEXT NOT NULL DEFAULT '',
	suggested_urgency    TEXT NOT NULL DEFAULT 'low',
	authenticity_score   INTEGER NOT NULL DEFAULT 100,
	authenticity_label   TEXT NOT NULL DEFAULT '',
	authenticity_flags   TEXT NOT NULL DEFAULT '',
	status               TEXT NOT NULL DEFAULT 'received',
	created_at           TIMESTAMP NOT NULL,
	updated_at           TIMESTAMP NOT NULL,
	resolved_at          TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_complaints_status ON complaints(status);
CREATE INDEX IF NOT EXISTS idx_complaints_department ON complaints(department);
CREATE INDEX IF NOT EXISTS idx_complaints_urgency ON complaints(urgency);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS complaints (
	id                   BIGSERIAL PRIMARY KEY,
	title                TEXT NOT NULL,
	description          TEXT NOT NULL,
	location             TEXT NOT NULL DEFAULT '',
	source               TEXT NOT NULL DEFAULT 'web',
	reporter_handle      TEXT NOT NULL DEFAULT '',
	department           TEXT NOT NULL DEFAULT '',
	urgency              TEXT NOT NULL DEFAULT 'low',
	confidence           INTEGER NOT NULL DEFAULT 0,
	detected             BOOLEAN NOT NULL DEFAULT FALSE,
	suggested_department TEXT NOT NULL DEFAULT '',
	suggested_urgency    TEXT NOT NULL DEFAULT 'low',
	authenticity_score   INTEGER NOT NULL DEFAULT 100,
	authenticity_label   TEXT NOT NULL DEFAULT '',
	authenticity_flags   TEXT NOT NULL DEFAULT '',
	status               TEXT NOT NULL DEFAULT 'received',
	created_at           TIMESTAMPTZ NOT NULL,
	updated_at           TIMESTAMPTZ NOT NULL,
	resolved_at          TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_complaints_status ON complaints(status);
CREATE INDEX IF NOT EXISTS idx_complaints_department ON complaints(department);
CREATE INDEX IF NOT EXISTS idx_complaints_urgency ON complaints(urgency);
`

// Migrate applies the schema for the connected driver. Idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	schema := schemaSQLite
	if db.DriverName() == DriverPostgres {
		schema = schemaPostgres
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
