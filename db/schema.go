// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	dbType := TypeSQLite
	if _, ok := db.Driver().(*pq.Driver); ok {
		dbType = TypePostgres
	}

	_, err := db.Exec(schemaFor(dbType))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// schemaFor fills in the column types that differ between databases.
// Postgres keeps pub_date as TIMESTAMPTZ; SQLite has no such type and the
// driver only decodes columns declared TIMESTAMP into time.Time.
func schemaFor(dbType string) string {
	instant := "TIMESTAMP"
	if dbType == TypePostgres {
		instant = "TIMESTAMPTZ"
	}
	return strings.ReplaceAll(schema, "{{instant}}", instant)
}

// Kept to the subset of SQL shared by SQLite and PostgreSQL.
const schema = `
-- Questions
CREATE TABLE IF NOT EXISTS question (
    id TEXT PRIMARY KEY,
    question_text TEXT NOT NULL,
    pub_date {{instant}} NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_question_pub_date ON question(pub_date);

-- Choices
CREATE TABLE IF NOT EXISTS choice (
    id TEXT PRIMARY KEY,
    question_id TEXT NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    choice_text TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0),
    position INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_choice_question_id ON choice(question_id);
`
