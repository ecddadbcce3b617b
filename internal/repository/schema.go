package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS review_sessions (
	id TEXT PRIMARY KEY,
	review_type TEXT NOT NULL,
	permit_number TEXT NOT NULL,
	address TEXT NOT NULL,
	reviewer TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS review_answers (
	session_id TEXT NOT NULL REFERENCES review_sessions(id) ON DELETE CASCADE,
	item_id TEXT NOT NULL,
	status TEXT NOT NULL,
	comment_ids TEXT NOT NULL DEFAULT '[]',
	custom_note TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMP NOT NULL,
	PRIMARY KEY (session_id, item_id)
)`,
	`CREATE TABLE IF NOT EXISTS export_jobs (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL REFERENCES review_sessions(id) ON DELETE CASCADE,
	format TEXT NOT NULL,
	status TEXT NOT NULL,
	filename TEXT,
	download_url TEXT,
	created_at TIMESTAMP NOT NULL,
	finished_at TIMESTAMP,
	error_message TEXT
)`,
	`CREATE TABLE IF NOT EXISTS manual_chunks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	section TEXT NOT NULL,
	content TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
)`,
}

// Migrate creates the application tables if they do not exist. The
// vector index dimension must match the configured embedding model.
func Migrate(db *sqlx.DB, embeddingDims int) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	vecDDL := fmt.Sprintf(
		`CREATE VIRTUAL TABLE IF NOT EXISTS vec_manual USING vec0(chunk_id INTEGER PRIMARY KEY, embedding float[%d])`,
		embeddingDims,
	)
	if _, err := db.Exec(vecDDL); err != nil {
		return fmt.Errorf("create vector index: %w", err)
	}
	return nil
}
