// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Portable between PostgreSQL and SQLite; no dialect-specific defaults.
const schema = `
-- Hackathons
CREATE TABLE IF NOT EXISTS hackathon (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    url TEXT NOT NULL UNIQUE,
    description TEXT,
    rules TEXT,
    criteria TEXT,
    is_finished BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_hackathon_updated_at ON hackathon(updated_at);

-- Ranked winners, published by the judging backend when a hackathon finishes
CREATE TABLE IF NOT EXISTS winner (
    id TEXT PRIMARY KEY,
    hackathon_id TEXT NOT NULL REFERENCES hackathon(id) ON DELETE CASCADE,
    rank INTEGER NOT NULL,
    title TEXT NOT NULL,
    creator_name TEXT NOT NULL,
    description TEXT,
    project_url TEXT,
    average_score DOUBLE PRECISION NOT NULL DEFAULT 0,
    total_scores INTEGER NOT NULL DEFAULT 0 CHECK (total_scores >= 0),
    UNIQUE (hackathon_id, rank)
);

CREATE INDEX IF NOT EXISTS idx_winner_hackathon_id ON winner(hackathon_id);
`
