// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The DDL is kept
// portable across postgres and sqlite: timestamps are supplied by the
// application, no server-side defaults.
func CreateSchema(conn *sql.DB) error {
	_, err := conn.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Polls
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    location TEXT,
    organizer_name TEXT NOT NULL,
    organizer_email TEXT,
    created_at TIMESTAMP NOT NULL
);

-- Candidate dates, ordered by the organizer. The primary key doubles
-- as the no-duplicate-date invariant.
CREATE TABLE IF NOT EXISTS poll_date (
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    date TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (poll_id, date)
);

CREATE INDEX IF NOT EXISTS idx_poll_date_poll_id ON poll_date(poll_id);

-- Votes: append-only, never updated or deleted
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    voter_name TEXT NOT NULL,
    voter_email TEXT,
    voter_phone TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_poll_id ON vote(poll_id);

-- Per-date responses for a vote
CREATE TABLE IF NOT EXISTS vote_response (
    vote_id TEXT NOT NULL REFERENCES vote(id) ON DELETE CASCADE,
    date TEXT NOT NULL,
    response TEXT NOT NULL CHECK (response IN ('yes', 'maybe', 'no')),
    PRIMARY KEY (vote_id, date)
);

CREATE INDEX IF NOT EXISTS idx_vote_response_vote_id ON vote_response(vote_id);
`
