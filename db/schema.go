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

// The statements are valid for both PostgreSQL and SQLite.
// Timestamps are always written by the application.
const schema = `
-- Users
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    email TEXT NOT NULL DEFAULT '',
    country TEXT NOT NULL DEFAULT '',
    date_joined TIMESTAMP NOT NULL
);

-- Postcards
CREATE TABLE IF NOT EXISTS postcard (
    id TEXT PRIMARY KEY,
    code TEXT NOT NULL,
    sender_id TEXT NOT NULL REFERENCES app_user(id),
    receiver_id TEXT NOT NULL REFERENCES app_user(id),
    status TEXT NOT NULL DEFAULT 'traveling' CHECK (status IN ('traveling', 'received')),
    sent_at TIMESTAMP NOT NULL,
    received_at TIMESTAMP,
    CHECK (status <> 'received' OR received_at IS NOT NULL),
    CHECK (sender_id <> receiver_id)
);

CREATE INDEX IF NOT EXISTS idx_postcard_sender_id ON postcard(sender_id);
CREATE INDEX IF NOT EXISTS idx_postcard_receiver_status ON postcard(receiver_id, status);
`
