// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open resolves the driver for a database type, then pings with exponential
backoff so a database that is still starting does not abort the server:

	conn, err := db.Open(ctx, db.TypePostgres, url, 30*time.Second)

Supported types are "postgres" (github.com/lib/pq) and "sqlite"
(modernc.org/sqlite). SQLite connections are capped at one open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - app_user: registered members
  - postcard: one row per card, traveling or received

# Relationships

	app_user 1──* postcard (sender_id)
	app_user 1──* postcard (receiver_id)

A user's sent list is the postcards with its sender_id, and its received
list is the postcards with its receiver_id and status 'received'. Counts are
never stored separately.

# Indexes

  - postcard.sender_id
  - postcard.(receiver_id, status)
*/
package db
