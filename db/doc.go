// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema

Four tables:

  - poll: one row per poll; title, location, organizer contact,
    creation time
  - poll_date: the poll's candidate dates with their organizer-given
    position; (poll_id, date) primary key enforces distinct dates
  - vote: one row per submitted vote; append-only
  - vote_response: the vote's date -> yes/maybe/no answers

# Portability

The same DDL runs on postgres (lib/pq) and sqlite (modernc.org/sqlite):
no NOW() defaults, no vendor column types, timestamps written by the
application. CreateSchema is idempotent (IF NOT EXISTS) and runs at
every startup:

	if err := db.CreateSchema(conn); err != nil { ... }
*/
package db
