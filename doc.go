// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Evening Out API server.

Evening Out is a small scheduling service: an organizer proposes
candidate dates for a night out, invitees vote yes/maybe/no per date
through a shared link, and the results page suggests the date with the
most positive votes - revealed after a countdown or on a tap.

# Starting the Server

The server reads configuration from a .env file, environment variables
or CLI flags:

	DATABASE_URL=file:evening-out.db go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string (sqlite file or postgres URL)

Optional settings:

  - PORT (-p): server port (default: 8080)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - BASE_URL (-base-url): public origin for share links
  - REVEAL_MODE (-reveal): timed or manual (default: timed)
  - REVEAL_HOURS (-reveal-hours): timed window in hours (default: 48)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (polls, voting, results, sharing)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response and domain types
  - tally: vote aggregation and date suggestion (pure)
  - reveal: suggested-date visibility gate and countdown
  - share: share-link and message formatting
  - ident: record ID generation
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
