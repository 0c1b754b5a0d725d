// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration from CLI flags and
environment variables.

CLI flags take precedence; environment variables fill anything left
unset; sensible defaults cover the rest.

# Settings

  - -p / PORT: server port (default 8080)
  - -d / DATABASE_URL: connection string, required
  - -t / DATABASE_TYPE: sqlite or postgres (default sqlite)
  - -base-url / BASE_URL: public origin embedded in share links
    (default http://localhost:<port>)
  - -reveal / REVEAL_MODE: timed or manual (default timed)
  - -reveal-hours / REVEAL_HOURS: timed window in hours (default 48)

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Config carries a couple of derived helpers: RevealWindow converts the
hour count to a time.Duration, DriverName maps the database type to the
registered database/sql driver.
*/
package cliparse
