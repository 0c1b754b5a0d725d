// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import "github.com/google/uuid"

// NewPollID returns a fresh opaque identifier for a poll record.
func NewPollID() string {
	return uuid.NewString()
}

// NewVoteID returns a fresh opaque identifier for a vote record.
func NewVoteID() string {
	return uuid.NewString()
}

// Valid reports whether s has the shape of an identifier this service
// issues. Handlers use it to reject malformed path IDs before touching
// the store.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
