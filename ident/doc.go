// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates and validates record identifiers.

Polls and votes are keyed by random UUIDs:

	pollID := ident.NewPollID()
	voteID := ident.NewVoteID()

IDs are opaque to clients; the poll ID doubles as the shareable link
token, so there is no separate slug scheme. Valid lets handlers reject
malformed path parameters cheaply:

	if !ident.Valid(pollID) { // 404 without a database round trip
*/
package ident
