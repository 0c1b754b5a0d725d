// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines shared types for the Evening Out API.

# Type Categories

Types are organized into three categories:

  - Request types: JSON payloads received from clients
    (CreatePollRequest, SubmitVoteRequest)
  - Response types: JSON payloads sent to clients
    (CreatePollResponse, ResultsResponse, ShareResponse, etc.)
  - Domain types: core entities (Poll, Vote) and derived aggregates
    (VoteTallyEntry, RevealStatus)

# Response Scale

Votes use a three-way availability scale per candidate date:

	models.ResponseYes    // "yes"   - can attend
	models.ResponseMaybe  // "maybe" - might attend
	models.ResponseNo     // "no"    - cannot attend

A date absent from a vote's Responses map means the voter gave no
answer for that date. That is distinct from ResponseNo and contributes
to no tally bucket.

# JSON Conventions

All types use snake_case JSON tags. Optional fields carry omitempty,
with pointers on domain types where absent and empty must differ.
*/
package models
