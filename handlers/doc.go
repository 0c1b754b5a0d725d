// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Evening Out API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - PollHandler: poll creation and retrieval
  - VotingHandler: vote submission and the voter roll
  - ResultsHandler: tally, suggested date and reveal status
  - ShareHandler: share-message payloads

Handlers are created via constructor functions that accept *sql.DB and
Config:

	pollHandler := handlers.NewPollHandler(db, cfg)

# Flow

An organizer creates a poll and shares its link; invitees vote; the
results page tallies:

	POST /polls                → CreatePoll (returns poll URL)
	GET  /polls/{id}           → GetPoll (vote form data + countdown)
	POST /polls/{id}/votes     → SubmitVote (append-only)
	GET  /polls/{id}/votes     → ListVoters ("who voted" roll)
	GET  /polls/{id}/results   → GetResults (tally + suggestion + reveal)
	GET  /polls/{id}/share     → GetShare (message + WhatsApp link)

There is no authentication: the poll ID is the capability. Polls are
never updated or deleted after creation, and votes are never edited.

# Tally and Reveal

GetResults composes the pure cores: tally.Count / tally.Suggest over
the fetched votes, and a reveal.Gate built from the poll's creation
time and the configured policy. In timed mode SubmitVote also consults
the gate - once the window has elapsed, voting returns 409.
*/
package handlers
