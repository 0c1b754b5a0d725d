// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Vote response constants. These are the only values accepted on the
// wire and the only values persisted; anything else is rejected at
// submission time and skipped by the tally.
const (
	ResponseYes   = "yes"
	ResponseMaybe = "maybe"
	ResponseNo    = "no"
)

// Request types

type CreatePollRequest struct {
	Title          string   `json:"title"`
	Location       string   `json:"location"`
	OrganizerName  string   `json:"organizer_name"`
	OrganizerEmail string   `json:"organizer_email,omitempty"`
	Dates          []string `json:"dates"` // ISO YYYY-MM-DD, order is preserved
}

// date -> yes|maybe|no. A date the voter skipped is simply absent.
type SubmitVoteRequest struct {
	VoterName  string            `json:"voter_name"`
	VoterEmail string            `json:"voter_email,omitempty"`
	VoterPhone string            `json:"voter_phone,omitempty"`
	Responses  map[string]string `json:"responses"`
}

// Response types

type CreatePollResponse struct {
	PollID  string `json:"poll_id"`
	PollURL string `json:"poll_url"`
}

type SubmitVoteResponse struct {
	VoteID  string `json:"vote_id"`
	Message string `json:"message"`
}

type PollResponse struct {
	Poll   Poll         `json:"poll"`
	Reveal RevealStatus `json:"reveal"`
}

type ResultsResponse struct {
	Poll      Poll             `json:"poll"`
	Entries   []VoteTallyEntry `json:"entries"`
	Suggested *VoteTallyEntry  `json:"suggested,omitempty"`
	VoteCount int              `json:"vote_count"`
	Reveal    RevealStatus     `json:"reveal"`
}

type VoterListResponse struct {
	Voters []VoterSummary `json:"voters"`
}

type ShareResponse struct {
	Message     string `json:"message"`
	PollURL     string `json:"poll_url"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// Domain types

type Poll struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Location       string    `json:"location"`
	OrganizerName  string    `json:"organizer_name"`
	OrganizerEmail *string   `json:"organizer_email,omitempty"`
	Dates          []string  `json:"dates"`
	CreatedAt      time.Time `json:"created_at"`
}

type Vote struct {
	ID         string            `json:"id"`
	PollID     string            `json:"poll_id"`
	VoterName  string            `json:"voter_name"`
	VoterEmail *string           `json:"voter_email,omitempty"`
	VoterPhone *string           `json:"voter_phone,omitempty"`
	Responses  map[string]string `json:"responses"`
	CreatedAt  time.Time         `json:"created_at"`
}

// VoteTallyEntry is the per-date aggregate derived from all votes on a
// poll. Never persisted; recomputed on every results read.
type VoteTallyEntry struct {
	Date        string   `json:"date"`
	Yes         int      `json:"yes"`
	Maybe       int      `json:"maybe"`
	No          int      `json:"no"`
	YesVoters   []string `json:"yes_voters"`
	MaybeVoters []string `json:"maybe_voters"`
	NoVoters    []string `json:"no_voters"`
}

// RevealStatus reports whether the suggested date may be shown to the
// viewer, and the countdown label while it may not.
type RevealStatus struct {
	Mode      string     `json:"mode"`
	Revealed  bool       `json:"revealed"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	Countdown string     `json:"countdown,omitempty"`
}

// VoterSummary is one row of the "who voted" roll on the results page.
type VoterSummary struct {
	Name     string    `json:"name"`
	VotedAt  time.Time `json:"voted_at"`
	VotedAgo string    `json:"voted_ago"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
