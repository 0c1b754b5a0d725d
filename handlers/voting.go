// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/evening-out/cliparse"
	"github.com/danielhkuo/evening-out/ident"
	"github.com/danielhkuo/evening-out/middleware"
	"github.com/danielhkuo/evening-out/models"
	"github.com/danielhkuo/evening-out/reveal"
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg}
}

// SubmitVote handles POST /polls/{id}/votes
// Votes are append-only: a voter submitting twice creates two votes.
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if !ident.Valid(pollID) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.VoterName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter_name is required")
		return
	}
	if len(req.Responses) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "responses cannot be empty")
		return
	}

	for date, response := range req.Responses {
		switch response {
		case models.ResponseYes, models.ResponseMaybe, models.ResponseNo:
		default:
			middleware.ErrorResponse(w, http.StatusBadRequest, "response for "+date+" must be yes, maybe or no")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	poll, err := loadPoll(ctx, h.db, pollID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// In timed mode the reveal window is also the voting window.
	gate := reveal.NewGate(h.cfg.RevealMode, poll.CreatedAt, h.cfg.RevealWindow())
	if h.cfg.RevealMode == reveal.ModeTimed && gate.RevealedAt(time.Now()) {
		middleware.ErrorResponse(w, http.StatusConflict, "Voting has closed")
		return
	}

	validDates := make(map[string]bool, len(poll.Dates))
	for _, date := range poll.Dates {
		validDates[date] = true
	}
	for date := range req.Responses {
		if !validDates[date] {
			middleware.ErrorResponse(w, http.StatusBadRequest, "date not offered by this poll: "+date)
			return
		}
	}

	voteID := ident.NewVoteID()
	createdAt := time.Now()

	var email, phone sql.NullString
	if req.VoterEmail != "" {
		email = sql.NullString{String: req.VoterEmail, Valid: true}
	}
	if req.VoterPhone != "" {
		phone = sql.NullString{String: req.VoterPhone, Valid: true}
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO vote (id, poll_id, voter_name, voter_email, voter_phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, voteID, pollID, req.VoterName, email, phone, createdAt)

	if err != nil {
		slog.Error("failed to insert vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
		return
	}

	for date, response := range req.Responses {
		_, err = tx.Exec(`
			INSERT INTO vote_response (vote_id, date, response)
			VALUES ($1, $2, $3)
		`, voteID, date, response)

		if err != nil {
			slog.Error("failed to insert response", "error", err, "date", date)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
		return
	}

	slog.Info("vote submitted", "poll_id", pollID, "vote_id", voteID, "voter", req.VoterName)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		VoteID:  voteID,
		Message: "Vote submitted successfully",
	})
}

// ListVoters handles GET /polls/{id}/votes
// Returns the "who voted" roll: names and submission times, oldest
// first. Individual responses stay off this endpoint; they surface
// aggregated on the results endpoint.
func (h *VotingHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if !ident.Valid(pollID) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	var exists string
	err := h.db.QueryRowContext(ctx, "SELECT id FROM poll WHERE id = $1", pollID).Scan(&exists)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := h.db.QueryContext(ctx, `
		SELECT voter_name, created_at
		FROM vote
		WHERE poll_id = $1
		ORDER BY created_at, id
	`, pollID)

	if err != nil {
		slog.Error("failed to query votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	voters := []models.VoterSummary{}
	for rows.Next() {
		var v models.VoterSummary
		if err := rows.Scan(&v.Name, &v.VotedAt); err != nil {
			slog.Error("failed to scan vote", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		v.VotedAgo = humanize.Time(v.VotedAt)
		voters = append(voters, v)
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoterListResponse{Voters: voters})
}

// loadVotes fetches all votes for a poll with their responses, in
// submission order.
func loadVotes(ctx context.Context, conn *sql.DB, pollID string) ([]models.Vote, error) {
	rows, err := conn.QueryContext(ctx, `
		SELECT v.id, v.poll_id, v.voter_name, v.voter_email, v.voter_phone, v.created_at,
		       r.date, r.response
		FROM vote v
		LEFT JOIN vote_response r ON r.vote_id = v.id
		WHERE v.poll_id = $1
		ORDER BY v.created_at, v.id
	`, pollID)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	votes := []models.Vote{}
	index := make(map[string]int)

	for rows.Next() {
		var (
			id, name            string
			votePollID          string
			email, phone        sql.NullString
			createdAt           time.Time
			respDate, respValue sql.NullString
		)
		if err := rows.Scan(&id, &votePollID, &name, &email, &phone, &createdAt, &respDate, &respValue); err != nil {
			return nil, err
		}

		i, ok := index[id]
		if !ok {
			vote := models.Vote{
				ID:        id,
				PollID:    votePollID,
				VoterName: name,
				Responses: make(map[string]string),
				CreatedAt: createdAt,
			}
			if email.Valid {
				vote.VoterEmail = &email.String
			}
			if phone.Valid {
				vote.VoterPhone = &phone.String
			}
			votes = append(votes, vote)
			i = len(votes) - 1
			index[id] = i
		}

		if respDate.Valid && respValue.Valid {
			votes[i].Responses[respDate.String] = respValue.String
		}
	}

	return votes, rows.Err()
}
