// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/evening-out/cliparse"
	"github.com/danielhkuo/evening-out/ident"
	"github.com/danielhkuo/evening-out/middleware"
	"github.com/danielhkuo/evening-out/models"
	"github.com/danielhkuo/evening-out/reveal"
	"github.com/danielhkuo/evening-out/share"
)

// queryTimeout bounds every store read so a stalled database surfaces
// an error instead of an endless loading state.
const queryTimeout = 5 * time.Second

const dateLayout = "2006-01-02"

type PollHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPollHandler(db *sql.DB, cfg cliparse.Config) *PollHandler {
	return &PollHandler{db: db, cfg: cfg}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.OrganizerName == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "organizer_name is required")
		return
	}
	if len(req.Dates) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "at least one candidate date is required")
		return
	}

	seen := make(map[string]bool, len(req.Dates))
	for _, date := range req.Dates {
		if _, err := time.Parse(dateLayout, date); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "invalid date (want YYYY-MM-DD): "+date)
			return
		}
		if seen[date] {
			middleware.ErrorResponse(w, http.StatusBadRequest, "duplicate date: "+date)
			return
		}
		seen[date] = true
	}

	pollID := ident.NewPollID()
	createdAt := time.Now()

	var email sql.NullString
	if req.OrganizerEmail != "" {
		email = sql.NullString{String: req.OrganizerEmail, Valid: true}
	}

	// Poll and its dates land atomically
	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO poll (id, title, location, organizer_name, organizer_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, pollID, req.Title, req.Location, req.OrganizerName, email, createdAt)

	if err != nil {
		slog.Error("failed to insert poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	for i, date := range req.Dates {
		_, err = tx.Exec(`
			INSERT INTO poll_date (poll_id, date, position)
			VALUES ($1, $2, $3)
		`, pollID, date, i)

		if err != nil {
			slog.Error("failed to insert poll date", "error", err, "date", date)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
		return
	}

	slog.Info("poll created", "poll_id", pollID, "organizer", req.OrganizerName, "dates", len(req.Dates))

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		PollID:  pollID,
		PollURL: share.PollURL(h.cfg.BaseURL, pollID),
	})
}

// GetPoll handles GET /polls/{id}
// Returns the poll with its ordered candidate dates, plus the reveal
// status the vote form needs for its countdown banner.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if !ident.Valid(pollID) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
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

	gate := reveal.NewGate(h.cfg.RevealMode, poll.CreatedAt, h.cfg.RevealWindow())

	middleware.JSONResponse(w, http.StatusOK, models.PollResponse{
		Poll:   poll,
		Reveal: revealStatus(gate, time.Now()),
	})
}

// loadPoll fetches a poll record and its candidate dates in the
// organizer's order.
func loadPoll(ctx context.Context, conn *sql.DB, pollID string) (models.Poll, error) {
	var poll models.Poll
	var location, email sql.NullString

	err := conn.QueryRowContext(ctx, `
		SELECT id, title, location, organizer_name, organizer_email, created_at
		FROM poll
		WHERE id = $1
	`, pollID).Scan(&poll.ID, &poll.Title, &location, &poll.OrganizerName, &email, &poll.CreatedAt)

	if err != nil {
		return models.Poll{}, err
	}

	poll.Location = location.String
	if email.Valid {
		poll.OrganizerEmail = &email.String
	}

	rows, err := conn.QueryContext(ctx, `
		SELECT date
		FROM poll_date
		WHERE poll_id = $1
		ORDER BY position
	`, pollID)

	if err != nil {
		return models.Poll{}, err
	}
	defer rows.Close()

	poll.Dates = []string{}
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return models.Poll{}, err
		}
		poll.Dates = append(poll.Dates, date)
	}

	return poll, rows.Err()
}
