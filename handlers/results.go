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
	"github.com/danielhkuo/evening-out/tally"
)

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// GetResults handles GET /polls/{id}/results
// Returns the per-date tally, the suggested date and the reveal
// status. The suggestion ships even while the gate is hidden: hiding
// is a presentation concern and the revealed flag drives it.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
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

	votes, err := loadVotes(ctx, h.db, pollID)
	if err != nil {
		slog.Error("failed to query votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	entries := tally.Count(poll.Dates, votes)

	var suggested *models.VoteTallyEntry
	if best, ok := tally.Suggest(entries); ok {
		suggested = &best
	}

	gate := reveal.NewGate(h.cfg.RevealMode, poll.CreatedAt, h.cfg.RevealWindow())

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Poll:      poll,
		Entries:   entries,
		Suggested: suggested,
		VoteCount: len(votes),
		Reveal:    revealStatus(gate, time.Now()),
	})
}

// revealStatus reports the gate as a stateless request sees it. Manual
// reveals live in the viewer's session, so a fresh gate is hidden
// unless the timed window has elapsed.
func revealStatus(g *reveal.Gate, now time.Time) models.RevealStatus {
	status := models.RevealStatus{
		Mode:     g.Mode(),
		Revealed: g.RevealedAt(now),
	}

	if g.Mode() == reveal.ModeTimed {
		deadline := g.Deadline()
		status.Deadline = &deadline
		if !status.Revealed {
			status.Countdown = g.CountdownAt(now)
		}
	}

	return status
}
