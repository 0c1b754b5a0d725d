// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/evening-out/cliparse"
	"github.com/danielhkuo/evening-out/ident"
	"github.com/danielhkuo/evening-out/middleware"
	"github.com/danielhkuo/evening-out/models"
	"github.com/danielhkuo/evening-out/share"
)

type ShareHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewShareHandler(db *sql.DB, cfg cliparse.Config) *ShareHandler {
	return &ShareHandler{db: db, cfg: cfg}
}

// GetShare handles GET /polls/{id}/share
// Returns a ready-made share payload: the invitation text, the poll
// URL for clipboard copy, and a WhatsApp deep link. Delivery itself is
// the client's business.
func (h *ShareHandler) GetShare(w http.ResponseWriter, r *http.Request) {
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

	pollURL := share.PollURL(h.cfg.BaseURL, poll.ID)
	message := share.Message(poll.Title, poll.Location, pollURL)

	middleware.JSONResponse(w, http.StatusOK, models.ShareResponse{
		Message:     message,
		PollURL:     pollURL,
		WhatsAppURL: share.WhatsAppURL(message),
	})
}
