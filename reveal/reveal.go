// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reveal

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Reveal mode constants
const (
	ModeTimed  = "timed"
	ModeManual = "manual"
)

// Gate state constants
const (
	StateHidden   = "hidden"
	StateRevealed = "revealed"
)

// ClosedLabel replaces the countdown once the window has elapsed.
const ClosedLabel = "Voting has closed"

// Gate decides whether the suggested date may be shown. In timed mode
// it flips to revealed once the deadline passes; a viewer tap may
// reveal earlier. In manual mode only Reveal() flips it. The
// transition is one-directional: a gate never goes back to hidden.
type Gate struct {
	mode     string
	deadline time.Time

	mu       sync.Mutex
	revealed bool
}

// NewGate builds a gate for a poll created at createdAt. The window is
// only meaningful in timed mode; manual gates ignore it.
func NewGate(mode string, createdAt time.Time, window time.Duration) *Gate {
	return &Gate{
		mode:     mode,
		deadline: createdAt.Add(window),
	}
}

// Mode returns the configured reveal mode.
func (g *Gate) Mode() string {
	return g.mode
}

// Deadline returns the instant the timed window elapses. Meaningless
// for manual gates.
func (g *Gate) Deadline() time.Time {
	return g.deadline
}

// Reveal forces the gate open, e.g. on a viewer tap. Safe to call more
// than once; later timed-deadline checks are no-ops afterwards.
func (g *Gate) Reveal() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.revealed = true
}

// StateAt reports the gate state as of now.
func (g *Gate) StateAt(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.revealed {
		return StateRevealed
	}
	if g.mode == ModeTimed && !now.Before(g.deadline) {
		g.revealed = true
		return StateRevealed
	}
	return StateHidden
}

// RevealedAt reports whether the suggested date may be shown as of now.
func (g *Gate) RevealedAt(now time.Time) bool {
	return g.StateAt(now) == StateRevealed
}

// CountdownAt renders the remaining-time label shown while hidden.
// Each component is floored independently off the remaining
// milliseconds, so "0h 0m 59s" ticks straight to "0h 0m 58s" with no
// rounding up.
func (g *Gate) CountdownAt(now time.Time) string {
	diff := g.deadline.Sub(now)
	if diff <= 0 {
		return ClosedLabel
	}

	ms := diff.Milliseconds()
	hours := ms / 3600000
	minutes := (ms / 60000) % 60
	seconds := (ms / 1000) % 60
	return fmt.Sprintf("%dh %dm %ds left to vote", hours, minutes, seconds)
}

// Run re-evaluates the gate on every tick, invoking fn with the state
// and countdown label, until the gate reveals or ctx is cancelled. fn
// is invoked once immediately so viewers never wait a full interval
// for the first label. The ticker is always released on return.
func (g *Gate) Run(ctx context.Context, interval time.Duration, fn func(state, countdown string)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		now := time.Now()
		state := g.StateAt(now)
		fn(state, g.CountdownAt(now))

		if state == StateRevealed {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
