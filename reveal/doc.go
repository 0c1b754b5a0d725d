// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reveal gates visibility of the suggested date.

# Modes

Two policies exist, picked by server configuration:

  - ModeTimed: hidden until a fixed window after poll creation elapses
    (48 hours by default), then revealed automatically. A viewer action
    may reveal earlier.
  - ModeManual: hidden until a viewer action reveals it. No timeout.

# State Machine

A Gate starts hidden and moves to revealed exactly once:

	g := reveal.NewGate(reveal.ModeTimed, poll.CreatedAt, 48*time.Hour)
	g.StateAt(time.Now())   // "hidden" or "revealed"
	g.Reveal()              // viewer tap; one-directional

Once revealed a gate never returns to hidden. Gate state is local to a
viewing session; it is not persisted or shared between viewers.

# Countdown

While hidden in timed mode, CountdownAt renders the label shown to the
viewer, for example "47h 59m 12s left to vote". Hours, minutes and
seconds are each floored off the remaining milliseconds. After the
deadline the label is "Voting has closed".

# Ticking

Run drives the once-per-second re-evaluation a results view needs:

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel() // released when the session ends
	go g.Run(ctx, time.Second, func(state, countdown string) { ... })

Run stops on reveal or on context cancellation and always releases the
underlying ticker.
*/
package reveal
