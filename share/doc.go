// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package share formats share links and invitation messages.

Sharing is pure string formatting; actually delivering the message is
delegated to OS or browser share targets. The server only hands the
client a ready-made payload:

	pollURL := share.PollURL(cfg.BaseURL, pollID)
	msg := share.Message(poll.Title, poll.Location, pollURL)
	wa := share.WhatsAppURL(msg)

The poll ID itself is the link token; anyone with the URL can vote.
*/
package share
