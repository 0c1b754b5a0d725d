// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package share

import (
	"fmt"
	"net/url"
	"strings"
)

// PollURL joins the configured public origin with the poll's voting
// page path.
func PollURL(baseURL, pollID string) string {
	return strings.TrimRight(baseURL, "/") + "/poll/" + pollID
}

// ResultsURL joins the configured public origin with the poll's
// results page path.
func ResultsURL(baseURL, pollID string) string {
	return strings.TrimRight(baseURL, "/") + "/results/" + pollID
}

// Message renders the invitation text embedded in share targets.
func Message(title, location, pollURL string) string {
	return fmt.Sprintf("Hey you are invited for an %s evening out in %s! Vote on what day suits you now! %s",
		title, location, pollURL)
}

// WhatsAppURL wraps a message in a wa.me deep link. The OS hands it to
// the WhatsApp share target with the text prefilled.
func WhatsAppURL(message string) string {
	return "https://wa.me/?text=" + url.QueryEscape(message)
}
