// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally implements vote aggregation and date suggestion.

# Counting

Count reduces a poll's votes into per-date buckets:

	entries := tally.Count(poll.Dates, votes)

One entry is produced per candidate date, in the poll's original date
order, with yes/maybe/no counts and the voter names behind each count.
Counting is total: malformed responses (an unknown value, or a date the
poll never offered) are skipped, never an error.

# Suggestion

Suggest selects the single best date:

	best, ok := tally.Suggest(entries)

The entry with the highest yes count wins. On ties the earliest date in
the poll's ordering wins - Suggest sorts stably and takes the first
element, so equal keys keep their relative order. A poll with no votes
yet still gets a suggestion (the first date, tied at zero); ok is false
only when entries is empty.

Both functions are pure: no I/O, no hidden state, identical output for
identical input.
*/
package tally
