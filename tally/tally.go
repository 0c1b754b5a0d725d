// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"sort"

	"github.com/danielhkuo/evening-out/models"
)

// Count aggregates votes into one VoteTallyEntry per candidate date,
// in the same order as dates. A vote with no response for a date
// contributes to none of the three buckets. Responses keyed by a date
// that is not in dates, and response values outside the yes/maybe/no
// scale, are ignored rather than counted or rejected.
func Count(dates []string, votes []models.Vote) []models.VoteTallyEntry {
	entries := make([]models.VoteTallyEntry, len(dates))

	for i, date := range dates {
		entry := models.VoteTallyEntry{
			Date:        date,
			YesVoters:   []string{},
			MaybeVoters: []string{},
			NoVoters:    []string{},
		}

		for _, v := range votes {
			switch v.Responses[date] {
			case models.ResponseYes:
				entry.Yes++
				entry.YesVoters = append(entry.YesVoters, v.VoterName)
			case models.ResponseMaybe:
				entry.Maybe++
				entry.MaybeVoters = append(entry.MaybeVoters, v.VoterName)
			case models.ResponseNo:
				entry.No++
				entry.NoVoters = append(entry.NoVoters, v.VoterName)
			default:
				// unset or unrecognized: counts nowhere
			}
		}

		entries[i] = entry
	}

	return entries
}

// Suggest picks the entry with the most yes votes. Ties go to the
// entry that appears first in the input, which is the poll's own date
// ordering; the stable sort guarantees it. An all-zero tally still
// suggests the first date. Returns false only for empty input.
func Suggest(entries []models.VoteTallyEntry) (models.VoteTallyEntry, bool) {
	if len(entries) == 0 {
		return models.VoteTallyEntry{}, false
	}

	ranked := make([]models.VoteTallyEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Yes > ranked[j].Yes
	})

	return ranked[0], true
}
