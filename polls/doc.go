// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls holds the publication rules for questions.

# Recency

A question is recently published when it went public within the last
24 hours and is not scheduled for the future:

	recent, err := polls.WasPublishedRecently(q, now)

A question without a publication instant returns ErrInvalidState.

# Visibility

Questions become visible once their pub_date is at or before now.
ListVisibleQuestions filters a storage snapshot and orders it newest
first:

	visible := polls.ListVisibleQuestions(all, now)
	latest := polls.Latest(visible, 5)

GetVisibleQuestion looks up a single question and reports ErrNotFound
for unknown ids and future questions alike:

	q, err := polls.GetVisibleQuestion(all, id, now)
	if errors.Is(err, polls.ErrNotFound) {
		// 404
	}

# Time

Nothing in this package reads the wall clock. Callers pass now
explicitly, usually taken once per request from a Clock.

All functions are pure and safe for concurrent use. Input slices are
never modified or retained.
*/
package polls
