// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the polls API.

# Handler Types

PollHandler serves every poll route. It is created with the database,
the config and a clock:

	pollHandler := handlers.NewPollHandler(db, cfg, polls.SystemClock{})

The clock is read once per request; that instant is passed to every
rule in package polls, so a request never straddles two notions of now.

# Routes

	GET  /polls              → Index (latest visible questions)
	POST /polls              → CreateQuestion
	GET  /polls/{id}         → Detail (question and choices)
	GET  /polls/{id}/results → Results (vote counts)
	POST /polls/{id}/vote    → Vote

# Visibility

Questions with a pub_date in the future do not exist as far as clients
are concerned: they are left out of the index and Detail, Results and
Vote answer 404 for them. An empty index carries the message
"No polls are available.".
*/
package handlers
