// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method patterns.

	mux := router.NewRouter(db, cfg)

Tests pin the clock with NewRouterWithClock:

	mux := router.NewRouterWithClock(db, cfg, polls.FixedClock{T: now})

# Routes

	GET  /health              → "OK"
	GET  /                    → API banner
	GET  /polls               → index
	POST /polls               → create question
	GET  /polls/{id}          → detail
	GET  /polls/{id}/results  → results
	POST /polls/{id}/vote     → vote

All poll routes are wrapped with middleware.WithLogging.
*/
package router
