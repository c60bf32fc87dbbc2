// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-polls/cliparse"
	"github.com/danielhkuo/quickly-polls/handlers"
	"github.com/danielhkuo/quickly-polls/middleware"
	"github.com/danielhkuo/quickly-polls/polls"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	return NewRouterWithClock(db, cfg, polls.SystemClock{})
}

// NewRouterWithClock builds the router with an explicit time source
func NewRouterWithClock(db *sql.DB, cfg cliparse.Config, clock polls.Clock) *http.ServeMux {
	mux := http.NewServeMux()

	pollHandler := handlers.NewPollHandler(db, cfg, clock)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.Index))
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreateQuestion))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.Detail))
	mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(pollHandler.Results))
	mux.HandleFunc("POST /polls/{id}/vote", middleware.WithLogging(pollHandler.Vote))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("polls API v1"))
	})

	return mux
}
