// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the polls API server.

Polls is a small question-and-vote service. Questions carry a publication
instant: until it passes they are invisible, and for the first 24 hours
afterwards they are flagged as recently published.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (required for postgres)
  - INDEX_LIMIT (-n): Questions on the index (default: 5)

Variables may also be placed in a .env file (-env to choose another).

# Architecture

  - polls: Recency and visibility rules (pure, clock injected)
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - db: Connections, schema and queries
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
