// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation, and queries.

# Connecting

Open selects the driver by database type (sqlite or postgres):

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

SQLite is served by modernc.org/sqlite (pure Go), PostgreSQL by lib/pq.
SQLite connections are pinned to one per pool and file databases get a
busy_timeout, so concurrent requests wait for the writer lock.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: question text and publication instant
  - choice: answer options with vote counts

	question 1──* choice

# Queries

  - InsertQuestion: question plus choices, one transaction
  - AllQuestions: full snapshot for the visibility rules in package polls
  - ChoicesFor: choices of a question, in insertion order
  - Vote: atomic increment of a choice's vote count

Filtering by publication date is not done in SQL; callers pass the
snapshot to polls.ListVisibleQuestions.
*/
package db
