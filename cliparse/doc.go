// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string (default for sqlite: file:polls.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - IndexLimit: Questions listed by the index view, 0 for all (default: 5)
  - EnvFile: Env file loaded before reading the environment (default: .env)

# CLI Flags

	-p    Server port
	-d    Database URL
	-t    Database type
	-n    Index limit
	-env  Env file path ("" disables loading)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	INDEX_LIMIT   → -n

CLI flags take precedence over environment variables, and variables
already present in the environment take precedence over the env file.
A missing .env is ignored unless -env names it explicitly.

# Validation

ParseFlags returns an error if:

  - PORT or INDEX_LIMIT is not a number
  - the index limit is negative
  - the database type is not sqlite or postgres
  - postgres is selected without a DATABASE_URL
*/
package cliparse
