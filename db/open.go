// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// Database types accepted by Open
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// How long SQLite waits on a lock held by another process
const sqliteBusyTimeoutMS = 5000

var ErrUnsupportedType = errors.New("unsupported database type")

// Open connects to the database of the given type and verifies the
// connection. SQLite allows a single writer, so its pool is pinned to one
// connection and requests queue in database/sql instead of failing with
// SQLITE_BUSY.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypeSQLite, TypePostgres:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, dbType)
	}

	if dbType == TypeSQLite {
		url = sqliteDSN(url)
	}

	conn, err := sql.Open(dbType, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	if dbType == TypeSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}

	return conn, nil
}

// sqliteDSN adds a busy timeout to file databases unless one is given
func sqliteDSN(url string) string {
	if isMemory(url) || strings.Contains(url, "busy_timeout") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_pragma=busy_timeout(%d)", url, sep, sqliteBusyTimeoutMS)
}

func isMemory(url string) bool {
	return url == ":memory:" || strings.Contains(url, "mode=memory")
}
