// Package database implements the store interfaces over database/sql.
// It supports two backends behind the same portable SQL: a local SQLite
// file (the default for the single-learner deployment) and PostgreSQL via
// the pgx stdlib driver. Placeholders use the $N form, which both engines
// accept natively.
package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	// Database drivers, registered for their side effects.
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Supported driver names, matching the database/sql registration names.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// sqliteDSNParams are connection options appended to every SQLite DSN:
// enforced foreign keys, a write-wait instead of immediate SQLITE_BUSY
// failures, and UTC timestamps on scan.
const sqliteDSNParams = "_foreign_keys=on&_busy_timeout=5000&_loc=UTC"

// defaultSelectionLimit bounds due/new word queries when the caller passes
// a non-positive limit.
const defaultSelectionLimit = 20

// Open opens a database handle for the configured driver and verifies the
// connection with a ping. The caller owns the returned handle.
func Open(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverSQLite:
		if strings.Contains(dsn, "?") {
			dsn += "&" + sqliteDSNParams
		} else {
			dsn += "?" + sqliteDSNParams
		}
	case DriverPostgres:
		// DSN is passed through untouched.
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		// SQLite serializes writers; a single connection avoids lock
		// contention between pooled connections on the same file.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// rowLockClause returns the locking suffix for read-modify-write selects.
// SQLite has no row locks; its transactions already serialize writers.
func rowLockClause(driver string) string {
	if driver == DriverPostgres {
		return " FOR UPDATE"
	}
	return ""
}
