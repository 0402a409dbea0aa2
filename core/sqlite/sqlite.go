// Package sqlite exposes the string built-ins of package strfunc as SQL
// functions in an embedded SQLite engine.
//
// Build modes:
//   - Default (CGO_ENABLED=0): pure Go modernc.org/sqlite
//   - CGO mode (CGO_ENABLED=1 -tags cgo_sqlite): mattn/go-sqlite3
//
// Every name in strfunc.DefaultRegistry is bound as a deterministic one
// argument function. LENGTH, LTRIM, RTRIM and CHAR replace SQLite's own
// one-argument built-ins of the same name on connections opened here; with
// the pure Go driver the registration is process wide.
//
// Use Open instead of sql.Open so the functions are registered first.
package sqlite

import (
	"database/sql"
	"fmt"
)

// DriverName returns the SQL driver name to use.
func DriverName() string {
	return driverName
}

// DriverType returns a string identifying the underlying implementation.
// Returns "cgo" for mattn/go-sqlite3, "purego" for modernc.org/sqlite.
func DriverType() string {
	return driverType
}

// IsCGO returns true if the CGO implementation is being used.
func IsCGO() bool {
	return driverType == "cgo"
}

// Open opens a SQLite database with the string functions registered.
func Open(dataSourceName string) (*sql.DB, error) {
	if err := registerFunctions(); err != nil {
		return nil, fmt.Errorf("failed to register string functions: %w", err)
	}
	return sql.Open(driverName, dataSourceName)
}

// OpenMemory opens a private in-memory database. The pool is limited to a
// single connection because every :memory: connection is its own database.
func OpenMemory() (*sql.DB, error) {
	db, err := Open(":memory:")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// MustOpen opens a SQLite database and panics on error.
// This is intended for use in tests or initialization code.
func MustOpen(dataSourceName string) *sql.DB {
	db, err := Open(dataSourceName)
	if err != nil {
		panic(fmt.Sprintf("sqlite: failed to open %s: %v", dataSourceName, err))
	}
	return db
}

// Info describes the driver configuration and the functions it carries.
type Info struct {
	DriverName string   `json:"driver_name"`
	DriverType string   `json:"driver_type"`
	IsCGO      bool     `json:"is_cgo"`
	Package    string   `json:"package"`
	Functions  []string `json:"functions"`
}

// GetInfo returns information about the current SQLite configuration.
func GetInfo() Info {
	names := make([]string, 0, len(bindings))
	for _, b := range bindings {
		names = append(names, b.name)
	}
	return Info{
		DriverName: driverName,
		DriverType: driverType,
		IsCGO:      IsCGO(),
		Package:    driverPackage,
		Functions:  names,
	}
}
