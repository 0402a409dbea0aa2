//go:build cgo_sqlite

// CGO SQLite driver using mattn/go-sqlite3.
// This is used when the cgo_sqlite build tag is set.
//
// Build with: go build -tags cgo_sqlite
// Requires: CGO_ENABLED=1
package sqlite

import (
	"database/sql"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/FocuswithJustin/strfunc/internal/logging"
)

const (
	driverName    = "sqlite3_strfunc"
	driverType    = "cgo"
	driverPackage = "github.com/mattn/go-sqlite3"
)

func init() {
	sql.Register(driverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			for _, b := range bindings {
				fn := b.fn
				impl := func(arg interface{}) (interface{}, error) {
					// mattn hands NULL to generic arguments as a nil []byte
					if blob, ok := arg.([]byte); ok && blob == nil {
						arg = nil
					}
					return call(fn, arg)
				}
				if err := conn.RegisterFunc(b.name, impl, true); err != nil {
					return fmt.Errorf("register %s: %w", b.name, err)
				}
				logging.FunctionRegistered(b.name, driverName)
			}
			return nil
		},
	})
}

// registerFunctions is a no-op: the connect hook binds the functions on
// every new connection.
func registerFunctions() error {
	return nil
}
