//go:build !cgo_sqlite

package sqlite

import (
	"database/sql/driver"
	"fmt"
	"sync"

	msqlite "modernc.org/sqlite"

	"github.com/FocuswithJustin/strfunc/internal/logging"
)

const (
	driverName    = "sqlite"
	driverType    = "purego"
	driverPackage = "modernc.org/sqlite"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// registerFunctions binds every function once per process. modernc applies
// the registration to all connections opened afterwards.
func registerFunctions() error {
	registerOnce.Do(func() {
		for _, b := range bindings {
			fn := b.fn
			err := msqlite.RegisterDeterministicScalarFunction(b.name, 1,
				func(ctx *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
					return call(fn, args[0])
				})
			if err != nil {
				registerErr = fmt.Errorf("register %s: %w", b.name, err)
				return
			}
			logging.FunctionRegistered(b.name, driverName)
		}
	})
	return registerErr
}
