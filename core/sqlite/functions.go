package sqlite

import (
	"fmt"
	"time"

	"github.com/FocuswithJustin/strfunc/core/strfunc"
	"github.com/FocuswithJustin/strfunc/internal/logging"
)

// binding ties one SQL name to the function that serves it.
type binding struct {
	name string
	fn   strfunc.Function
}

// bindings lists every registry name, aliases included, in sorted order.
var bindings = func() []binding {
	registry := strfunc.DefaultRegistry()
	out := make([]binding, 0, len(registry.Names()))
	for _, name := range registry.Names() {
		fn, _ := registry.Lookup(name)
		out = append(out, binding{name: name, fn: fn})
	}
	return out
}()

// call evaluates fn on one value handed over by the driver.
func call(fn strfunc.Function, arg any) (any, error) {
	result, err := fn.Call([]strfunc.Value{fromDriver(arg)})
	if err != nil {
		logging.EvaluationFailed(fn.Name(), err, "driver", driverName)
		return nil, err
	}
	return toDriver(result), nil
}

// fromDriver converts a driver value into a strfunc value. SQLite has no
// character type, so text always arrives as TypeText.
func fromDriver(v any) strfunc.Value {
	switch x := v.(type) {
	case nil:
		return strfunc.NewNullValue()
	case int64:
		return strfunc.NewIntValue(x)
	case float64:
		return strfunc.NewFloatValue(x)
	case string:
		return strfunc.NewTextValue(x)
	case []byte:
		return strfunc.NewBlobValue(x)
	case bool:
		if x {
			return strfunc.NewIntValue(1)
		}
		return strfunc.NewIntValue(0)
	case time.Time:
		return strfunc.NewTextValue(x.Format(time.RFC3339Nano))
	default:
		return strfunc.NewTextValue(fmt.Sprint(x))
	}
}

// toDriver converts a result back into a driver value.
func toDriver(v strfunc.Value) any {
	if v == nil || v.IsNull() {
		return nil
	}
	switch v.Type() {
	case strfunc.TypeInteger:
		return v.AsInt64()
	case strfunc.TypeFloat:
		return v.AsFloat64()
	case strfunc.TypeBlob:
		return v.AsBlob()
	default:
		return v.AsString()
	}
}
