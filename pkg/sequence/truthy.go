// pkg/sequence/truthy.go

package sequence

import (
	"math"
	"reflect"
)

// Truthy coerces an arbitrary value to a boolean.
//
// Falsy: nil, false, numeric zero (including -0 and NaN), the empty
// string, nil or empty slices, maps and channels, nil pointers, nil funcs
// and nil interfaces. Everything else is truthy, including empty structs,
// non-nil pointers to zero values and the string "0".
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String:
		return rv.Len() != 0
	case reflect.Slice, reflect.Map, reflect.Chan:
		return !rv.IsNil() && rv.Len() != 0
	case reflect.Array:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	default:
		return true
	}
}
