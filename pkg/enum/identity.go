package enum

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"unsafe"
)

// refToken identifies a value that cannot be used as a map key directly.
// Funcs are identified by their closure object, maps and slices by type and
// underlying pointer, slices additionally by length. NaN floats share one
// token per type. Other non-comparable values (structs or arrays holding
// such fields) are identified by their Go-syntax rendering.
type refToken struct {
	typ  reflect.Type
	ptr  unsafe.Pointer
	len  int
	repr string
}

// identityOf returns a value usable as a map key that represents v.
// Comparable values other than NaN are returned unchanged.
func identityOf(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)

	//nolint:exhaustive // only kinds needing a token are listed
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) {
			return refToken{typ: rv.Type(), repr: "NaN"}
		}
		return v
	case reflect.Func:
		return refToken{typ: rv.Type(), ptr: closureOf(v)}
	case reflect.Map:
		return refToken{typ: rv.Type(), ptr: rv.UnsafePointer()}
	case reflect.Slice:
		return refToken{typ: rv.Type(), ptr: rv.UnsafePointer(), len: rv.Len()}
	}

	if rv.Comparable() {
		return v
	}
	return refToken{typ: rv.Type(), repr: fmt.Sprintf("%#v", v)}
}

// closureOf returns the closure object of the func held in v. Func values
// are pointer-shaped, so it is the data word of the interface. Unlike
// reflect's code pointer it differs between closures of one literal.
func closureOf(v any) unsafe.Pointer {
	return (*[2]unsafe.Pointer)(unsafe.Pointer(&v))[1]
}

// DictKey renders a key of a simple kind (string or number) as a dictionary
// name. It reports false for every other kind, including bool and nil.
func DictKey(key any) (string, bool) {
	if key == nil {
		return "", false
	}
	rv := reflect.ValueOf(key)

	//nolint:exhaustive // only string and numeric kinds qualify
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	default:
		return "", false
	}
}
