package treeset

import (
	"cmp"
	"reflect"
)

// CompareFunc orders two elements. It returns a negative number when a sorts
// before b, zero when they are equal and a positive number otherwise. It must
// describe a total order.
type CompareFunc[T any] func(a, b T) int

// naturalOrder is the ordering used by New. NaN sorts before every other
// float and equals itself, keeping the order total.
func naturalOrder[T cmp.Ordered]() CompareFunc[T] {
	return cmp.Compare[T]
}

// nilable reports whether values of T can be nil.
func nilable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
