package state

import "reflect"

// EqualFunc compares two values for equality.
type EqualFunc[T any] func(a, b T) bool

// EqualComparable compares comparable values with ==.
func EqualComparable[T comparable](a, b T) bool {
	return a == b
}

// EqualDeep compares values with reflect.DeepEqual.
func EqualDeep[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// IdentityFunc reports whether two values are the same instance.
type IdentityFunc[T any] func(a, b T) bool

// Identical reports whether a and b are the same instance.
//
// Pointers, maps, channels and unsafe pointers are identical when they point
// at the same object. Slices are identical when they share a backing array
// start and length. Other comparable kinds carry no identity beyond their
// bits and are compared with ==. Funcs and non-comparable aggregates are
// never identical unless both are nil.
func Identical[T any](a, b T) bool {
	return identical(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
}

func identical(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return a.Pointer() == b.Pointer() && a.Len() == b.Len()
	case reflect.Func:
		return a.IsNil() && b.IsNil()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		ea, eb := a.Elem(), b.Elem()
		if ea.Type() != eb.Type() {
			return false
		}
		return identical(ea, eb)
	}
	if a.Comparable() && b.Comparable() {
		return a.Equal(b)
	}
	return false
}

func isZero[T any](v T) bool {
	return reflect.ValueOf(&v).Elem().IsZero()
}
