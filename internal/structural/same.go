// Package structural holds the copy-on-change helpers behind every optic
// update. Each helper returns its input untouched, together with a false
// changed flag, when the transform left the focus alone.
package structural

import (
	"math"
	"reflect"
)

// Same reports whether b is still the value a, comparing by identity where
// Go has one and by value where it does not.
//
// Pointers, maps, channels and funcs compare by address. Slices are the same
// when they share nil-ness, length and backing array. Structs and arrays are
// the same when every field or element is. Floats compare bitwise, so a NaN
// is the same as itself.
//
// A func value's address is its code pointer, so two closures built from the
// same function literal are the same even when they capture different
// variables. An update that swaps such a closure for another one reads as
// no change and is dropped; wrap the func in a pointer or a struct with a
// distinguishing field when closures must be replaced.
func Same[T any](a, b T) bool {
	return same(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
}

func same(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return math.Float64bits(a.Float()) == math.Float64bits(b.Float())
	case reflect.Complex64, reflect.Complex128:
		ca, cb := a.Complex(), b.Complex()
		return math.Float64bits(real(ca)) == math.Float64bits(real(cb)) &&
			math.Float64bits(imag(ca)) == math.Float64bits(imag(cb))
	case reflect.String:
		return a.String() == b.String()
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		if a.Len() != b.Len() {
			return false
		}
		return a.Len() == 0 || a.Pointer() == b.Pointer()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return same(a.Elem(), b.Elem())
	case reflect.Array:
		for i := range a.Len() {
			if !same(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := range a.NumField() {
			if !same(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	}
	return false
}

// IsNil reports whether v holds nothing: a nil interface, or a nil pointer,
// map, slice, channel or func behind it.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Into converts a reflected value to A without tripping over nil interfaces.
func Into[A any](v reflect.Value) A {
	var a A
	if v.IsValid() {
		reflect.ValueOf(&a).Elem().Set(v)
	}
	return a
}
