// Package option provides Option, the presence-aware value returned by
// optic previews.
package option

import "fmt"

// Option holds a value that may be absent.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps a present value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None returns the absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr is Some(*ptr), or None for a nil pointer.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.present }

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool { return !o.present }

// Get returns the value and whether it is present, comma-ok style.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the value and panics when it is absent.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("option: Unwrap called on None")
	}
	return o.value
}

// UnwrapOr returns the value or fallback when absent.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// ToPtr returns a pointer to a copy of the value, or nil.
func (o Option[T]) ToPtr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// String renders Some(v) or None.
func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map transforms a present value.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(fn(o.value))
}
