package optics

import (
	"fmt"
	"reflect"

	"github.com/authcorp/libs/go/optics/internal/structural"
)

// Lens builds a KindOne optic from a getter and a setter. set receives the
// new focus and the source it replaces it in.
func Lens[S, A any](get func(S) A, set func(A, S) S) Optic[S, A] {
	return Optic[S, A]{
		kind: KindOne,
		modify: func(f modifier[A]) modifier[S] {
			return func(s S) (S, bool) {
				r, changed := f(get(s))
				if !changed {
					return s, false
				}
				return set(r, s), true
			}
		},
	}
}

// Adapter builds a KindOne optic whose setter rebuilds the whole source from
// the focus alone.
func Adapter[S, A any](get func(S) A, set func(A) S) Optic[S, A] {
	return Lens(get, func(a A, _ S) S { return set(a) })
}

// Affine builds a KindOptional optic. get reports false when the focus is
// absent, in which case updates leave the source alone.
func Affine[S, A any](get func(S) (A, bool), set func(A, S) S) Optic[S, A] {
	return Optic[S, A]{
		kind: KindOptional,
		modify: func(f modifier[A]) modifier[S] {
			return func(s S) (S, bool) {
				a, ok := get(s)
				if !ok {
					return s, false
				}
				r, changed := f(a)
				if !changed {
					return s, false
				}
				return set(r, s), true
			}
		},
	}
}

// Prism is Affine with a setter that rebuilds the source from the focus.
func Prism[S, A any](get func(S) (A, bool), set func(A) S) Optic[S, A] {
	return Affine(get, func(a A, _ S) S { return set(a) })
}

// Traversal builds a KindTraversal optic over the elements get returns. set
// is only called when at least one element changed.
func Traversal[S, A any](get func(S) []A, set func([]A, S) S) Optic[S, A] {
	return Optic[S, A]{
		kind: KindTraversal,
		modify: func(f modifier[A]) modifier[S] {
			return func(s S) (S, bool) {
				as, changed := structural.MapFiltered[A](get(s), f, nil)
				if !changed {
					return s, false
				}
				return set(as, s), true
			}
		},
	}
}

// Identity focuses on the whole source.
func Identity[S any]() Optic[S, S] {
	return Optic[S, S]{
		kind:   KindOne,
		modify: func(f modifier[S]) modifier[S] { return f },
	}
}

// Custom wraps a hand-written update function as an optic of the given kind.
// A change is detected by comparing the returned source with the input.
func Custom[S, A any](kind Kind, update func(func(A) A) func(S) S) Optic[S, A] {
	if !kind.Valid() {
		panic(fmt.Sprintf("optics: invalid kind %v", kind))
	}
	return Optic[S, A]{
		kind: kind,
		modify: func(f modifier[A]) modifier[S] {
			run := update(func(a A) A {
				r, _ := f(a)
				return r
			})
			return func(s S) (S, bool) {
				r := run(s)
				return r, !structural.Same(s, r)
			}
		},
	}
}

// Field builds a KindOne optic over the exported field name of S, which must
// be a struct or a pointer to a struct. The field type must be exactly A.
// Through a nil pointer the field reads as its zero value, and writing it
// allocates a new record.
func Field[S, A any](name string) (Optic[S, A], error) {
	owner := reflect.TypeFor[S]()
	fld, err := structural.ResolveField(owner, name)
	if err != nil {
		return Optic[S, A]{}, &FieldError{Type: owner, Field: name, Err: err}
	}
	if want := reflect.TypeFor[A](); fld.Type() != want {
		return Optic[S, A]{}, &FieldError{
			Type:  owner,
			Field: name,
			Err:   fmt.Errorf("%w: field is %v, focus is %v", ErrFieldType, fld.Type(), want),
		}
	}

	return Optic[S, A]{
		kind: KindOne,
		modify: func(f modifier[A]) modifier[S] {
			return func(s S) (S, bool) {
				return structural.UpdateField[S, A](s, fld, f)
			}
		},
	}, nil
}

// MustField is Field that panics on error.
func MustField[S, A any](name string) Optic[S, A] {
	o, err := Field[S, A](name)
	if err != nil {
		panic(err)
	}
	return o
}

// Index focuses on slot i of a slice. An index out of range is absent.
func Index[E any](i int) Optic[[]E, E] {
	return Optic[[]E, E]{
		kind: KindOptional,
		modify: func(f modifier[E]) modifier[[]E] {
			return func(s []E) ([]E, bool) {
				return structural.UpdateAt[E](s, i, f)
			}
		},
	}
}

// Elements focuses on every slice element for which pred holds, in order.
// A nil pred selects every element.
func Elements[E any](pred func(E, int) bool) Optic[[]E, E] {
	return Optic[[]E, E]{
		kind: KindTraversal,
		modify: func(f modifier[E]) modifier[[]E] {
			return func(s []E) ([]E, bool) {
				return structural.MapFiltered[E](s, f, pred)
			}
		},
	}
}

// Key focuses on the entry k of a map. A missing key is absent; updates
// never insert one.
func Key[K comparable, V any](k K) Optic[map[K]V, V] {
	return Optic[map[K]V, V]{
		kind: KindOptional,
		modify: func(f modifier[V]) modifier[map[K]V] {
			return func(m map[K]V) (map[K]V, bool) {
				return structural.UpdateKey[map[K]V, K, V](m, k, f)
			}
		},
	}
}

// Nullable passes its focus through unless it is nil. For types that cannot
// be nil the focus is always present.
func Nullable[A any]() Optic[A, A] {
	nillable := false
	switch reflect.TypeFor[A]().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		nillable = true
	}

	return Optic[A, A]{
		kind: KindOptional,
		modify: func(f modifier[A]) modifier[A] {
			if !nillable {
				return f
			}
			return func(a A) (A, bool) {
				if structural.IsNil(a) {
					return a, false
				}
				return f(a)
			}
		},
	}
}

// Pointer focuses on the value behind a non-nil pointer. Writing allocates a
// new pointer; the old target is never written through.
func Pointer[T any]() Optic[*T, T] {
	return Affine(
		func(p *T) (T, bool) {
			if p == nil {
				var zero T
				return zero, false
			}
			return *p, true
		},
		func(v T, _ *T) *T { return &v },
	)
}

// Filtered keeps its focus only when pred holds.
func Filtered[A any](pred func(A) bool) Optic[A, A] {
	return Optic[A, A]{
		kind: KindOptional,
		modify: func(f modifier[A]) modifier[A] {
			return func(a A) (A, bool) {
				if !pred(a) {
					return a, false
				}
				return f(a)
			}
		},
	}
}

// Downcast focuses on an A that holds a B, typically an interface value
// holding a concrete type. B must be assignable back to A.
func Downcast[A, B any]() (Optic[A, B], error) {
	from, to := reflect.TypeFor[A](), reflect.TypeFor[B]()
	if !to.AssignableTo(from) {
		return Optic[A, B]{}, fmt.Errorf("optics: downcast %v to %v: %w", from, to, ErrNotAssignable)
	}

	return Optic[A, B]{
		kind: KindOptional,
		modify: func(f modifier[B]) modifier[A] {
			return func(a A) (A, bool) {
				b, ok := any(a).(B)
				if !ok {
					return a, false
				}
				r, changed := f(b)
				if !changed {
					return a, false
				}
				return structural.Into[A](reflect.ValueOf(&r).Elem()), true
			}
		},
	}, nil
}
