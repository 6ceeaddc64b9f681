package dynamic

import (
	"fmt"

	"github.com/authcorp/libs/go/optics"
)

// Field focuses on field name of a record: a map[string]any, a struct or
// pointer to struct, or a map with string keys. A missing field reads as nil
// and writing it adds it. Writing into a nil record creates a
// map[string]any.
func Field(name string) optics.Optic[any, any] {
	return optics.Lens(
		func(s any) any { return getProp(s, name) },
		func(r, s any) any { return setProp(r, s, name) },
	)
}

// Index focuses on slot i of a slice or array. Anything else, and an index
// out of range, is absent.
func Index(i int) optics.Optic[any, any] {
	return optics.Affine(
		func(s any) (any, bool) { return getAt(s, i) },
		func(r, s any) any { return setAt(r, s, i) },
	)
}

// Elements focuses on the elements of a slice or array for which pred holds;
// a nil pred selects all of them. Anything else has no elements.
func Elements(pred func(v any, i int) bool) optics.Optic[any, any] {
	return optics.Custom(optics.KindTraversal, func(f func(any) any) func(any) any {
		return func(s any) any { return mapElements(s, f, pred) }
	})
}

// Matching returns a predicate selecting records whose field name renders as
// value.
func Matching(name, value string) func(any, int) bool {
	return func(e any, _ int) bool {
		v := getProp(e, name)
		return v != nil && fmt.Sprint(v) == value
	}
}
