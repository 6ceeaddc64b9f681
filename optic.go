package optics

import "github.com/authcorp/libs/go/optics/internal/structural"

// modifier is a focus transform that also reports whether it changed its
// input. Every level of a composed update threads this flag so that an
// untouched source is handed back as is.
type modifier[A any] func(A) (A, bool)

// Optic focuses on values of type A inside a source of type S.
//
// The zero Optic is not usable; build optics with the constructors in this
// package.
type Optic[S, A any] struct {
	kind   Kind
	modify func(modifier[A]) modifier[S]
}

// Chain is the builder view of an optic. Steps that keep the focus type are
// methods; steps that change it are functions taking the chain first.
type Chain[S, A any] = Optic[S, A]

// Kind returns the kind tag of the optic.
func (o Optic[S, A]) Kind() Kind {
	return o.kind
}

// Update returns a function applying fn to every focus of a source. The
// source is returned unchanged when fn returns each focus as it got it.
func (o Optic[S, A]) Update(fn func(A) A) func(S) S {
	m := o.modify(track(fn))
	return func(s S) S {
		r, _ := m(s)
		return r
	}
}

// Modify applies fn to every focus of s.
func (o Optic[S, A]) Modify(s S, fn func(A) A) S {
	return o.Update(fn)(s)
}

func track[A any](fn func(A) A) modifier[A] {
	return func(a A) (A, bool) {
		r := fn(a)
		return r, !structural.Same(a, r)
	}
}

func observe[A any](visit func(A)) modifier[A] {
	return func(a A) (A, bool) {
		visit(a)
		return a, false
	}
}
