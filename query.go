package optics

import "github.com/authcorp/libs/go/optics/option"

// Get returns the single focus of a KindOne optic. Any other kind yields a
// *KindError.
func Get[S, A any](o Optic[S, A], s S) (A, error) {
	var out A
	if o.kind != KindOne {
		return out, &KindError{Op: "Get", Kind: o.kind, Accepts: []Kind{KindOne}}
	}
	o.modify(observe(func(a A) { out = a }))(s)
	return out, nil
}

// MustGet is Get that panics on a kind mismatch.
func MustGet[S, A any](o Optic[S, A], s S) A {
	a, err := Get(o, s)
	if err != nil {
		panic(err)
	}
	return a
}

// Preview returns the focus of a KindOne or KindOptional optic, or None when
// it is absent. A traversal yields a *KindError.
func Preview[S, A any](o Optic[S, A], s S) (option.Option[A], error) {
	if o.kind == KindTraversal {
		return option.None[A](), &KindError{Op: "Preview", Kind: o.kind, Accepts: []Kind{KindOne, KindOptional}}
	}
	found := option.None[A]()
	o.modify(observe(func(a A) { found = option.Some(a) }))(s)
	return found, nil
}

// MustPreview is Preview that panics on a kind mismatch.
func MustPreview[S, A any](o Optic[S, A], s S) option.Option[A] {
	a, err := Preview(o, s)
	if err != nil {
		panic(err)
	}
	return a
}

// Traverse returns every focus of o in source order. It accepts any kind and
// returns an empty slice when nothing matched.
func Traverse[S, A any](o Optic[S, A], s S) []A {
	out := []A{}
	o.modify(observe(func(a A) { out = append(out, a) }))(s)
	return out
}

// Update is o.Update(fn).
func Update[S, A any](o Optic[S, A], fn func(A) A) func(S) S {
	return o.Update(fn)
}

// Set replaces every focus of s with a.
func Set[S, A any](o Optic[S, A], s S, a A) S {
	return o.Update(func(A) A { return a })(s)
}
