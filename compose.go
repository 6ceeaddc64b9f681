package optics

// Compose focuses inner through outer. The result kind is
// Combine(outer.Kind(), inner.Kind()). Composition is associative.
func Compose[S, A, B any](outer Optic[S, A], inner Optic[A, B]) Optic[S, B] {
	return Optic[S, B]{
		kind: Combine(outer.kind, inner.kind),
		modify: func(f modifier[B]) modifier[S] {
			return outer.modify(inner.modify(f))
		},
	}
}
