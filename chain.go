package optics

// Of returns the identity chain over T, the starting point of a path.
func Of[T any]() Chain[T, T] {
	return Identity[T]()
}

// Opt treats a nil focus as absent, so the steps after it are skipped.
func (o Optic[S, A]) Opt() Optic[S, A] {
	return Compose(o, Nullable[A]())
}

// Guard keeps the focus only when pred holds.
func (o Optic[S, A]) Guard(pred func(A) bool) Optic[S, A] {
	return Compose(o, Filtered(pred))
}

// Compose appends an optic that keeps the focus type. Use Then for one that
// changes it.
func (o Optic[S, A]) Compose(inner Optic[A, A]) Optic[S, A] {
	return Compose(o, inner)
}

// Then appends any optic to a chain.
func Then[S, A, B any](c Optic[S, A], o Optic[A, B]) Optic[S, B] {
	return Compose(c, o)
}

// Prop focuses on the exported field name of the current record, which must
// have type B. It panics when the field cannot be resolved.
func Prop[B, S, A any](c Optic[S, A], name string) Optic[S, B] {
	return Compose(c, MustField[A, B](name))
}

// At focuses on slot i of the current slice. Out of range is absent.
func At[S, E any](c Optic[S, []E], i int) Optic[S, E] {
	return Compose(c, Index[E](i))
}

// Filter focuses on the elements of the current slice for which pred holds.
func Filter[S, E any](c Optic[S, []E], pred func(E, int) bool) Optic[S, E] {
	return Compose(c, Elements(pred))
}

// Collect focuses on every element of the current slice.
func Collect[S, E any](c Optic[S, []E]) Optic[S, E] {
	return Compose(c, Elements[E](nil))
}

// Deref focuses through a pointer, absent when it is nil.
func Deref[S, T any](c Optic[S, *T]) Optic[S, T] {
	return Compose(c, Pointer[T]())
}

// Narrow keeps the focus only when it holds a B. It panics when B could not
// be written back as an A.
func Narrow[B, S, A any](c Optic[S, A]) Optic[S, B] {
	o, err := Downcast[A, B]()
	if err != nil {
		panic(err)
	}
	return Compose(c, o)
}

// MapKey focuses on entry k of the current map. A missing key is absent.
func MapKey[S any, K comparable, V any](c Optic[S, map[K]V], k K) Optic[S, V] {
	return Compose(c, Key[K, V](k))
}
