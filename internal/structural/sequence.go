package structural

import "maps"

// UpdateAt runs fn on s[i]. An index outside [0, len(s)) is a silent no-op.
func UpdateAt[E any](s []E, i int, fn func(E) (E, bool)) ([]E, bool) {
	if i < 0 || i >= len(s) {
		return s, false
	}
	r, changed := fn(s[i])
	if !changed {
		return s, false
	}
	out := make([]E, len(s))
	copy(out, s)
	out[i] = r
	return out, true
}

// MapFiltered runs fn on every element for which pred holds, in order. A nil
// pred selects everything. The copy is made on the first change only, so an
// untouched slice comes back as is.
func MapFiltered[E any](s []E, fn func(E) (E, bool), pred func(E, int) bool) ([]E, bool) {
	var out []E
	for i, e := range s {
		if pred != nil && !pred(e, i) {
			continue
		}
		r, changed := fn(e)
		if !changed {
			continue
		}
		if out == nil {
			out = make([]E, len(s))
			copy(out, s)
		}
		out[i] = r
	}
	if out == nil {
		return s, false
	}
	return out, true
}

// UpdateKey runs fn on m[k] when k is present. A missing key is a no-op.
func UpdateKey[M ~map[K]V, K comparable, V any](m M, k K, fn func(V) (V, bool)) (M, bool) {
	v, ok := m[k]
	if !ok {
		return m, false
	}
	r, changed := fn(v)
	if !changed {
		return m, false
	}
	out := maps.Clone(m)
	out[k] = r
	return out, true
}
