package dynamic

import (
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"

	"github.com/authcorp/libs/go/optics/internal/structural"
)

func isRecord(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func isStringMap(t reflect.Type) bool {
	return t.Kind() == reflect.Map && t.Key().Kind() == reflect.String
}

func isSequence(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// getProp reads field name of s. Anything that is not a record, and any
// missing field, reads as nil.
func getProp(s any, name string) any {
	switch v := s.(type) {
	case nil:
		return nil
	case map[string]any:
		return v[name]
	}

	rv := reflect.ValueOf(s)
	t := rv.Type()
	switch {
	case isRecord(t):
		f, err := structural.ResolveField(t, name)
		if err != nil || (t.Kind() == reflect.Pointer && rv.IsNil()) {
			return nil
		}
		return f.Get(rv).Interface()
	case isStringMap(t):
		e := rv.MapIndex(reflect.ValueOf(name).Convert(t.Key()))
		if !e.IsValid() {
			return nil
		}
		return e.Interface()
	}
	return nil
}

// setProp returns a shallow copy of s with field name set to r. A nil s
// becomes a fresh map[string]any.
func setProp(r, s any, name string) any {
	switch v := s.(type) {
	case nil:
		return map[string]any{name: r}
	case map[string]any:
		out := make(map[string]any, len(v)+1)
		maps.Copy(out, v)
		out[name] = r
		return out
	}

	rv := reflect.ValueOf(s)
	t := rv.Type()
	switch {
	case isRecord(t):
		f, err := structural.ResolveField(t, name)
		if err != nil {
			panic(&TypeError{Op: "set field", Key: name, Type: t, Err: err})
		}
		return f.With(rv, assignable(r, f.Type(), name)).Interface()
	case isStringMap(t):
		out := reflect.MakeMapWithSize(t, rv.Len()+1)
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		out.SetMapIndex(reflect.ValueOf(name).Convert(t.Key()), assignable(r, t.Elem(), name))
		return out.Interface()
	}
	panic(&TypeError{Op: "set field", Key: name, Type: t, Value: r})
}

func getAt(s any, i int) (any, bool) {
	if v, ok := s.([]any); ok {
		if i < 0 || i >= len(v) {
			return nil, false
		}
		return v[i], true
	}
	if s == nil {
		return nil, false
	}

	rv := reflect.ValueOf(s)
	if !isSequence(rv.Kind()) || i < 0 || i >= rv.Len() {
		return nil, false
	}
	return rv.Index(i).Interface(), true
}

// setAt is only reached after getAt found slot i.
func setAt(r, s any, i int) any {
	if v, ok := s.([]any); ok {
		out := slices.Clone(v)
		out[i] = r
		return out
	}

	rv := reflect.ValueOf(s)
	out := cloneSequence(rv)
	out.Index(i).Set(assignable(r, rv.Type().Elem(), strconv.Itoa(i)))
	return out.Interface()
}

// mapElements applies f to the elements of a sequence selected by pred.
// Non-sequences come back untouched.
func mapElements(s any, f func(any) any, pred func(any, int) bool) any {
	if v, ok := s.([]any); ok {
		out, _ := structural.MapFiltered(v, func(e any) (any, bool) {
			r := f(e)
			return r, !structural.Same(e, r)
		}, pred)
		return out
	}
	if s == nil {
		return s
	}

	rv := reflect.ValueOf(s)
	if !isSequence(rv.Kind()) {
		return s
	}

	var out reflect.Value
	for i := range rv.Len() {
		e := rv.Index(i).Interface()
		if pred != nil && !pred(e, i) {
			continue
		}
		r := f(e)
		if structural.Same(e, r) {
			continue
		}
		if !out.IsValid() {
			out = cloneSequence(rv)
		}
		out.Index(i).Set(assignable(r, rv.Type().Elem(), strconv.Itoa(i)))
	}
	if !out.IsValid() {
		return s
	}
	return out.Interface()
}

func cloneSequence(rv reflect.Value) reflect.Value {
	if rv.Kind() == reflect.Array {
		out := reflect.New(rv.Type()).Elem()
		out.Set(rv)
		return out
	}
	out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(out, rv)
	return out
}

// assignable converts r for storage in a slot of type t. Numbers convert
// between numeric kinds, since decoders disagree on int64 versus float64,
// but only when the slot holds the same number afterwards.
func assignable(r any, t reflect.Type, key string) reflect.Value {
	if r == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
			return reflect.Zero(t)
		}
		panic(&TypeError{Op: "assign nil to", Key: key, Type: t})
	}

	v := reflect.ValueOf(r)
	if v.Type().AssignableTo(t) {
		return v
	}
	if isNumeric(v.Kind()) && isNumeric(t.Kind()) {
		out, ok := convertNumber(v, t)
		if !ok {
			panic(&TypeError{Op: "assign", Key: key, Type: t, Value: r, Err: ErrLossyNumber})
		}
		return out
	}
	panic(&TypeError{Op: "assign", Key: key, Type: t, Value: r})
}

// convertNumber converts v to t, reporting false when the result would be
// truncated, wrapped or out of range.
func convertNumber(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	out := reflect.New(t).Elem()
	switch {
	case out.CanInt():
		var n int64
		switch {
		case v.CanInt():
			n = v.Int()
		case v.CanUint():
			if v.Uint() > math.MaxInt64 {
				return reflect.Value{}, false
			}
			n = int64(v.Uint())
		default:
			f := v.Float()
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return reflect.Value{}, false
			}
			n = int64(f)
		}
		if out.OverflowInt(n) {
			return reflect.Value{}, false
		}
		out.SetInt(n)

	case out.CanUint():
		var n uint64
		switch {
		case v.CanInt():
			if v.Int() < 0 {
				return reflect.Value{}, false
			}
			n = uint64(v.Int())
		case v.CanUint():
			n = v.Uint()
		default:
			f := v.Float()
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
				return reflect.Value{}, false
			}
			n = uint64(f)
		}
		if out.OverflowUint(n) {
			return reflect.Value{}, false
		}
		out.SetUint(n)

	default:
		var f float64
		switch {
		case v.CanInt():
			f = float64(v.Int())
		case v.CanUint():
			f = float64(v.Uint())
		default:
			f = v.Float()
		}
		if out.OverflowFloat(f) {
			return reflect.Value{}, false
		}
		out.SetFloat(f)
	}
	return out, true
}
