package structural

import (
	"errors"
	"reflect"
)

// Field resolution errors.
var (
	ErrNotRecord       = errors.New("not a struct or pointer to struct")
	ErrNoField         = errors.New("no such field")
	ErrUnexported      = errors.New("field is not exported")
	ErrEmbeddedPointer = errors.New("field is promoted through an embedded pointer")
)

// Field addresses one exported field of a struct type, held either by value
// or behind a pointer.
type Field struct {
	owner reflect.Type
	elem  reflect.Type
	name  string
	index []int
	typ   reflect.Type
}

// ResolveField looks up name on owner, which must be a struct or a pointer to
// a struct. Promoted fields are accepted unless they sit behind an embedded
// pointer, since copying the outer record would still share that pointer.
func ResolveField(owner reflect.Type, name string) (Field, error) {
	elem := owner
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return Field{}, ErrNotRecord
	}

	sf, ok := elem.FieldByName(name)
	if !ok {
		return Field{}, ErrNoField
	}
	if !sf.IsExported() {
		return Field{}, ErrUnexported
	}

	t := elem
	for _, i := range sf.Index[:len(sf.Index)-1] {
		ft := t.Field(i).Type
		if ft.Kind() == reflect.Pointer {
			return Field{}, ErrEmbeddedPointer
		}
		t = ft
	}

	return Field{owner: owner, elem: elem, name: name, index: sf.Index, typ: sf.Type}, nil
}

// Name returns the field name.
func (f Field) Name() string { return f.name }

// Type returns the field type.
func (f Field) Type() reflect.Type { return f.typ }

// Owner returns the record type the field was resolved on.
func (f Field) Owner() reflect.Type { return f.owner }

// Get reads the field. A nil pointer record reads as the zero value.
func (f Field) Get(record reflect.Value) reflect.Value {
	if f.owner.Kind() == reflect.Pointer {
		if record.IsNil() {
			return reflect.Zero(f.typ)
		}
		record = record.Elem()
	}
	return record.FieldByIndex(f.index)
}

// With returns a shallow copy of record whose field holds v. A nil pointer
// record yields a fresh record with only that field set.
func (f Field) With(record, v reflect.Value) reflect.Value {
	cp := reflect.New(f.elem)
	if f.owner.Kind() == reflect.Pointer {
		if !record.IsNil() {
			cp.Elem().Set(record.Elem())
		}
		cp.Elem().FieldByIndex(f.index).Set(v)
		return cp
	}
	cp.Elem().Set(record)
	cp.Elem().FieldByIndex(f.index).Set(v)
	return cp.Elem()
}

// UpdateField runs fn on the field of s and returns a copy of s holding the
// result, or s itself when fn reports no change.
func UpdateField[S, A any](s S, f Field, fn func(A) (A, bool)) (S, bool) {
	rv := reflect.ValueOf(&s).Elem()
	r, changed := fn(Into[A](f.Get(rv)))
	if !changed {
		return s, false
	}
	return Into[S](f.With(rv, reflect.ValueOf(&r).Elem())), true
}
