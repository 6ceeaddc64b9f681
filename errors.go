package optics

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrKindMismatch matches every *KindError.
	ErrKindMismatch = errors.New("optics: optic kind not accepted by operation")
	// ErrFieldType is wrapped when a field exists but has another type.
	ErrFieldType = errors.New("field type does not match focus type")
	// ErrNotAssignable is wrapped when a narrowed type cannot be written back.
	ErrNotAssignable = errors.New("narrowed type is not assignable to the focus type")
)

// KindError reports an optic handed to an operation that cannot use its kind,
// such as Get on a traversal.
type KindError struct {
	Op      string
	Kind    Kind
	Accepts []Kind
}

func (e *KindError) Error() string {
	names := make([]string, len(e.Accepts))
	for i, k := range e.Accepts {
		names[i] = k.String()
	}
	return fmt.Sprintf("optics: %s requires a %s optic, got %s", e.Op, strings.Join(names, " or "), e.Kind)
}

// Is makes errors.Is(err, ErrKindMismatch) hold.
func (e *KindError) Is(target error) bool {
	return target == ErrKindMismatch
}

// FieldError reports a record optic that cannot be built for a type.
type FieldError struct {
	Type  reflect.Type
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("optics: field %q of %v: %v", e.Field, e.Type, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
