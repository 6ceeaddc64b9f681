package opticstest

import (
	"fmt"

	"github.com/authcorp/libs/go/optics/internal/structural"
	"github.com/stretchr/testify/assert"
)

type tHelper interface {
	Helper()
}

// AssertSame asserts that actual is the very value expected: same pointer,
// same map, same slice backing array, field by field for structs.
func AssertSame(t assert.TestingT, expected, actual any, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if structural.Same(expected, actual) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("values are not the same reference\nexpected: %#v\nactual:   %#v", expected, actual), msgAndArgs...)
}

// AssertNotSame asserts that actual is a different value than expected.
func AssertNotSame(t assert.TestingT, expected, actual any, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !structural.Same(expected, actual) {
		return true
	}
	return assert.Fail(t, "values are unexpectedly the same reference", msgAndArgs...)
}
