// Package optional provides Optional, a value that is either present
// or missing. It is the result type of pmap lookups so that callers
// never need a sentinel value to signal absence.
package optional // import "github.com/newmindtellus/Bridge.Immutable.Collections/optional"

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/newmindtellus/Bridge.Immutable.Collections/internal/equality"
)

// ErrMissing is raised by Value when called on a missing Optional.
var ErrMissing = errors.New("optional: value is missing")

var jsonNull = []byte("null")

// Optional holds either a value (Present) or nothing (Missing). The
// zero value is Missing.
type Optional[T any] struct {
	value   T
	present bool
}

// Present returns a populated Optional.
func Present[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// Missing returns the empty Optional. It is the zero value, so it
// never allocates.
func Missing[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent reports whether o holds a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsMissing reports whether o is empty.
func (o Optional[T]) IsMissing() bool {
	return !o.present
}

// Get returns the value and whether it is present, mirroring the
// comma-ok form of a go map lookup.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Value returns the held value and panics with ErrMissing if there
// is none.
func (o Optional[T]) Value() T {
	if !o.present {
		panic(ErrMissing)
	}
	return o.value
}

// OrElse returns the held value, or def if o is missing.
func (o Optional[T]) OrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

// OrElseGet returns the held value, or the result of fn if o is
// missing. fn is only called when needed.
func (o Optional[T]) OrElseGet(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// Is reports whether o is present and holds a value equal to v.
func (o Optional[T]) Is(v T) bool {
	return o.present && equality.Values(o.value, v)
}

// Equal implements the dyn Equaler interface. Two Optionals are equal
// when both are missing or both are present with equal values. A raw
// T is treated as a present Optional, so a lookup result can be
// compared directly against a literal.
func (o Optional[T]) Equal(other interface{}) bool {
	switch v := other.(type) {
	case Optional[T]:
		if o.present != v.present {
			return false
		}
		return !o.present || equality.Values(o.value, v.value)
	case *Optional[T]:
		return v != nil && o.Equal(*v)
	case T:
		return o.Is(v)
	default:
		return false
	}
}

// String returns "Missing" or "Present(v)".
func (o Optional[T]) String() string {
	if !o.present {
		return "Missing"
	}
	return fmt.Sprintf("Present(%v)", o.value)
}

// MarshalJSON encodes Missing as null and Present as its value.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return jsonNull, nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as Missing and anything else as Present.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == string(jsonNull) {
		*o = Missing[T]()
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*o = Present(value)
	return nil
}
