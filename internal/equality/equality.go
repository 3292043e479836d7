// Package equality holds the value comparison shared by optional and
// pmap.
package equality

import (
	"reflect"

	"jsouthworth.net/go/dyn"
)

// Equaler is implemented by values that define their own equality.
type Equaler interface {
	Equal(other interface{}) bool
}

// Values prefers v1's own Equal method, then '=='. Values that cannot
// be compared with '==', such as slices, are compared element by
// element instead of panicking.
func Values(v1, v2 interface{}) bool {
	if e, ok := v1.(Equaler); ok {
		return e.Equal(v2)
	}
	r1, r2 := reflect.ValueOf(v1), reflect.ValueOf(v2)
	if !r1.Comparable() || !r2.Comparable() {
		return reflect.DeepEqual(v1, v2)
	}
	return dyn.Equal(v1, v2)
}
