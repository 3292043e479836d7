package pmap

import (
	"github.com/newmindtellus/Bridge.Immutable.Collections/internal/equality"
	"github.com/newmindtellus/Bridge.Immutable.Collections/internal/hamt"
)

type options struct {
	keyEqual   func(k1, k2 interface{}) bool
	keyHash    func(k interface{}) uintptr
	valueEqual func(v1, v2 interface{}) bool
}

var defaultOptions = options{
	valueEqual: equality.Values,
}

// Option is a type that allows changes to pluggable parts of the
// Map implementation.
type Option func(*options)

// KeyEquality is an option to the Empty function that replaces how
// keys are compared and hashed. Keys that are equal under eq must
// have the same hash. A nil function keeps the default.
func KeyEquality(eq func(k1, k2 interface{}) bool, hash func(k interface{}) uintptr) Option {
	return func(o *options) {
		if eq != nil {
			o.keyEqual = eq
		}
		if hash != nil {
			o.keyHash = hash
		}
	}
}

// ValueEquality is an option to the Empty function that replaces how
// AddOrUpdate decides that a new value is equal to the current one.
func ValueEquality(eq func(v1, v2 interface{}) bool) Option {
	return func(o *options) {
		if eq != nil {
			o.valueEqual = eq
		}
	}
}

func resolve(o *options) *options {
	if o == nil {
		return &defaultOptions
	}
	return o
}

func (o *options) valuesEqual(v1, v2 interface{}) bool {
	return o.valueEqual(v1, v2)
}

func keyEquality[K any](o *options) hamt.Equality[K] {
	eq := hamt.DefaultEquality[K]()
	if o.keyEqual != nil {
		equal := o.keyEqual
		eq.Equal = func(k1, k2 K) bool { return equal(k1, k2) }
	}
	if o.keyHash != nil {
		hash := o.keyHash
		eq.Hash = func(k K, _ uintptr) uintptr { return hash(k) }
	}
	return eq
}
