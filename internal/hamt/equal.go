package hamt

import (
	"reflect"

	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/hash"
)

// Equaler is implemented by keys that define their own equality.
type Equaler interface {
	Equal(other interface{}) bool
}

// Hasher is implemented by keys that define their own hash. Keys that
// implement Equaler must implement Hasher consistently.
type Hasher interface {
	Hash() uintptr
}

// Equality is the key capability a trie is built with.
type Equality[K any] struct {
	Equal func(k1, k2 K) bool
	Hash  func(k K, seed uintptr) uintptr
}

// DefaultEquality uses a key's Equal and Hash methods when it has
// them and falls back to dyn.Equal and hash.Any.
func DefaultEquality[K any]() Equality[K] {
	return Equality[K]{
		Equal: defaultEqual[K],
		Hash:  defaultHash[K],
	}
}

func defaultEqual[K any](k1, k2 K) bool {
	if e, ok := any(k1).(Equaler); ok {
		return e.Equal(k2)
	}
	return dyn.Equal(k1, k2)
}

func defaultHash[K any](k K, seed uintptr) uintptr {
	v := any(k)
	if h, ok := v.(Hasher); ok {
		return h.Hash()
	}
	return hashValue(reflect.ValueOf(v), seed)
}

// hashValue hashes what '==' compares. Structs and arrays fold their
// elements together, interfaces hash their dynamic value and pointer
// like kinds hash their address. Only basic values reach hash.Any, so
// no hash depends on the memory a string or pointer happens to use.
func hashValue(rv reflect.Value, seed uintptr) uintptr {
	switch rv.Kind() {
	case reflect.Invalid:
		return seed
	case reflect.Bool:
		return hash.Any(rv.Bool(), seed)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return hash.Any(rv.Int(), seed)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return hash.Any(rv.Uint(), seed)
	case reflect.Float32, reflect.Float64:
		return hash.Any(normalizeZero(rv.Float()), seed)
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		h := hash.Any(normalizeZero(real(c)), seed)
		return hash.Any(normalizeZero(imag(c)), h)
	case reflect.String:
		return hash.Any(rv.String(), seed)
	case reflect.Struct:
		h := hash.Any(rv.NumField(), seed)
		for i := 0; i < rv.NumField(); i++ {
			h = hashValue(rv.Field(i), h)
		}
		return h
	case reflect.Array:
		h := hash.Any(rv.Len(), seed)
		for i := 0; i < rv.Len(); i++ {
			h = hashValue(rv.Index(i), h)
		}
		return h
	case reflect.Interface:
		if rv.IsNil() {
			return seed
		}
		return hashValue(rv.Elem(), seed)
	default:
		// Pointers, channels, maps, slices and funcs: '==' compares
		// identity, so the address is the hash.
		return hash.Any(rv.Pointer(), seed)
	}
}

// normalizeZero folds -0 into +0 since the two compare equal.
func normalizeZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

type keyOps[K any] struct {
	equal func(k1, k2 K) bool
	hash  func(k K, seed uintptr) uintptr
	seed  uintptr
}

func (o *keyOps[K]) hashOf(k K) uintptr {
	return o.hash(k, o.seed)
}

// identical is the trie's own notion of value equality: plain ==
// for comparable values, never equal otherwise.
func identical[V any](v1, v2 V) bool {
	r1 := reflect.ValueOf(&v1).Elem()
	r2 := reflect.ValueOf(&v2).Elem()
	if !r1.Comparable() || !r2.Comparable() {
		return false
	}
	return any(v1) == any(v2)
}
