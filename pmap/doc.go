// Package pmap implements an immutable, persistent map. Every update
// returns a new Map and leaves the receiver untouched; the two share
// all of the trie structure the update did not touch.
//
// A note about key and value equality. Keys are compared with the
// key's Equal(other interface{}) bool method when it has one and with
// '==' otherwise; such keys must also implement Hash() uintptr so that
// equal keys hash equally. Values are compared the same way when
// deciding whether AddOrUpdate would change anything. Both can be
// replaced per map with the KeyEquality and ValueEquality options.
//
// Without those methods a key hashes the way '==' compares it:
// structs and arrays by their fields and elements, strings by their
// contents, and pointers by address. A pointer key (or a struct
// holding one) therefore stays findable when its target is mutated,
// and two pointers to equal targets are different keys.
//
// Nil keys and values (untyped nil, nil pointers, maps, slices,
// functions, channels and interfaces) are never stored. Passing one
// panics with an *ArgumentError that matches ErrInvalidArgument.
//
// Maps serialize to JSON as a list of {"Key":k,"Value":v} objects in
// the order the keys were first added. Decoding rejects an entry whose
// Key or Value is missing or null with an error matching
// ErrInvalidArgument, even when the Go type has a usable zero value.
package pmap
