package pmap

import (
	"github.com/newmindtellus/Bridge.Immutable.Collections/internal/hamt"
	"github.com/newmindtellus/Bridge.Immutable.Collections/optional"
)

// Builder is a transient version of a map. Changes made to a builder
// do not affect the map it was made from; they occur as mutations
// that become persistent when Map is called. Builders are useful when
// applying many updates whose intermediate maps would never be seen.
// A Builder must not be shared between goroutines, and using it after
// Map panics with ErrBuilderSealed.
type Builder[K, V any] struct {
	opts *options
	t    *hamt.Transient[K, slot[V]]
	next uint64
}

// AsBuilder returns a builder that starts from the contents of m.
func (m Map[K, V]) AsBuilder() *Builder[K, V] {
	t := m.trie
	if t == nil {
		t = m.newTrie()
	}
	return &Builder[K, V]{
		opts: m.opts,
		t:    t.AsTransient(),
		next: m.next,
	}
}

// Size returns the number of entries.
func (b *Builder[K, V]) Size() uint {
	return uint(b.t.Len())
}

// Contains will test if the key exists in the builder.
func (b *Builder[K, V]) Contains(key K) bool {
	checkKey("Contains", key)
	_, ok := b.t.Find(key)
	return ok
}

// GetIfPresent returns the value for key, or Missing.
func (b *Builder[K, V]) GetIfPresent(key K) optional.Optional[V] {
	checkKey("GetIfPresent", key)
	s, ok := b.t.Find(key)
	if !ok {
		return optional.Missing[V]()
	}
	return optional.Present(s.val)
}

// AddOrUpdate associates value with key in place and returns b.
func (b *Builder[K, V]) AddOrUpdate(key K, value V) *Builder[K, V] {
	checkKey("AddOrUpdate", key)
	checkValue("AddOrUpdate", value)
	cur, found := b.t.Find(key)
	switch {
	case !found:
		b.t.Assoc(key, slot[V]{ord: b.next, val: value})
		b.next++
	case !resolve(b.opts).valuesEqual(cur.val, value):
		b.t.Assoc(key, slot[V]{ord: cur.ord, val: value})
	}
	return b
}

// RemoveIfPresent removes key in place and returns b.
func (b *Builder[K, V]) RemoveIfPresent(key K) *Builder[K, V] {
	checkKey("RemoveIfPresent", key)
	b.t.Without(key)
	return b
}

// Map seals the builder and returns its contents as a persistent map.
func (b *Builder[K, V]) Map() Map[K, V] {
	t := b.t.Persistent()
	if t.Len() == 0 {
		return Map[K, V]{opts: b.opts}
	}
	return Map[K, V]{
		opts: b.opts,
		trie: t,
		next: b.next,
	}
}
