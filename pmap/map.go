package pmap // import "github.com/newmindtellus/Bridge.Immutable.Collections/pmap"

import (
	"fmt"
	"sort"
	"strings"

	"github.com/newmindtellus/Bridge.Immutable.Collections/internal/hamt"
	"github.com/newmindtellus/Bridge.Immutable.Collections/optional"
	"jsouthworth.net/go/seq"
)

// slot is what the trie stores for each key: the value and the
// ordinal of the key's first insertion.
type slot[V any] struct {
	ord uint64
	val V
}

// Map is a persistent immutable map. Operations on a map return a
// new map that shares much of the structure with the original. Map
// is a small value; copying it copies a handle, not the entries.
//
// The zero value is the empty map. Two maps compare equal with '=='
// only when one was returned unchanged from an operation on the
// other; use Equal to compare contents.
type Map[K, V any] struct {
	opts *options
	trie *hamt.Trie[K, slot[V]]
	next uint64
}

type orderedEntry[K, V any] struct {
	ord   uint64
	entry Entry[K, V]
}

// Entry is a single key and value. It is also the JSON form of one
// map entry.
type Entry[K, V any] struct {
	Key   K `json:"Key"`
	Value V `json:"Value"`
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("[%v %v]", e.Key, e.Value)
}

// Empty returns an empty map. Without options this is the zero Map,
// shared by every caller. Options produce an empty map whose
// successors all use the given equality.
func Empty[K, V any](opts ...Option) Map[K, V] {
	if len(opts) == 0 {
		return Map[K, V]{}
	}
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	return Map[K, V]{opts: &o}
}

// FromEntries builds a map by adding each entry in order. Later
// entries overwrite earlier ones with an equal key.
func FromEntries[K, V any](entries ...Entry[K, V]) Map[K, V] {
	b := Empty[K, V]().AsBuilder()
	for _, e := range entries {
		b.AddOrUpdate(e.Key, e.Value)
	}
	return b.Map()
}

// FromNative converts a go map. Go maps are unordered so the
// insertion order of the result is unspecified.
func FromNative[K comparable, V any](native map[K]V) Map[K, V] {
	b := Empty[K, V]().AsBuilder()
	for k, v := range native {
		b.AddOrUpdate(k, v)
	}
	return b.Map()
}

// Size returns the number of entries in the map.
func (m Map[K, V]) Size() uint {
	if m.trie == nil {
		return 0
	}
	return uint(m.trie.Len())
}

// Contains will test if the key exists in the map. It panics if key
// is nil.
func (m Map[K, V]) Contains(key K) bool {
	checkKey("Contains", key)
	_, ok := m.find(key)
	return ok
}

// GetIfPresent returns the value for key, or Missing if the map has
// no entry for it. It panics if key is nil.
func (m Map[K, V]) GetIfPresent(key K) optional.Optional[V] {
	checkKey("GetIfPresent", key)
	s, ok := m.find(key)
	if !ok {
		return optional.Missing[V]()
	}
	return optional.Present(s.val)
}

// Get is the comma-ok form of GetIfPresent.
func (m Map[K, V]) Get(key K) (V, bool) {
	checkKey("Get", key)
	s, ok := m.find(key)
	return s.val, ok
}

// AddOrUpdate associates value with key. If key is already bound to
// a value equal to value, m itself is returned. It panics if key or
// value is nil.
func (m Map[K, V]) AddOrUpdate(key K, value V) Map[K, V] {
	checkKey("AddOrUpdate", key)
	checkValue("AddOrUpdate", value)
	// The trie only spots identical values, so equal values that
	// are distinct objects are caught here instead.
	cur, found := m.find(key)
	if found && resolve(m.opts).valuesEqual(cur.val, value) {
		return m
	}
	t := m.trie
	if t == nil {
		t = m.newTrie()
	}
	next := m.next
	s := slot[V]{ord: cur.ord, val: value}
	if !found {
		s.ord = next
		next++
	}
	return Map[K, V]{
		opts: m.opts,
		trie: t.Assoc(key, s),
		next: next,
	}
}

// RemoveIfPresent returns a map without key. If the key is not
// present, m itself is returned. It panics if key is nil.
func (m Map[K, V]) RemoveIfPresent(key K) Map[K, V] {
	checkKey("RemoveIfPresent", key)
	if m.trie == nil {
		return m
	}
	t := m.trie.Without(key)
	switch {
	case t == m.trie:
		return m
	case t.Len() == 0:
		return Map[K, V]{opts: m.opts}
	default:
		return Map[K, V]{
			opts: m.opts,
			trie: t,
			next: m.next,
		}
	}
}

// Range calls fn for each entry until fn returns false. The order is
// unspecified.
func (m Map[K, V]) Range(fn func(key K, value V) bool) {
	if m.trie == nil {
		return
	}
	m.trie.Range(func(k K, s slot[V]) bool {
		return fn(k, s.val)
	})
}

// Entries returns the entries in the order their keys were first
// added. Updating a key's value does not move it.
func (m Map[K, V]) Entries() []Entry[K, V] {
	all := make([]orderedEntry[K, V], 0, m.Size())
	m.iterate(func(k K, s slot[V]) {
		all = append(all, orderedEntry[K, V]{
			ord:   s.ord,
			entry: Entry[K, V]{Key: k, Value: s.val},
		})
	})
	sort.Slice(all, func(i, j int) bool {
		return all[i].ord < all[j].ord
	})
	out := make([]Entry[K, V], len(all))
	for i, e := range all {
		out[i] = e.entry
	}
	return out
}

// Seq returns a lazy sequence of Entry values in unspecified order,
// or nil for an empty map.
func (m Map[K, V]) Seq() seq.Sequence {
	if m.trie == nil {
		return nil
	}
	return newEntrySeq[K, V](m.trie.Seq())
}

// Equal tests if two maps have the same entries. Equal implements
// the Equaler interface, which allows for deep comparisons when there
// are maps of maps.
func (m Map[K, V]) Equal(o interface{}) bool {
	var other Map[K, V]
	switch v := o.(type) {
	case Map[K, V]:
		other = v
	case *Map[K, V]:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	if m.Size() != other.Size() {
		return false
	}
	if m.trie == other.trie {
		return true
	}
	eq := resolve(m.opts).valuesEqual
	same := true
	m.Range(func(k K, v V) bool {
		s, ok := other.find(k)
		same = ok && eq(v, s.val)
		return same
	})
	return same
}

// String returns the entries in insertion order as { [k v] ... }.
func (m Map[K, V]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	for _, e := range m.Entries() {
		fmt.Fprintf(&b, "%s ", e)
	}
	fmt.Fprint(&b, "}")
	return b.String()
}

// Transform takes a set of actions and performs them on a builder
// made from the map, then returns the resulting map.
func (m Map[K, V]) Transform(actions ...func(*Builder[K, V]) *Builder[K, V]) Map[K, V] {
	b := m.AsBuilder()
	for _, action := range actions {
		b = action(b)
	}
	return b.Map()
}

func (m Map[K, V]) find(key K) (slot[V], bool) {
	if m.trie == nil {
		return slot[V]{}, false
	}
	return m.trie.Find(key)
}

func (m Map[K, V]) iterate(fn func(K, slot[V])) {
	if m.trie == nil {
		return
	}
	m.trie.Range(func(k K, s slot[V]) bool {
		fn(k, s)
		return true
	})
}

func (m Map[K, V]) newTrie() *hamt.Trie[K, slot[V]] {
	return hamt.New[K, slot[V]](keyEquality[K](resolve(m.opts)))
}
