package pmap

import (
	"github.com/newmindtellus/Bridge.Immutable.Collections/internal/hamt"
	"jsouthworth.net/go/seq"
)

// Iterator provides a mutable iterator over the map. This allows
// efficient, heap allocation-less access to the contents. Iterators
// are not safe for concurrent access so they may not be shared
// between goroutines.
type Iterator[K, V any] struct {
	inner hamt.Iterator[K, slot[V]]
	empty bool
}

// Iterator returns an iterator over the map in unspecified order.
func (m Map[K, V]) Iterator() Iterator[K, V] {
	if m.trie == nil {
		return Iterator[K, V]{empty: true}
	}
	return Iterator[K, V]{inner: m.trie.Iterator()}
}

// HasNext is true when there are more elements to be iterated over.
func (i *Iterator[K, V]) HasNext() bool {
	return !i.empty && i.inner.HasNext()
}

// Next provides the next key value pair and increments the cursor.
func (i *Iterator[K, V]) Next() (K, V) {
	k, s := i.inner.Next()
	return k, s.val
}

type entrySeq[K, V any] struct {
	s seq.Sequence
}

func newEntrySeq[K, V any](s seq.Sequence) seq.Sequence {
	if s == nil {
		return nil
	}
	return &entrySeq[K, V]{s: s}
}

func (s *entrySeq[K, V]) First() interface{} {
	e := s.s.First().(hamt.Entry[K, slot[V]])
	return Entry[K, V]{Key: e.Key, Value: e.Value.val}
}

func (s *entrySeq[K, V]) Next() seq.Sequence {
	return newEntrySeq[K, V](s.s.Next())
}

func (s *entrySeq[K, V]) String() string {
	return seq.ConvertToString(s)
}
