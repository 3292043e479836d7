package hamt

import "jsouthworth.net/go/seq"

type entrySeq[K, V any] struct {
	es    entries[K, V]
	index int
	s     seq.Sequence
}

// newEntrySeq returns the sequence starting at es[index], descending
// into branches, or nil when nothing is left. When s is non-nil it is
// the sequence of the branch just before index.
func newEntrySeq[K, V any](es entries[K, V], index int, s seq.Sequence) seq.Sequence {
	if s != nil {
		return &entrySeq[K, V]{es: es, index: index, s: s}
	}
	for i := index; i < len(es); i++ {
		e := es[i]
		if e.isLeaf() {
			return &entrySeq[K, V]{es: es, index: i}
		}
		if child := e.child.seq(); child != nil {
			return &entrySeq[K, V]{es: es, index: i + 1, s: child}
		}
	}
	return nil
}

func (s *entrySeq[K, V]) First() interface{} {
	if s.s != nil {
		return s.s.First()
	}
	e := s.es[s.index]
	return Entry[K, V]{Key: e.key, Value: e.val}
}

func (s *entrySeq[K, V]) Next() seq.Sequence {
	if s.s != nil {
		return newEntrySeq(s.es, s.index, s.s.Next())
	}
	return newEntrySeq[K, V](s.es, s.index+1, nil)
}

func (s *entrySeq[K, V]) String() string {
	return seq.ConvertToString(s)
}

type arrayNodeSeq[K, V any] struct {
	nodes *[width]node[K, V]
	index int
	s     seq.Sequence
}

func newArrayNodeSeq[K, V any](nodes *[width]node[K, V], index int, s seq.Sequence) seq.Sequence {
	if s != nil {
		return &arrayNodeSeq[K, V]{nodes: nodes, index: index, s: s}
	}
	for i := index; i < len(nodes); i++ {
		if nodes[i] == nil {
			continue
		}
		if child := nodes[i].seq(); child != nil {
			return &arrayNodeSeq[K, V]{nodes: nodes, index: i + 1, s: child}
		}
	}
	return nil
}

func (s *arrayNodeSeq[K, V]) First() interface{} {
	return s.s.First()
}

func (s *arrayNodeSeq[K, V]) Next() seq.Sequence {
	return newArrayNodeSeq(s.nodes, s.index, s.s.Next())
}

func (s *arrayNodeSeq[K, V]) String() string {
	return seq.ConvertToString(s)
}
