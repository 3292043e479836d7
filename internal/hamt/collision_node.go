package hamt

import (
	"github.com/newmindtellus/Bridge.Immutable.Collections/internal/atomic"
	"jsouthworth.net/go/seq"
)

// collisionNode holds every entry whose key hashes to hash.
type collisionNode[K, V any] struct {
	hash  uintptr
	edit  *atomic.Flag
	array entries[K, V]
}

func (n *collisionNode[K, V]) assoc(
	o *keyOps[K],
	edit *atomic.Flag,
	shift uint,
	hash uintptr,
	k K, v V,
) (node[K, V], bool) {
	if hash != n.hash {
		// Nest this node under a bitmap node at the current level
		// and let that node place the new key.
		branch := &bitmapIndexedNode[K, V]{
			edit:   edit,
			bitmap: bitpos(n.hash, shift),
			array:  entries[K, V]{{child: n}},
		}
		return branch.assoc(o, edit, shift, hash, k, v)
	}
	if idx := n.indexOf(o, k); idx >= 0 {
		if identical(n.array[idx].val, v) {
			return n, false
		}
		editable := n.ensureEditable(edit)
		editable.array[idx].val = v
		return editable, false
	}
	e := entry[K, V]{key: k, val: v}
	if isEditable(n.edit, edit) {
		n.array = n.array.append(e)
		return n, true
	}
	return &collisionNode[K, V]{
		hash:  n.hash,
		edit:  edit,
		array: n.array.copyWithCap(len(n.array) + 1).append(e),
	}, true
}

func (n *collisionNode[K, V]) indexOf(o *keyOps[K], k K) int {
	for i, e := range n.array {
		if o.equal(k, e.key) {
			return i
		}
	}
	return -1
}

func (n *collisionNode[K, V]) ensureEditable(edit *atomic.Flag) *collisionNode[K, V] {
	if isEditable(n.edit, edit) {
		return n
	}
	return &collisionNode[K, V]{
		hash:  n.hash,
		edit:  edit,
		array: n.array.copy(),
	}
}

func (n *collisionNode[K, V]) without(
	o *keyOps[K],
	edit *atomic.Flag,
	shift uint,
	hash uintptr,
	k K,
) (node[K, V], bool) {
	idx := n.indexOf(o, k)
	if idx < 0 {
		return n, false
	}
	if len(n.array) == 1 {
		return nil, true
	}
	editable := n.ensureEditable(edit)
	editable.array = editable.array.remove(idx)
	return editable, true
}

func (n *collisionNode[K, V]) find(
	o *keyOps[K],
	shift uint,
	hash uintptr,
	k K,
) (V, bool) {
	if idx := n.indexOf(o, k); idx >= 0 {
		return n.array[idx].val, true
	}
	var zero V
	return zero, false
}

func (n *collisionNode[K, V]) seq() seq.Sequence {
	return newEntrySeq(n.array, 0, nil)
}

func (n *collisionNode[K, V]) rnge(fn func(K, V) bool) bool {
	return n.array.rnge(fn)
}
