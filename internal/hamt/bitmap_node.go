package hamt

import (
	"math/bits"

	"github.com/newmindtellus/Bridge.Immutable.Collections/internal/atomic"
	"jsouthworth.net/go/seq"
)

func emptyBitmapNode[K, V any]() *bitmapIndexedNode[K, V] {
	return &bitmapIndexedNode[K, V]{edit: sealed}
}

// bitmapIndexedNode stores only the occupied slots of a 32-way
// branch. Bit i of bitmap is set when slot i is occupied; the slot's
// position in array is the number of set bits below i.
type bitmapIndexedNode[K, V any] struct {
	bitmap uint32
	array  entries[K, V]
	edit   *atomic.Flag
}

func (n *bitmapIndexedNode[K, V]) assoc(
	o *keyOps[K],
	edit *atomic.Flag,
	shift uint,
	hash uintptr,
	k K, v V,
) (node[K, V], bool) {
	bit := bitpos(hash, shift)
	switch {
	case n.bitmap&bit != 0:
		return n.assocExisting(o, edit, shift, hash, bit, k, v)
	case len(n.array) >= bitmapCap:
		child, _ := emptyBitmapNode[K, V]().
			assoc(o, edit, shift+shiftBits, hash, k, v)
		return n.expand(o, edit, shift, mask(hash, shift), child), true
	default:
		return n.insertLeaf(edit, bit, k, v), true
	}
}

func (n *bitmapIndexedNode[K, V]) assocExisting(
	o *keyOps[K],
	edit *atomic.Flag,
	shift uint,
	hash uintptr,
	bit uint32,
	k K, v V,
) (node[K, V], bool) {
	idx := n.index(bit)
	e := n.array[idx]
	if !e.isLeaf() {
		child, added := e.child.assoc(o, edit, shift+shiftBits, hash, k, v)
		if child == e.child {
			return n, added
		}
		editable := n.ensureEditable(edit)
		editable.array[idx].child = child
		return editable, added
	}
	if o.equal(k, e.key) {
		if identical(v, e.val) {
			return n, false
		}
		editable := n.ensureEditable(edit)
		editable.array[idx].val = v
		return editable, false
	}

	// Two different keys share this slot: push both one level down.
	var child node[K, V]
	if eh := o.hashOf(e.key); eh == hash {
		child = &collisionNode[K, V]{
			edit:  edit,
			hash:  hash,
			array: entries[K, V]{e, {key: k, val: v}},
		}
	} else {
		child, _ = emptyBitmapNode[K, V]().
			assoc(o, edit, shift+shiftBits, eh, e.key, e.val)
		child, _ = child.assoc(o, edit, shift+shiftBits, hash, k, v)
	}
	editable := n.ensureEditable(edit)
	editable.array[idx] = entry[K, V]{child: child}
	return editable, true
}

func (n *bitmapIndexedNode[K, V]) insertLeaf(
	edit *atomic.Flag,
	bit uint32,
	k K, v V,
) *bitmapIndexedNode[K, V] {
	idx := n.index(bit)
	// ensureEditable followed by insert would copy the array twice.
	editable := n
	if !isEditable(n.edit, edit) {
		editable = &bitmapIndexedNode[K, V]{
			bitmap: n.bitmap,
			edit:   edit,
			array:  n.array.copyWithCap(len(n.array) + 1),
		}
	}
	editable.array = editable.array.insert(idx, entry[K, V]{key: k, val: v})
	editable.bitmap |= bit
	return editable
}

// expand converts a full bitmap node into an array node with child
// placed at idx.
func (n *bitmapIndexedNode[K, V]) expand(
	o *keyOps[K],
	edit *atomic.Flag,
	shift uint,
	idx uint,
	child node[K, V],
) *arrayNode[K, V] {
	nodes := new([width]node[K, V])
	nodes[idx] = child
	var j int
	for i := uint(0); i < width; i++ {
		if (n.bitmap>>i)&1 == 0 {
			continue
		}
		e := n.array[j]
		j++
		if !e.isLeaf() {
			nodes[i] = e.child
			continue
		}
		nodes[i], _ = emptyBitmapNode[K, V]().
			assoc(o, edit, shift+shiftBits, o.hashOf(e.key), e.key, e.val)
	}
	return &arrayNode[K, V]{
		edit:  edit,
		count: len(n.array) + 1,
		array: nodes,
	}
}

func (n *bitmapIndexedNode[K, V]) without(
	o *keyOps[K],
	edit *atomic.Flag,
	shift uint,
	hash uintptr,
	k K,
) (node[K, V], bool) {
	bit := bitpos(hash, shift)
	if n.bitmap&bit == 0 {
		return n, false
	}
	idx := n.index(bit)
	e := n.array[idx]
	if e.isLeaf() {
		if !o.equal(k, e.key) {
			return n, false
		}
	} else {
		child, removed := e.child.without(o, edit, shift+shiftBits, hash, k)
		switch {
		case child == e.child:
			return n, removed
		case child != nil:
			editable := n.ensureEditable(edit)
			editable.array[idx].child = child
			return editable, removed
		}
	}
	if n.bitmap == bit {
		return nil, true
	}
	editable := n.ensureEditable(edit)
	editable.array = editable.array.remove(idx)
	editable.bitmap &^= bit
	return editable, true
}

func (n *bitmapIndexedNode[K, V]) find(
	o *keyOps[K],
	shift uint,
	hash uintptr,
	k K,
) (V, bool) {
	bit := bitpos(hash, shift)
	if n.bitmap&bit == 0 {
		var zero V
		return zero, false
	}
	e := n.array[n.index(bit)]
	if !e.isLeaf() {
		return e.child.find(o, shift+shiftBits, hash, k)
	}
	if o.equal(k, e.key) {
		return e.val, true
	}
	var zero V
	return zero, false
}

func (n *bitmapIndexedNode[K, V]) seq() seq.Sequence {
	return newEntrySeq(n.array, 0, nil)
}

func (n *bitmapIndexedNode[K, V]) rnge(fn func(K, V) bool) bool {
	return n.array.rnge(fn)
}

func (n *bitmapIndexedNode[K, V]) index(bit uint32) int {
	return bits.OnesCount32(n.bitmap & (bit - 1))
}

func (n *bitmapIndexedNode[K, V]) ensureEditable(edit *atomic.Flag) *bitmapIndexedNode[K, V] {
	if isEditable(n.edit, edit) {
		return n
	}
	return &bitmapIndexedNode[K, V]{
		bitmap: n.bitmap,
		array:  n.array.copy(),
		edit:   edit,
	}
}
