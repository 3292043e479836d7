package hamt

import (
	"github.com/newmindtellus/Bridge.Immutable.Collections/internal/atomic"
	"jsouthworth.net/go/seq"
)

// arrayNode is a dense 32-way branch. count is the number of non-nil
// children.
type arrayNode[K, V any] struct {
	count int
	array *[width]node[K, V]
	edit  *atomic.Flag
}

func (n *arrayNode[K, V]) ensureEditable(edit *atomic.Flag) *arrayNode[K, V] {
	if isEditable(n.edit, edit) {
		return n
	}
	nodes := *n.array
	return &arrayNode[K, V]{
		count: n.count,
		array: &nodes,
		edit:  edit,
	}
}

func (n *arrayNode[K, V]) editAndSet(edit *atomic.Flag, idx uint, child node[K, V]) *arrayNode[K, V] {
	editable := n.ensureEditable(edit)
	editable.array[idx] = child
	return editable
}

func (n *arrayNode[K, V]) assoc(
	o *keyOps[K],
	edit *atomic.Flag,
	shift uint,
	hash uintptr,
	k K, v V,
) (node[K, V], bool) {
	idx := mask(hash, shift)
	child := n.array[idx]
	if child == nil {
		leaf, _ := emptyBitmapNode[K, V]().
			assoc(o, edit, shift+shiftBits, hash, k, v)
		editable := n.editAndSet(edit, idx, leaf)
		editable.count++
		return editable, true
	}
	updated, added := child.assoc(o, edit, shift+shiftBits, hash, k, v)
	if updated == child {
		return n, added
	}
	return n.editAndSet(edit, idx, updated), added
}

func (n *arrayNode[K, V]) without(
	o *keyOps[K],
	edit *atomic.Flag,
	shift uint,
	hash uintptr,
	k K,
) (node[K, V], bool) {
	idx := mask(hash, shift)
	child := n.array[idx]
	if child == nil {
		return n, false
	}
	updated, removed := child.without(o, edit, shift+shiftBits, hash, k)
	switch {
	case updated == child:
		return n, removed
	case updated != nil:
		return n.editAndSet(edit, idx, updated), removed
	case n.count <= bitmapCap/2:
		return n.pack(edit, idx), removed
	default:
		editable := n.editAndSet(edit, idx, nil)
		editable.count--
		return editable, removed
	}
}

// pack converts the node back into a bitmap node, dropping the child
// at idx.
func (n *arrayNode[K, V]) pack(edit *atomic.Flag, idx uint) *bitmapIndexedNode[K, V] {
	var bitmap uint32
	array := make(entries[K, V], 0, n.count-1)
	for i, child := range n.array {
		if child == nil || uint(i) == idx {
			continue
		}
		array = append(array, entry[K, V]{child: child})
		bitmap |= 1 << uint32(i)
	}
	return &bitmapIndexedNode[K, V]{
		bitmap: bitmap,
		array:  array,
		edit:   edit,
	}
}

func (n *arrayNode[K, V]) find(
	o *keyOps[K],
	shift uint,
	hash uintptr,
	k K,
) (V, bool) {
	child := n.array[mask(hash, shift)]
	if child == nil {
		var zero V
		return zero, false
	}
	return child.find(o, shift+shiftBits, hash, k)
}

func (n *arrayNode[K, V]) seq() seq.Sequence {
	return newArrayNodeSeq(n.array, 0, nil)
}

func (n *arrayNode[K, V]) rnge(fn func(K, V) bool) bool {
	for _, child := range n.array {
		if child == nil {
			continue
		}
		if !child.rnge(fn) {
			return false
		}
	}
	return true
}
