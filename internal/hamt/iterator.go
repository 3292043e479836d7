package hamt

import "unsafe"

// maxDepth is the deepest a trie can nest: one level per shiftBits
// of the hash, plus one for a collision node.
const maxDepth = (unsafe.Sizeof(uintptr(0))*8 + shiftBits - 1) / shiftBits

// Iterator walks a trie without allocating. It keeps a fixed size
// stack of the nodes being visited, so it must not be shared between
// goroutines.
type Iterator[K, V any] struct {
	depth int
	stack [maxDepth + 1]struct {
		n   node[K, V]
		cur int
	}
}

// Iterator returns an iterator positioned before the first entry.
func (t *Trie[K, V]) Iterator() Iterator[K, V] {
	var i Iterator[K, V]
	i.stack[0].n = t.root
	i.HasNext()
	return i
}

// HasNext reports whether Next will return another entry. It moves
// the cursor onto the next leaf if it is not already on one.
func (i *Iterator[K, V]) HasNext() bool {
	for {
		var child node[K, V]
		switch n := i.stack[i.depth].n.(type) {
		case *arrayNode[K, V]:
			child = i.nextChild(n)
		case *bitmapIndexedNode[K, V]:
			if i.onLeaf(n.array) {
				return true
			}
			child = i.nextBranch(n.array)
		case *collisionNode[K, V]:
			if i.onLeaf(n.array) {
				return true
			}
			child = i.nextBranch(n.array)
		default:
			return false
		}
		switch {
		case child != nil:
			i.push(child)
		case i.depth == 0:
			return false
		default:
			i.pop()
		}
	}
}

func (i *Iterator[K, V]) onLeaf(es entries[K, V]) bool {
	cur := i.stack[i.depth].cur
	return cur < len(es) && es[cur].isLeaf()
}

// nextBranch steps over the branch under the cursor and returns it,
// or returns nil when the node is exhausted.
func (i *Iterator[K, V]) nextBranch(es entries[K, V]) node[K, V] {
	top := &i.stack[i.depth]
	if top.cur >= len(es) {
		return nil
	}
	child := es[top.cur].child
	top.cur++
	return child
}

func (i *Iterator[K, V]) nextChild(n *arrayNode[K, V]) node[K, V] {
	top := &i.stack[i.depth]
	for top.cur < width {
		child := n.array[top.cur]
		top.cur++
		if child != nil {
			return child
		}
	}
	return nil
}

// Next returns the entry under the cursor and advances past it. Next
// must only be called after HasNext has reported true.
func (i *Iterator[K, V]) Next() (K, V) {
	top := &i.stack[i.depth]
	var e entry[K, V]
	switch n := top.n.(type) {
	case *bitmapIndexedNode[K, V]:
		e = n.array[top.cur]
	case *collisionNode[K, V]:
		e = n.array[top.cur]
	default:
		panic("hamt: Next called without HasNext")
	}
	top.cur++
	return e.key, e.val
}

func (i *Iterator[K, V]) push(n node[K, V]) {
	i.depth++
	i.stack[i.depth].n = n
	i.stack[i.depth].cur = 0
}

func (i *Iterator[K, V]) pop() {
	i.stack[i.depth].n = nil
	i.stack[i.depth].cur = 0
	i.depth--
}
