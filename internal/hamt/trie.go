package hamt

import (
	"errors"
	"math/rand"

	"github.com/newmindtellus/Bridge.Immutable.Collections/internal/atomic"
	"jsouthworth.net/go/seq"
)

const (
	shiftBits = 5
	width     = 1 << shiftBits
	maskValue = width - 1
	bitmapCap = width / 2
)

// ErrSealed is raised when a transient is used after Persistent.
var ErrSealed = errors.New("transient used after persistent call")

// seed is shared by every trie in the process so that the empty trie
// of one map family hashes the same way as any other.
var seed = uintptr(rand.Uint64())

// sealed is the edit flag of every node owned by a persistent trie.
var sealed = atomic.NewFlag(false)

// Entry is a key and value pair as produced by Seq.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Trie is a persistent hash array mapped trie. A Trie is never
// modified after it is returned; Assoc and Without return a new trie
// sharing all untouched nodes.
type Trie[K, V any] struct {
	ops   *keyOps[K]
	count int
	root  node[K, V]
}

// New returns an empty trie using eq for keys. Missing functions in
// eq are taken from DefaultEquality.
func New[K, V any](eq Equality[K]) *Trie[K, V] {
	def := DefaultEquality[K]()
	if eq.Equal == nil {
		eq.Equal = def.Equal
	}
	if eq.Hash == nil {
		eq.Hash = def.Hash
	}
	return &Trie[K, V]{
		ops: &keyOps[K]{
			equal: eq.Equal,
			hash:  eq.Hash,
			seed:  seed,
		},
		root: emptyBitmapNode[K, V](),
	}
}

// Len returns the number of entries.
func (t *Trie[K, V]) Len() int {
	return t.count
}

// Find returns the value stored for k and whether it was found.
func (t *Trie[K, V]) Find(k K) (V, bool) {
	return t.root.find(t.ops, 0, t.ops.hashOf(k), k)
}

// Assoc returns a trie with k bound to v. If k is already bound to a
// value identical to v, t itself is returned.
func (t *Trie[K, V]) Assoc(k K, v V) *Trie[K, V] {
	root, added := t.root.assoc(t.ops, sealed, 0, t.ops.hashOf(k), k, v)
	if root == t.root {
		return t
	}
	count := t.count
	if added {
		count++
	}
	return &Trie[K, V]{
		ops:   t.ops,
		count: count,
		root:  root,
	}
}

// Without returns a trie without k. If k is not present, t itself is
// returned.
func (t *Trie[K, V]) Without(k K) *Trie[K, V] {
	root, removed := t.root.without(t.ops, sealed, 0, t.ops.hashOf(k), k)
	if !removed {
		return t
	}
	if root == nil {
		root = emptyBitmapNode[K, V]()
	}
	return &Trie[K, V]{
		ops:   t.ops,
		count: t.count - 1,
		root:  root,
	}
}

// Range calls fn for every entry until fn returns false. The order is
// determined by the key hashes.
func (t *Trie[K, V]) Range(fn func(K, V) bool) {
	t.root.rnge(fn)
}

// Seq returns a lazy sequence of Entry values, or nil if t is empty.
func (t *Trie[K, V]) Seq() seq.Sequence {
	return t.root.seq()
}

// AsTransient returns a transient sharing structure with t.
func (t *Trie[K, V]) AsTransient() *Transient[K, V] {
	return &Transient[K, V]{
		edit:  atomic.NewFlag(true),
		ops:   t.ops,
		count: t.count,
		root:  t.root,
	}
}

// Transient is a mutable view of a trie used for bulk updates. Nodes
// created by a transient are mutated in place until Persistent is
// called; nodes shared with persistent tries are copied first.
// Transients must not be shared between goroutines.
type Transient[K, V any] struct {
	edit  *atomic.Flag
	ops   *keyOps[K]
	count int
	root  node[K, V]
}

// Len returns the number of entries.
func (t *Transient[K, V]) Len() int {
	t.ensureEditable()
	return t.count
}

// Find returns the value stored for k and whether it was found.
func (t *Transient[K, V]) Find(k K) (V, bool) {
	t.ensureEditable()
	return t.root.find(t.ops, 0, t.ops.hashOf(k), k)
}

// Assoc binds k to v in place.
func (t *Transient[K, V]) Assoc(k K, v V) *Transient[K, V] {
	t.ensureEditable()
	root, added := t.root.assoc(t.ops, t.edit, 0, t.ops.hashOf(k), k, v)
	if added {
		t.count++
	}
	t.root = root
	return t
}

// Without removes k in place.
func (t *Transient[K, V]) Without(k K) *Transient[K, V] {
	t.ensureEditable()
	root, removed := t.root.without(t.ops, t.edit, 0, t.ops.hashOf(k), k)
	if root == nil {
		root = emptyBitmapNode[K, V]()
	}
	if removed {
		t.count--
	}
	t.root = root
	return t
}

// Persistent seals the transient and returns the resulting trie.
// Any further use of the transient panics with ErrSealed.
func (t *Transient[K, V]) Persistent() *Trie[K, V] {
	if !t.edit.Swap(false) {
		panic(ErrSealed)
	}
	return &Trie[K, V]{
		ops:   t.ops,
		count: t.count,
		root:  t.root,
	}
}

func (t *Transient[K, V]) ensureEditable() {
	if !t.edit.Live() {
		panic(ErrSealed)
	}
}

type node[K, V any] interface {
	assoc(o *keyOps[K], edit *atomic.Flag, shift uint, hash uintptr,
		k K, v V) (node[K, V], bool)
	without(o *keyOps[K], edit *atomic.Flag, shift uint, hash uintptr,
		k K) (node[K, V], bool)
	find(o *keyOps[K], shift uint, hash uintptr, k K) (V, bool)
	seq() seq.Sequence
	rnge(fn func(K, V) bool) bool
}

// entry is either a leaf holding key and val or a branch to child.
type entry[K, V any] struct {
	key   K
	val   V
	child node[K, V]
}

func (e entry[K, V]) isLeaf() bool {
	return e.child == nil
}

type entries[K, V any] []entry[K, V]

func (es entries[K, V]) insert(idx int, e entry[K, V]) entries[K, V] {
	if cap(es) >= len(es)+1 {
		// A transient may have shrunk this slice while keeping
		// the larger backing array.
		out := append(es, entry[K, V]{})
		copy(out[idx+1:], es[idx:])
		out[idx] = e
		return out
	}
	out := make(entries[K, V], len(es)+1)
	copy(out, es[:idx])
	out[idx] = e
	copy(out[idx+1:], es[idx:])
	return out
}

func (es entries[K, V]) append(e entry[K, V]) entries[K, V] {
	if cap(es) >= len(es)+1 {
		return append(es, e)
	}
	// Grow by exactly one; the slice is copied on every persistent
	// update anyway.
	out := make(entries[K, V], len(es)+1)
	copy(out, es)
	out[len(es)] = e
	return out
}

func (es entries[K, V]) copy() entries[K, V] {
	out := make(entries[K, V], len(es))
	copy(out, es)
	return out
}

func (es entries[K, V]) copyWithCap(n int) entries[K, V] {
	out := make(entries[K, V], len(es), n)
	copy(out, es)
	return out
}

func (es entries[K, V]) remove(idx int) entries[K, V] {
	copy(es[idx:], es[idx+1:])
	es[len(es)-1] = entry[K, V]{}
	return es[:len(es)-1]
}

func (es entries[K, V]) rnge(fn func(K, V) bool) bool {
	for _, e := range es {
		if e.isLeaf() {
			if !fn(e.key, e.val) {
				return false
			}
			continue
		}
		if !e.child.rnge(fn) {
			return false
		}
	}
	return true
}

func mask(hash uintptr, shift uint) uint {
	return uint((hash >> shift) & maskValue)
}

func bitpos(hash uintptr, shift uint) uint32 {
	return 1 << mask(hash, shift)
}

func isEditable(nodeEdit, edit *atomic.Flag) bool {
	return edit == nodeEdit && edit.Live()
}
