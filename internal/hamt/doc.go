// Package hamt implements the persistent hash array mapped trie that
// backs pmap. It is modelled on Clojure's PersistentHashMap: 32-way
// bitmap indexed nodes that are promoted to full array nodes when they
// grow past half capacity, and collision nodes for keys whose full
// hashes are equal. Updates copy only the path from the root to the
// changed leaf; every other node is shared with the previous trie.
//
// Key equality and hashing are supplied per trie through an Equality
// value. The trie compares values only by identity, which is enough to
// notice that an update would not change anything.
package hamt
