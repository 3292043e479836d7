// Package atomic provides the edit flag used to mark which trie nodes
// a transient is allowed to mutate in place.
package atomic

import "sync/atomic"

// Flag is a boolean that can be read and cleared across goroutines.
// A transient owns one live Flag; nodes created while it is live
// point to it and may be mutated by that transient only.
type Flag struct {
	val int32
}

func flagValue(val bool) int32 {
	if val {
		return 1
	}
	return 0
}

// NewFlag returns a flag initialized to val.
func NewFlag(val bool) *Flag {
	return &Flag{val: flagValue(val)}
}

// Swap stores val and reports the previous value.
func (f *Flag) Swap(val bool) bool {
	return atomic.SwapInt32(&f.val, flagValue(val)) != 0
}

// Live reports whether the flag is set.
func (f *Flag) Live() bool {
	return atomic.LoadInt32(&f.val) != 0
}
