package bruteforce

import (
	"sort"
	"sync/atomic"

	"github.com/christophe-duc/lazysdes/pkg/sdes"
	"github.com/sasha-s/go-deadlock"
)

// accumulator collects what the workers found. Each worker keeps its matches
// locally and merges them once, when it exits.
type accumulator struct {
	mutex   deadlock.Mutex
	keys    []sdes.Bits
	checked int
}

func (a *accumulator) merge(keys []sdes.Bits, checked int) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.keys = append(a.keys, keys...)
	a.checked += checked
}

// snapshot returns the keys merged so far, sorted, and how many candidates
// they account for
func (a *accumulator) snapshot() ([]sdes.Bits, int) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	keys := make([]sdes.Bits, len(a.keys))
	copy(keys, a.keys)
	sortKeys(keys)
	return keys, a.checked
}

// firstSlot records exactly one key; every write after the first is a no-op
type firstSlot struct {
	key atomic.Pointer[sdes.Bits]
}

func (f *firstSlot) offer(key sdes.Bits) bool {
	return f.key.CompareAndSwap(nil, &key)
}

func (f *firstSlot) get() (sdes.Bits, bool) {
	key := f.key.Load()
	if key == nil {
		return nil, false
	}
	return *key, true
}

func sortKeys(keys []sdes.Bits) {
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Uint() < keys[j].Uint()
	})
}
