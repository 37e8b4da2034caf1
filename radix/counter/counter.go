package counter

import (
	"sort"

	"github.com/aglyzov/go-uintds/radix/dict"
)

type CountedKey struct {
	Key   uint
	Count int
}
type CountedKeySlice []CountedKey

// Counter counts occurrences of uint keys, keeping the keys in ascending
// order. A key stays in the tree until deleted, even when its count drops
// back to zero.
type Counter struct {
	dict dict.Dict[int]
}

func InitCounter(counter *Counter, countedKeys ...CountedKey) *Counter {
	*counter = Counter{}
	for _, ckey := range countedKeys {
		counter.IncBy(ckey.Key, ckey.Count)
	}
	return counter
}

func NewCounter(countedKeys ...CountedKey) *Counter {
	return InitCounter(&Counter{}, countedKeys...)
}

// Len returns the number of keys in the tree.
func (t *Counter) Len() int {
	return t.dict.Len()
}

func (t *Counter) Empty() bool {
	return t.dict.Empty()
}

// Get returns a count associated with the key.
func (t *Counter) Get(key uint) int {
	count, _ := t.dict.Get(key)
	return count
}

// Replace applies a func to a previous count of a key and replaces the
// count with the result. Returns the previous count.
func (t *Counter) Replace(key uint, replace func(int) int) int {
	prev, _ := t.dict.Replace(key, func(prev int, _ bool) int {
		return replace(prev)
	})
	return prev
}

// Set associates a given count with a key. Returns the previous count.
func (t *Counter) Set(key uint, count int) int {
	return t.Replace(key, func(int) int { return count })
}

// IncBy increments a count associated with the key by a given delta and
// returns it.
func (t *Counter) IncBy(key uint, delta int) int {
	return t.Replace(key, func(prev int) int { return prev + delta }) + delta
}

// Inc increments a count associated with the key by 1 and returns it.
func (t *Counter) Inc(key uint) int {
	return t.IncBy(key, 1)
}

// Dec decrements a count associated with the key by 1 and returns it.
func (t *Counter) Dec(key uint) int {
	return t.IncBy(key, -1)
}

// Del removes the key from the tree and returns its count.
func (t *Counter) Del(key uint) int {
	count, _ := t.dict.Del(key)
	return count
}

// Merge merges another Counter into this one. Counts of common keys are
// added up. Returns itself.
func (t *Counter) Merge(other *Counter) *Counter {
	if other != nil {
		other.Each(func(ckey CountedKey) bool {
			t.IncBy(ckey.Key, ckey.Count)
			return true
		})
	}
	return t
}

// Each calls a handler for all counted keys in ascending key order.
// It returns whether all the keys were visited. The handler can continue
// the process by returning true or abort with false.
func (t *Counter) Each(handler func(CountedKey) bool) bool {
	return t.dict.Each(func(key uint, count int) bool {
		return handler(CountedKey{key, count})
	})
}

// Keys returns all keys in ascending order.
func (t *Counter) Keys() []uint {
	return t.dict.Keys()
}

// Total returns the sum of all counts.
func (t *Counter) Total() (total int) {
	t.Each(func(ckey CountedKey) bool {
		total += ckey.Count
		return true
	})
	return
}

// CountedKeys returns a []CountedKey slice sorted by count (descending).
func (t *Counter) CountedKeys() CountedKeySlice {
	pairs := make(CountedKeySlice, 0, t.Len())
	t.Each(func(ckey CountedKey) bool {
		pairs = append(pairs, ckey)
		return true
	})
	sort.Sort(pairs)
	return pairs
}

// -- CountedKeySlice sort interface --

func (v CountedKeySlice) Len() int      { return len(v) }
func (v CountedKeySlice) Swap(i, j int) { v[i], v[j] = v[j], v[i] }
func (v CountedKeySlice) Less(i, j int) bool {
	if v[i].Count == v[j].Count {
		return v[i].Key < v[j].Key
	}
	return v[i].Count > v[j].Count // inverted logic
}
