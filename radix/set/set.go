package set

import (
	"fmt"
	"iter"
	"strings"

	"github.com/aglyzov/go-uintds/radix/dict"
)

// Set is an ordered set of uint values backed by a radix dict with
// zero-size values. Iteration always yields values in ascending order.
// The zero Set is empty and ready to use.
type Set struct {
	dict dict.Dict[struct{}]
}

func InitSet(set *Set, keys ...uint) *Set {
	*set = Set{}
	for _, key := range keys {
		set.Add(key)
	}
	return set
}

func NewSet(keys ...uint) *Set {
	return InitSet(&Set{}, keys...)
}

// Len returns the number of keys in the set.
func (t *Set) Len() int {
	return t.dict.Len()
}

func (t *Set) Empty() bool {
	return t.dict.Empty()
}

// Clear drops all the keys at once.
func (t *Set) Clear() {
	t.dict.Clear()
}

func (t *Set) Has(key uint) bool {
	return t.dict.Has(key)
}

// Add inserts the key. Reports whether the key was not already present.
func (t *Set) Add(key uint) bool {
	_, existed := t.dict.Set(key, struct{}{})
	return !existed
}

// Del removes the key. Reports whether the key was present.
func (t *Set) Del(key uint) bool {
	_, existed := t.dict.Del(key)
	return existed
}

// Each calls a handler for all keys in ascending order.
// It returns whether all the keys were visited. The handler can continue
// the process by returning true or abort with false.
func (t *Set) Each(handler func(key uint) bool) bool {
	return t.dict.Each(func(key uint, _ struct{}) bool { return handler(key) })
}

// EachReverse calls a handler for all keys in descending order.
// It returns whether all the keys were visited. The handler can continue
// the process by returning true or abort with false.
func (t *Set) EachReverse(handler func(key uint) bool) bool {
	return t.dict.EachReverse(func(key uint, _ struct{}) bool { return handler(key) })
}

// Iter returns a cursor over all the keys in ascending order.
func (t *Set) Iter() *Cursor {
	return &Cursor{it: t.dict.Iter()}
}

// LowerBound returns a cursor over the keys not less than the given key.
func (t *Set) LowerBound(key uint) *Cursor {
	return &Cursor{it: t.dict.LowerBound(key)}
}

// UpperBound returns a cursor over the keys greater than the given key.
func (t *Set) UpperBound(key uint) *Cursor {
	return &Cursor{it: t.dict.UpperBound(key)}
}

// Keys returns all keys in ascending order.
func (t *Set) Keys() []uint {
	return t.dict.Keys()
}

// Merge adds all keys of another Set into this one. Returns itself.
func (t *Set) Merge(other *Set) *Set {
	if other != nil {
		other.Each(func(key uint) bool {
			t.Add(key)
			return true
		})
	}
	return t
}

// Extend inserts the given keys one by one.
func (t *Set) Extend(keys ...uint) {
	for _, key := range keys {
		t.Add(key)
	}
}

// IsDisjoint reports whether the two sets have no keys in common.
func (t *Set) IsDisjoint(other *Set) bool {
	return t.Each(func(key uint) bool { return !other.Has(key) })
}

// IsSubset reports whether every key of the set is present in other.
func (t *Set) IsSubset(other *Set) bool {
	return t.Each(func(key uint) bool { return other.Has(key) })
}

// IsSuperset reports whether every key of other is present in the set.
func (t *Set) IsSuperset(other *Set) bool {
	return other.IsSubset(t)
}

// Equal reports whether the two sets hold exactly the same keys.
func (t *Set) Equal(other *Set) bool {
	if other == nil || t.Len() != other.Len() {
		return false
	}
	return t.IsSubset(other)
}

// Compare orders two sets lexicographically by their ascending key
// sequences. Returns -1, 0 or +1.
func (t *Set) Compare(other *Set) int {
	a, b := t.Iter(), other.Iter()
	for {
		ak, aok := a.Next()
		bk, bok := b.Next()
		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return +1
		case ak < bk:
			return -1
		case ak > bk:
			return +1
		}
	}
}

// All returns an ascending key sequence for use with range-over-func.
func (t *Set) All() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		t.Each(yield)
	}
}

func (t *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	t.Each(func(key uint) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%d", key)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

// Cursor yields set keys in ascending order. It borrows the Set and must
// not be used across a mutation.
type Cursor struct {
	it *dict.Cursor[struct{}]
}

// Next pops the next key in ascending order.
func (c *Cursor) Next() (uint, bool) {
	key, _, ok := c.it.Next()
	return key, ok
}

// All adapts the cursor to a range-over-func sequence.
func (c *Cursor) All() iter.Seq[uint] {
	return seq(c)
}
