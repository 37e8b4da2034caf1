package dict

import (
	"fmt"
	"iter"
	"strings"
)

type Item[V any] struct {
	Key uint
	Val V
}
type ItemSlice[V any] []Item[V]

// Dict is an ordered map keyed by uint, implemented as a fixed-depth
// 16-way radix tree. Keys are visited in ascending numeric order with no
// comparison or sorting step. The zero Dict is empty and ready to use.
//
// A Dict is not safe for concurrent mutation; cursors and visitors borrow
// the Dict and must not be used across a mutation.
type Dict[V any] struct {
	size int
	root ref[V]
}

func InitDict[V any](dict *Dict[V], items ...Item[V]) *Dict[V] {
	*dict = Dict[V]{}
	for _, item := range items {
		dict.Set(item.Key, item.Val)
	}
	return dict
}

func NewDict[V any](items ...Item[V]) *Dict[V] {
	return InitDict(&Dict[V]{}, items...)
}

// Len returns the number of keys in the tree.
func (t *Dict[V]) Len() int {
	return t.size
}

func (t *Dict[V]) Empty() bool {
	return t.root.node == nil
}

// Clear drops all the keys at once.
func (t *Dict[V]) Clear() {
	t.root = ref[V]{}
	t.size = 0
}

// Get returns a value associated with the key.
func (t *Dict[V]) Get(key uint) (val V, ok bool) {
	p := t.root.node
	for depth := 0; p != nil; depth++ {
		slot := &p.child[chunk(key, depth)]
		if slot.leaf != nil {
			return slot.leaf.val, true
		}
		p = slot.node
	}
	return
}

func (t *Dict[V]) Has(key uint) bool {
	_, ok := t.Get(key)
	return ok
}

// Replace applies a func to a previous value of a key and replaces it with
// the result. Returns the previous value (if any).
func (t *Dict[V]) Replace(key uint, replace func(prev V, ok bool) V) (V, bool) {
	if t.root.node == nil {
		t.root.node = &branch[V]{}
	}
	p := t.root.node
	for depth := 0; depth < maxDepth-1; depth++ {
		idx := chunk(key, depth)
		slot := &p.child[idx]
		if slot.node == nil {
			slot.node = &branch[V]{}
			p.mask |= 1 << idx
		}
		p = slot.node
	}
	idx := chunk(key, maxDepth-1)
	slot := &p.child[idx]
	if slot.leaf != nil {
		// key exists - just replace its value
		prev := slot.leaf.val
		slot.leaf.val = replace(prev, true)
		return prev, true
	}
	var zero V
	slot.leaf = &leaf[V]{key: key, val: replace(zero, false)}
	p.mask |= 1 << idx
	t.size++
	return zero, false
}

// Set associates a given value with a key. Returns the previous value (if any).
func (t *Dict[V]) Set(key uint, val V) (V, bool) {
	return t.Replace(key, func(V, bool) V { return val })
}

// Del removes the key from the tree and returns its value (if any).
func (t *Dict[V]) Del(key uint) (val V, ok bool) {
	p := t.root.node
	if p == nil {
		return
	}
	var path [maxDepth]*branch[V]
	for depth := 0; depth < maxDepth-1; depth++ {
		path[depth] = p
		if p = p.child[chunk(key, depth)].node; p == nil {
			return
		}
	}
	path[maxDepth-1] = p

	idx := chunk(key, maxDepth-1)
	lf := p.child[idx].leaf
	if lf == nil {
		return
	}
	p.child[idx] = ref[V]{}
	p.mask &^= 1 << idx
	t.size--

	// collapse emptied branches bottom-up so no dead structure survives
	for depth := maxDepth - 1; depth > 0 && path[depth].mask == 0; depth-- {
		idx := chunk(key, depth-1)
		path[depth-1].child[idx] = ref[V]{}
		path[depth-1].mask &^= 1 << idx
	}
	if path[0].mask == 0 {
		t.root = ref[V]{}
	}
	return lf.val, true
}

// Merge merges another Dict into this one. Values of common keys are
// replaced. Returns itself.
func (t *Dict[V]) Merge(other *Dict[V]) *Dict[V] {
	if other != nil {
		other.Each(func(key uint, val V) bool {
			t.Set(key, val)
			return true
		})
	}
	return t
}

// Extend inserts the given items one by one.
func (t *Dict[V]) Extend(items ...Item[V]) {
	for _, item := range items {
		t.Set(item.Key, item.Val)
	}
}

// Each calls a handler for all keys in ascending order.
// It returns whether all the keys were visited. The handler can continue
// the process by returning true or abort with false.
func (t *Dict[V]) Each(handler func(key uint, val V) bool) bool {
	return eachFwd(t.root, handler)
}

func eachFwd[V any](p ref[V], h func(uint, V) bool) bool {
	if p.node != nil {
		for idx := 0; idx < fanout; idx++ {
			if p.node.mask&(1<<idx) != 0 && !eachFwd(p.node.child[idx], h) {
				return false
			}
		}
		return true
	}
	if p.leaf != nil {
		return h(p.leaf.key, p.leaf.val)
	}
	return true
}

// EachMut is Each with a mutable reference to the value.
func (t *Dict[V]) EachMut(handler func(key uint, val *V) bool) bool {
	return eachMut(t.root, handler)
}

func eachMut[V any](p ref[V], h func(uint, *V) bool) bool {
	if p.node != nil {
		for idx := 0; idx < fanout; idx++ {
			if p.node.mask&(1<<idx) != 0 && !eachMut(p.node.child[idx], h) {
				return false
			}
		}
		return true
	}
	if p.leaf != nil {
		return h(p.leaf.key, &p.leaf.val)
	}
	return true
}

// EachReverse calls a handler for all keys in descending order.
// It returns whether all the keys were visited. The handler can continue
// the process by returning true or abort with false.
func (t *Dict[V]) EachReverse(handler func(key uint, val V) bool) bool {
	return eachRev(t.root, handler)
}

func eachRev[V any](p ref[V], h func(uint, V) bool) bool {
	if p.node != nil {
		for idx := fanout - 1; idx >= 0; idx-- {
			if p.node.mask&(1<<idx) != 0 && !eachRev(p.node.child[idx], h) {
				return false
			}
		}
		return true
	}
	if p.leaf != nil {
		return h(p.leaf.key, p.leaf.val)
	}
	return true
}

// Keys returns all keys in ascending order.
func (t *Dict[V]) Keys() []uint {
	keys := make([]uint, 0, t.size)
	t.Each(func(key uint, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Items returns all key/value pairs in ascending key order.
func (t *Dict[V]) Items() ItemSlice[V] {
	items := make(ItemSlice[V], 0, t.size)
	t.Each(func(key uint, val V) bool {
		items = append(items, Item[V]{key, val})
		return true
	})
	return items
}

// Equal reports whether two dicts hold the same keys with values equal
// under eq.
func (t *Dict[V]) Equal(other *Dict[V], eq func(a, b V) bool) bool {
	if other == nil || t.size != other.size {
		return false
	}
	it := other.Iter()
	return t.Each(func(key uint, val V) bool {
		k, v, ok := it.Next()
		return ok && k == key && eq(val, v)
	})
}

// All returns an ascending key/value sequence for use with range-over-func.
func (t *Dict[V]) All() iter.Seq2[uint, V] {
	return func(yield func(uint, V) bool) {
		t.Each(yield)
	}
}

func (t *Dict[V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	t.Each(func(key uint, val V) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%d: %v", key, val)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

func (t *Dict[V]) DebugDump() {
	t.debugDump(t.root, 0, "T:", "")
}

func (t *Dict[V]) debugDump(p ref[V], depth int, tag, indent string) {
	switch {
	case p.leaf != nil:
		fmt.Printf("%s%s LEAF key=%v val=%v\n", indent, tag, p.leaf.key, p.leaf.val)
	case p.node != nil:
		fmt.Printf("%s%s NODE depth=%v mask=%016b\n", indent, tag, depth, p.node.mask)
		for idx := 0; idx < fanout; idx++ {
			if p.node.mask&(1<<idx) != 0 {
				t.debugDump(p.node.child[idx], depth+1, fmt.Sprintf("%X:", idx), indent+"  ")
			}
		}
	}
}
