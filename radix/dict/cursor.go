package dict

import (
	"iter"
	"math/bits"
)

// frame remembers a branch node and the next child index to examine in it.
type frame[V any] struct {
	node *branch[V]
	idx  int
}

// Cursor is a resumable ascending iterator over a Dict. It keeps an
// explicit stack of (node, next-child-index) frames instead of suspended
// control flow, so a bound query can seed it mid-tree in O(depth).
//
// A Cursor borrows its Dict: mutating the Dict while a Cursor is alive is
// a usage error. An exhausted Cursor stays exhausted; create a new one to
// restart.
type Cursor[V any] struct {
	stack [maxDepth]frame[V]
	top   int
}

// Next pops the next key/value pair in ascending order.
func (c *Cursor[V]) Next() (key uint, val V, ok bool) {
	for c.top > 0 {
		f := &c.stack[c.top-1]
		// skip empty slots using the occupancy mask
		skip := bits.TrailingZeros16(f.node.mask >> f.idx)
		if skip == 16 {
			c.top--
			continue
		}
		f.idx += skip
		slot := &f.node.child[f.idx]
		f.idx++
		if slot.leaf != nil {
			return slot.leaf.key, slot.leaf.val, true
		}
		c.stack[c.top] = frame[V]{node: slot.node}
		c.top++
	}
	return
}

// All adapts the cursor to a range-over-func sequence. The sequence is
// strictly ascending by key.
func (c *Cursor[V]) All() iter.Seq2[uint, V] {
	return func(yield func(uint, V) bool) {
		for key, val, ok := c.Next(); ok; key, val, ok = c.Next() {
			if !yield(key, val) {
				return
			}
		}
	}
}

// Iter returns a cursor over all the entries in ascending key order.
func (t *Dict[V]) Iter() *Cursor[V] {
	c := &Cursor[V]{}
	if t.root.node != nil {
		c.stack[0] = frame[V]{node: t.root.node}
		c.top = 1
	}
	return c
}

// LowerBound returns a cursor over the entries with keys not less than the
// given key. If no such entries exist the cursor is exhausted right away.
func (t *Dict[V]) LowerBound(key uint) *Cursor[V] {
	return t.bound(key, false)
}

// UpperBound returns a cursor over the entries with keys greater than the
// given key. If no such entries exist the cursor is exhausted right away.
func (t *Dict[V]) UpperBound(key uint) *Cursor[V] {
	return t.bound(key, true)
}

// bound seeds a cursor by descending along the chunk path of the key,
// recording at each level the branch and the sibling index to resume from.
// Entries below the bound are never produced, so the cost is O(depth), not
// O(number of skipped entries).
func (t *Dict[V]) bound(key uint, strict bool) *Cursor[V] {
	c := &Cursor[V]{}
	p := t.root.node
	for depth := 0; p != nil; depth++ {
		idx := chunk(key, depth)
		c.stack[c.top] = frame[V]{node: p, idx: idx + 1}
		c.top++
		slot := &p.child[idx]
		if slot.leaf != nil && !strict {
			// exact match - make it the first yielded entry
			c.stack[c.top-1].idx = idx
		}
		p = slot.node
	}
	return c
}
