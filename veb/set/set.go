package set

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

const (
	radixWidth = 8
	maxDepth   = bits.UintSize / radixWidth
)

// Set is a dense ordered set of uint values: an 8-bit-radix tree whose
// nodes keep a 256-bit occupancy bitmap and a packed slice of children
// ordered by rank. Suits key distributions with many shared prefixes.
type Set struct {
	root *Node
	size uint64
}

type Node struct {
	bitmap   [4]uint64 // 256 bits representing 2**8 entries
	children []*Node
}

func NewSet(vals ...uint) *Set {
	s := &Set{
		root: &Node{},
		size: 0,
	}
	for _, val := range vals {
		s.Add(val)
	}
	return s
}

func (t *Set) Len() uint64 {
	if t == nil {
		return 0
	}
	return t.size
}

func (t *Set) Empty() bool {
	return t.Len() == 0
}

// Clear drops all the values at once.
func (t *Set) Clear() {
	t.root = &Node{}
	t.size = 0
}

// rank counts the occupied slots below idx - that is the child position.
func (n *Node) rank(ofs, idx byte) uint64 {
	cnt := popcount.Count(n.bitmap[ofs] & ((1 << idx) - 1))
	for j := byte(0); j < ofs; j++ {
		cnt += popcount.Count(n.bitmap[j])
	}
	return cnt
}

func (n *Node) empty() bool {
	return n.bitmap[0]|n.bitmap[1]|n.bitmap[2]|n.bitmap[3] == 0
}

func (t *Set) Has(val uint) bool {
	if t == nil {
		return false
	}

	shift := uint(bits.UintSize - radixWidth)
	node := t.root

	for i := 0; ; i++ {
		idx := byte(val >> shift)
		ofs := idx >> 6
		bmp := node.bitmap[ofs]
		idx = idx & 0x3F // the lowest 6 bits (2**6 == 64)
		if (bmp>>idx)&0x01 == 0 {
			return false // underlying nodes don't have it
		}
		if i == maxDepth-1 {
			break // this is a leaf
		}
		node = node.children[node.rank(ofs, idx)]
		shift -= radixWidth
	}

	return true
}

func (t *Set) Add(val uint) (add bool) {
	shift := uint(bits.UintSize - radixWidth)
	node := t.root

	for i := 0; ; i++ {
		idx := byte(val >> shift)
		ofs := idx >> 6
		bmp := node.bitmap[ofs]
		idx = idx & 0x3F // the lowest 6 bits (2**6 == 64)
		add = false
		if (bmp>>idx)&0x01 == 0 {
			node.bitmap[ofs] = bmp | (1 << idx)
			add = true
		}
		if i == maxDepth-1 {
			if add {
				t.size++
			}
			break // this is a leaf
		}
		cnt := node.rank(ofs, idx)
		if add {
			num := len(node.children)
			node.children = append(node.children, nil)
			if num > 0 {
				copy(node.children[cnt+1:], node.children[cnt:num])
			}
			next := &Node{}
			node.children[cnt] = next
			node = next
		} else {
			node = node.children[cnt]
		}
		shift -= radixWidth
	}

	return
}

// Del removes the value and unlinks the nodes it leaves empty.
// Reports whether the value was present.
func (t *Set) Del(val uint) bool {
	if t == nil || t.root == nil {
		return false
	}

	var (
		nodes [maxDepth]*Node
		words [maxDepth]byte
		idxs  [maxDepth]byte
		ranks [maxDepth]uint64
	)

	shift := uint(bits.UintSize - radixWidth)
	node := t.root

	for i := 0; ; i++ {
		idx := byte(val >> shift)
		ofs := idx >> 6
		bmp := node.bitmap[ofs]
		idx = idx & 0x3F
		if (bmp>>idx)&0x01 == 0 {
			return false
		}
		nodes[i], words[i], idxs[i] = node, ofs, idx
		if i == maxDepth-1 {
			break
		}
		ranks[i] = node.rank(ofs, idx)
		node = node.children[ranks[i]]
		shift -= radixWidth
	}

	t.size--
	// clear the leaf bit, then unlink emptied nodes bottom-up
	for i := maxDepth - 1; ; i-- {
		n := nodes[i]
		n.bitmap[words[i]] &^= 1 << idxs[i]
		if i == 0 || !n.empty() {
			break
		}
		parent := nodes[i-1]
		cnt := ranks[i-1]
		parent.children = append(parent.children[:cnt], parent.children[cnt+1:]...)
	}
	return true
}

// Each calls a handler for all values in ascending order.
// It returns whether all the values were visited. The handler can continue
// the process by returning true or abort with false.
func (t *Set) Each(handler func(val uint) bool) bool {
	if t == nil || t.root == nil {
		return true
	}
	return each(t.root, 0, 0, handler)
}

func each(node *Node, depth int, prefix uint, h func(uint) bool) bool {
	child := 0
	for idx := 0; idx < 256; idx++ {
		if (node.bitmap[idx>>6]>>(idx&0x3F))&0x01 == 0 {
			continue
		}
		val := prefix<<radixWidth | uint(idx)
		if depth == maxDepth-1 {
			if !h(val) {
				return false
			}
		} else {
			if !each(node.children[child], depth+1, val, h) {
				return false
			}
			child++
		}
	}
	return true
}

// Keys returns all values in ascending order.
func (t *Set) Keys() []uint {
	keys := make([]uint, 0, t.Len())
	t.Each(func(val uint) bool {
		keys = append(keys, val)
		return true
	})
	return keys
}
