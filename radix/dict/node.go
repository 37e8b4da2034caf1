package dict

import "math/bits"

const (
	chunkWidth = 4                          // key bits consumed per level
	fanout     = 1 << chunkWidth            // 16-way branching
	chunkMask  = fanout - 1                 // 0b1111
	maxDepth   = bits.UintSize / chunkWidth // 8 on 32-bit, 16 on 64-bit platforms
)

// chunk extracts the 4-bit slice of a key that indexes the child slot at a
// given depth. Depth 0 is the most significant chunk, so an ascending-index
// walk of the tree visits keys in ascending numeric order.
func chunk(key uint, depth int) int {
	return int(key>>(bits.UintSize-chunkWidth*(depth+1))) & chunkMask
}

// leaf holds a complete key and its value. Leaves only occur at the final
// chunk depth because every key is decomposed into maxDepth chunks.
type leaf[V any] struct {
	key uint
	val V
}

// branch is an interior node. mask mirrors the occupancy of the child
// array: bit i is set iff child[i] is not empty.
type branch[V any] struct {
	child [fanout]ref[V]
	mask  uint16
}

// ref holds either a branch, a leaf or nothing.
type ref[V any] struct {
	node *branch[V]
	leaf *leaf[V]
}
