// Package dict defines an ordered map keyed by uint, implemented as a
// fixed-depth radix tree.
//
// Every key is decomposed into bits.UintSize/4 nibbles, most significant
// first, and each nibble indexes a slot in a 16-way branch node. Leaves
// therefore only occur at the final depth and an ascending-index walk of
// the tree yields keys in ascending numeric order - no comparisons, no
// rebalancing, and every operation is bounded by the fixed depth.
//
// Structure:
// ---------
//
//   - ref    - a child slot holding a *branch, a *leaf or nothing;
//   - branch - [16]ref plus a uint16 occupancy mask mirroring the slots;
//   - leaf   - the complete key and its value.
//
// A branch whose mask drops to zero after a removal is collapsed into its
// parent slot, and the collapse propagates upward, so the memory held by
// the tree is proportional to the number of live keys.
//
// Example trie (16-bit keys would take 4 levels):
//
//	[root] --+-- 0x1 --- 0x2 --- 0x3 --- 0x4 [leaf:0x1234]
//	         |
//	         `-- 0xA --- 0x0 --+-- 0x0 --- 0x1 [leaf:0xA001]
//	                           |
//	                           `-- 0x7 --- 0xF [leaf:0xA07F]
//
// Iteration comes in two shapes: handler-style visitors (Each, EachMut,
// EachReverse) that short-circuit when the handler returns false, and a
// pull-based Cursor (Iter, LowerBound, UpperBound) holding an explicit
// stack of (branch, next-child-index) frames so that bound queries seed
// it mid-tree in O(depth).
package dict
