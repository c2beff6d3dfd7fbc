// Package bplus is an in-memory B+ tree.
//
// Shape rules kept by every Insert:
//   - a node's keys are strictly increasing under the tree's comparator
//   - an internal node with n keys has n+1 children and at most m of them;
//     keys[i] is the first key stored under children[i+1]
//   - a leaf holds keys and values pairwise, at most m-1 of them, and sits
//     in a doubly linked chain that visits all leaves in key order
//   - every leaf is the same distance from the root
//
// The root alone may be underfull; it is never left overflowing.
package bplus

import (
	"log/slog"
)

type NodeType int

const (
	NodeInternal NodeType = iota
	NodeLeaf
)

func (nt NodeType) String() string {
	if nt == NodeLeaf {
		return "leaf"
	}
	return "internal"
}

// MinBranchingFactor is the smallest branching factor a tree accepts.
const MinBranchingFactor = 3

type Node[K, V any] struct {
	nodeType NodeType
	keys     []K           // keys in the node (sorted keys)
	children []*Node[K, V] // only for internal node, owned
	values   []V           // only for leaf node
	next     *Node[K, V]   // only for leaf node, not owned
	prev     *Node[K, V]   // only for leaf node, not owned
}

// BPlusTree is an in-memory B+ tree. It does no locking: one mutator at a
// time, and no readers while an Insert is running.
type BPlusTree[K, V any] struct {
	root            *Node[K, V]
	branchingFactor int              // max children per internal node (m)
	cmp             func(a, b K) int // key comparator (typically cmp.Compare)
	log             *slog.Logger
	cache           *resultCache[K, V] // nil unless WithResultCache was given
}
