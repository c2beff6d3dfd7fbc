package bplus

// NewNode creates a new node of given type with room for one overflow entry.
func NewNode[K, V any](nodeType NodeType, branchingFactor int) *Node[K, V] {
	n := &Node[K, V]{
		nodeType: nodeType,
		keys:     make([]K, 0, branchingFactor),
	}
	if nodeType == NodeInternal {
		n.children = make([]*Node[K, V], 0, branchingFactor+1)
	} else {
		n.values = make([]V, 0, branchingFactor)
	}
	return n
}

func (n *Node[K, V]) isLeaf() bool {
	return n.nodeType == NodeLeaf
}

// isOverflow reports whether n holds more than the branching factor allows:
// more than m children for internal nodes, more than m-1 entries for leaves.
func (n *Node[K, V]) isOverflow(branchingFactor int) bool {
	if n.isLeaf() {
		return len(n.values) > branchingFactor-1
	}
	return len(n.children) > branchingFactor
}

// firstLeafKey returns the smallest key in the subtree rooted at n.
// The leftmost leaf must not be empty.
func (n *Node[K, V]) firstLeafKey() K {
	for !n.isLeaf() {
		n = n.children[0]
	}
	return n.keys[0]
}
