package bplus

// getChild picks the child of internal node n that key routes to.
func (t *BPlusTree[K, V]) getChild(n *Node[K, V], key K) *Node[K, V] {
	i, _ := routeIndex(n.keys, key, t.cmp)
	return n.children[i]
}

// FindLeaf descends from the root to the single leaf key routes to.
func (t *BPlusTree[K, V]) FindLeaf(key K) *Node[K, V] {
	n := t.root
	for !n.isLeaf() {
		n = t.getChild(n, key)
	}
	return n
}

// firstLeaf returns the leftmost leaf, the head of the leaf chain.
func (t *BPlusTree[K, V]) firstLeaf() *Node[K, V] {
	n := t.root
	for !n.isLeaf() {
		n = n.children[0]
	}
	return n
}

// lastLeaf returns the rightmost leaf, the tail of the leaf chain.
func (t *BPlusTree[K, V]) lastLeaf() *Node[K, V] {
	n := t.root
	for !n.isLeaf() {
		n = n.children[len(n.children)-1]
	}
	return n
}

// Height returns the number of levels, 1 for a tree that is a single leaf.
func (t *BPlusTree[K, V]) Height() int {
	h := 1
	for n := t.root; !n.isLeaf(); n = n.children[0] {
		h++
	}
	return h
}

// Len returns the number of stored keys.
func (t *BPlusTree[K, V]) Len() int {
	total := 0
	for leaf := t.firstLeaf(); leaf != nil; leaf = leaf.next {
		total += len(leaf.keys)
	}
	return total
}
