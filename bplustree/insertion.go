package bplus

// Insert stores value under key. An identical key already in the tree has
// its value overwritten. The tree grows by one level when the root splits.
func (t *BPlusTree[K, V]) Insert(key K, value V) {
	t.insert(t.root, key, value)

	if t.root.isOverflow(t.branchingFactor) {
		t.createNewRoot()
	}
	t.cache.clear()
}

// insert places key/value in the subtree rooted at n. Overflowing children
// are split on the way back up; n itself is left for its parent to split.
func (t *BPlusTree[K, V]) insert(n *Node[K, V], key K, value V) {
	if n.isLeaf() {
		t.insertIntoLeaf(n, key, value)
		return
	}

	child := t.getChild(n, key)
	t.insert(child, key, value)

	if child.isOverflow(t.branchingFactor) {
		sibling := t.split(child)
		t.insertIntoParent(n, sibling.firstLeafKey(), sibling)
	}
}

func (t *BPlusTree[K, V]) insertIntoLeaf(leaf *Node[K, V], key K, value V) {
	i, found := search(leaf.keys, key, t.cmp)
	if found {
		leaf.values[i] = value
		return
	}
	leaf.keys = insert(leaf.keys, i, key)
	leaf.values = insert(leaf.values, i, value)
}

// split dispatches on node type and returns the new right sibling.
func (t *BPlusTree[K, V]) split(n *Node[K, V]) *Node[K, V] {
	if n.isLeaf() {
		return t.splitLeaf(n)
	}
	return t.splitInternal(n)
}

// insert inserts elem at index i in slice.
func insert[T any](slice []T, i int, elem T) []T {
	slice = append(slice, elem) // grow by 1
	copy(slice[i+1:], slice[i:])
	slice[i] = elem
	return slice
}
