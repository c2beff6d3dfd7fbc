package bplus

// createNewRoot splits the overflowing root and installs a new internal root
// with the old root and its sibling as the only two children. The separator
// is the sibling's first leaf key.
func (t *BPlusTree[K, V]) createNewRoot() {
	left := t.root
	right := t.split(left)

	root := NewNode[K, V](NodeInternal, t.branchingFactor)
	root.keys = append(root.keys, right.firstLeafKey())
	root.children = append(root.children, left, right)
	t.root = root

	t.log.Debug("new root", "height", t.Height(), "split", left.nodeType)
}
