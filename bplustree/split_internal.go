package bplus

// splitInternal splits an overflowing internal node. With t keys the cut is
// f = t/2 + 1: the right sibling takes keys[f:] and children[f:], the left
// keeps keys[:f-1] and children[:f]. keys[f-1] is dropped from both halves;
// the parent re-derives it as the sibling's first leaf key.
func (t *BPlusTree[K, V]) splitInternal(node *Node[K, V]) *Node[K, V] {
	f := len(node.keys)/2 + 1

	right := NewNode[K, V](NodeInternal, t.branchingFactor)
	right.keys = append(right.keys, node.keys[f:]...)
	right.children = append(right.children, node.children[f:]...)

	// shrink left node
	clear(node.keys[f-1:])
	clear(node.children[f:])
	node.keys = node.keys[:f-1]
	node.children = node.children[:f]

	t.log.Debug("split internal", "left", len(node.children), "right", len(right.children))
	return right
}
