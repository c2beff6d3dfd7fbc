package bplus

// splitLeaf moves the upper half of leaf into a new right sibling and splices
// the sibling into the leaf chain directly after leaf.
func (t *BPlusTree[K, V]) splitLeaf(leaf *Node[K, V]) *Node[K, V] {
	mid := (len(leaf.keys) + 1) / 2

	right := NewNode[K, V](NodeLeaf, t.branchingFactor)
	right.keys = append(right.keys, leaf.keys[mid:]...)
	right.values = append(right.values, leaf.values[mid:]...)

	clear(leaf.keys[mid:])
	clear(leaf.values[mid:])
	leaf.keys = leaf.keys[:mid]
	leaf.values = leaf.values[:mid]

	right.next = leaf.next // right inherits leaf's old next pointer
	if right.next != nil {
		right.next.prev = right
	}
	right.prev = leaf
	leaf.next = right

	t.log.Debug("split leaf", "left", len(leaf.keys), "right", len(right.keys))
	return right
}
