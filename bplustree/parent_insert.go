package bplus

// insertIntoParent installs a freshly split sibling in parent, separated by
// sepKey. Slots are found with the routing rule: if sepKey is already a
// separator, the sibling replaces the child to its right and no key is added,
// so separators are never duplicated.
func (t *BPlusTree[K, V]) insertIntoParent(parent *Node[K, V], sepKey K, sibling *Node[K, V]) {
	i, found := search(parent.keys, sepKey, t.cmp)
	if found {
		parent.children[i+1] = sibling
		return
	}
	parent.keys = insert(parent.keys, i, sepKey)
	parent.children = insert(parent.children, i+1, sibling)
}
