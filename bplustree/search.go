package bplus

// RangeSearch returns, in leaf chain order, the values whose keys satisfy op
// against key:
//
//	GreaterOrEqual  stored key >= key
//	Equal           stored key == key
//	LessOrEqual     stored key <= key
//
// The search descends to the one leaf that key routes to and then walks the
// leaf chain forward to its end. Leaves before that entry leaf are never
// visited, so LessOrEqual only sees keys from the entry leaf onward.
// An invalid op yields an empty result.
func (t *BPlusTree[K, V]) RangeSearch(key K, op Comparator) []V {
	if !op.Valid() {
		return []V{}
	}
	if vals, ok := t.cache.get(key, op); ok {
		return vals
	}

	vals := t.scanFrom(t.FindLeaf(key), key, op)
	t.cache.set(key, op, vals)
	return vals
}

// RangeSearchString is RangeSearch with the comparator spelled ">=", "=="
// or "<=". Any other string yields an empty result rather than an error.
func (t *BPlusTree[K, V]) RangeSearchString(key K, comparator string) []V {
	op, ok := ParseComparator(comparator)
	if !ok {
		return []V{}
	}
	return t.RangeSearch(key, op)
}

// Search returns the value stored under key.
func (t *BPlusTree[K, V]) Search(key K) (V, bool) {
	leaf := t.FindLeaf(key)
	if i, found := search(leaf.keys, key, t.cmp); found {
		return leaf.values[i], true
	}
	var zero V
	return zero, false
}

// scanFrom tests every entry from leaf to the end of the chain.
func (t *BPlusTree[K, V]) scanFrom(leaf *Node[K, V], key K, op Comparator) []V {
	result := []V{}
	for n := leaf; n != nil; n = n.next {
		for i, k := range n.keys {
			if op.match(t.cmp(key, k)) {
				result = append(result, n.values[i])
			}
		}
	}
	return result
}
