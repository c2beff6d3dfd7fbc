package bplus

// Iterator walks the leaf chain in either direction.
// It must not be used across an Insert.
type Iterator[K, V any] struct {
	leaf  *Node[K, V]
	index int
	valid bool
}

// First positions a new iterator at the smallest key.
func (t *BPlusTree[K, V]) First() *Iterator[K, V] {
	it := &Iterator[K, V]{}
	// skip empty leaves; only an empty root leaf can be empty
	for leaf := t.firstLeaf(); leaf != nil; leaf = leaf.next {
		if len(leaf.keys) > 0 {
			it.leaf = leaf
			it.valid = true
			break
		}
	}
	return it
}

// Last positions a new iterator at the largest key.
func (t *BPlusTree[K, V]) Last() *Iterator[K, V] {
	it := &Iterator[K, V]{}
	for leaf := t.lastLeaf(); leaf != nil; leaf = leaf.prev {
		if len(leaf.keys) > 0 {
			it.leaf = leaf
			it.index = len(leaf.keys) - 1
			it.valid = true
			break
		}
	}
	return it
}

// SeekGE positions a new iterator at the first key >= target.
func (t *BPlusTree[K, V]) SeekGE(target K) *Iterator[K, V] {
	it := &Iterator[K, V]{}
	leaf := t.FindLeaf(target)
	i, _ := search(leaf.keys, target, t.cmp)
	for leaf != nil && i >= len(leaf.keys) {
		// move to next leaf if present
		leaf = leaf.next
		i = 0
	}
	if leaf != nil {
		it.leaf = leaf
		it.index = i
		it.valid = true
	}
	return it
}

// Valid reports whether the iterator points at an entry.
func (it *Iterator[K, V]) Valid() bool {
	return it.valid
}

// Next advances the iterator. Returns false when exhausted.
func (it *Iterator[K, V]) Next() bool {
	if !it.valid {
		return false
	}
	it.index++
	for it.index >= len(it.leaf.keys) {
		if it.leaf.next == nil {
			it.leaf = nil
			it.valid = false
			return false
		}
		it.leaf = it.leaf.next
		it.index = 0
	}
	return true
}

// Prev steps the iterator back. Returns false when exhausted.
func (it *Iterator[K, V]) Prev() bool {
	if !it.valid {
		return false
	}
	it.index--
	for it.index < 0 {
		if it.leaf.prev == nil {
			it.leaf = nil
			it.valid = false
			return false
		}
		it.leaf = it.leaf.prev
		it.index = len(it.leaf.keys) - 1
	}
	return true
}

// Key returns the current key.
func (it *Iterator[K, V]) Key() K {
	if !it.valid {
		var zero K
		return zero
	}
	return it.leaf.keys[it.index]
}

// Value returns the current value.
func (it *Iterator[K, V]) Value() V {
	if !it.valid {
		var zero V
		return zero
	}
	return it.leaf.values[it.index]
}

// Ascend calls fn for every entry in ascending key order until fn returns false.
func (t *BPlusTree[K, V]) Ascend(fn func(key K, value V) bool) {
	for it := t.First(); it.Valid(); it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}

// Descend calls fn for every entry in descending key order until fn returns false.
func (t *BPlusTree[K, V]) Descend(fn func(key K, value V) bool) {
	for it := t.Last(); it.Valid(); it.Prev() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}
