package bplus

import (
	"cmp"
	"fmt"
)

// NewBPlusTree creates an empty tree ordered by cmp.Compare.
// branchingFactor must be at least MinBranchingFactor.
func NewBPlusTree[K cmp.Ordered, V any](branchingFactor int, opts ...Option) (*BPlusTree[K, V], error) {
	return NewBPlusTreeFunc[K, V](branchingFactor, cmp.Compare[K], opts...)
}

// NewBPlusTreeFunc creates an empty tree ordered by compare, which must
// return a negative number, zero or a positive number as a < b, a == b or a > b.
func NewBPlusTreeFunc[K, V any](branchingFactor int, compare func(a, b K) int, opts ...Option) (*BPlusTree[K, V], error) {
	if branchingFactor < MinBranchingFactor {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBranchingFactor, branchingFactor)
	}
	if compare == nil {
		return nil, ErrNilCompare
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &BPlusTree[K, V]{
		root:            NewNode[K, V](NodeLeaf, branchingFactor),
		branchingFactor: branchingFactor,
		cmp:             compare,
		log:             o.logger,
	}
	if o.cacheEntries > 0 {
		c, err := newResultCache[K, V](o.cacheEntries, compare)
		if err != nil {
			return nil, fmt.Errorf("result cache: %w", err)
		}
		t.cache = c
	}
	return t, nil
}

// BranchingFactor returns m, the maximum number of children of an internal node.
func (t *BPlusTree[K, V]) BranchingFactor() int {
	return t.branchingFactor
}

// Close releases the result cache, if any. The tree stays usable without it.
func (t *BPlusTree[K, V]) Close() {
	if t.cache != nil {
		t.cache.close()
		t.cache = nil
	}
}
