package bplus

import (
	"cmp"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func newIntTree(t *testing.T, m int, opts ...Option) *BPlusTree[int, string] {
	t.Helper()
	tree, err := NewBPlusTree[int, string](m, opts...)
	require.NoError(t, err)
	return tree
}

func val(k int) string {
	return fmt.Sprintf("v%d", k)
}

// chainKeys collects keys by walking the leaf chain from the leftmost leaf.
func chainKeys[K, V any](tree *BPlusTree[K, V]) []K {
	var keys []K
	for leaf := tree.firstLeaf(); leaf != nil; leaf = leaf.next {
		keys = append(keys, leaf.keys...)
	}
	return keys
}

// checkInvariants verifies the structural rules of the tree: node shape,
// capacity of non-root nodes, separator bounds, uniform leaf depth and a
// leaf chain that matches the left-to-right order of the leaves.
func checkInvariants[K cmp.Ordered, V any](t *testing.T, tree *BPlusTree[K, V]) {
	t.Helper()

	var leaves []*Node[K, V]
	leafDepth := -1

	var walk func(n *Node[K, V], depth int, lo, hi *K)
	walk = func(n *Node[K, V], depth int, lo, hi *K) {
		if n != tree.root {
			require.False(t, n.isOverflow(tree.branchingFactor), "non-root %s node overflows: %v", n.nodeType, n.keys)
		}
		for i := 1; i < len(n.keys); i++ {
			require.Less(t, n.keys[i-1], n.keys[i], "keys out of order: %v", n.keys)
		}
		for _, k := range n.keys {
			if lo != nil {
				require.GreaterOrEqual(t, k, *lo)
			}
			if hi != nil {
				require.Less(t, k, *hi)
			}
		}

		if n.isLeaf() {
			require.Len(t, n.values, len(n.keys))
			require.Nil(t, n.children)
			if leafDepth == -1 {
				leafDepth = depth
			}
			require.Equal(t, leafDepth, depth, "leaves at different depths")
			leaves = append(leaves, n)
			return
		}

		require.Len(t, n.children, len(n.keys)+1)
		for i, child := range n.children {
			childLo, childHi := lo, hi
			if i > 0 {
				childLo = &n.keys[i-1]
			}
			if i < len(n.keys) {
				childHi = &n.keys[i]
			}
			walk(child, depth+1, childLo, childHi)
		}
	}
	walk(tree.root, 1, nil, nil)

	require.Equal(t, leafDepth, tree.Height())

	// chain must link the leaves exactly in tree order, both directions
	require.Nil(t, leaves[0].prev)
	require.Nil(t, leaves[len(leaves)-1].next)
	for i := 1; i < len(leaves); i++ {
		require.Same(t, leaves[i], leaves[i-1].next)
		require.Same(t, leaves[i-1], leaves[i].prev)
	}
}
