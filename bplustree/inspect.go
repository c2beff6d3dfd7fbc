// Debug renderings of the tree structure.

package bplus

import (
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"
)

// String renders the keys level by level, one line per level. Each brace
// group holds the children of one parent, each bracket list one node:
//
//	{[15]}
//	{[10], [20]}
//	{[1, 5], [10]}, {[15], [20, 25]}
func (t *BPlusTree[K, V]) String() string {
	var sb strings.Builder
	queue := [][]*Node[K, V]{{t.root}}
	for len(queue) > 0 {
		var nextQueue [][]*Node[K, V]
		for gi, group := range queue {
			sb.WriteByte('{')
			for i, n := range group {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(formatKeys(n.keys))
				if !n.isLeaf() {
					nextQueue = append(nextQueue, n.children)
				}
			}
			sb.WriteByte('}')
			if gi < len(queue)-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteByte('\n')
		queue = nextQueue
	}
	return sb.String()
}

// TreeView returns a hierarchical rendering of the node structure.
func (t *BPlusTree[K, V]) TreeView() treeprint.Tree {
	tree := treeprint.New()
	tree.SetValue(nodeLabel(t.root))
	addChildren(tree, t.root)
	return tree
}

func addChildren[K, V any](branch treeprint.Tree, n *Node[K, V]) {
	for _, child := range n.children {
		if child.isLeaf() {
			branch.AddNode(nodeLabel(child))
			continue
		}
		addChildren(branch.AddBranch(nodeLabel(child)), child)
	}
}

func nodeLabel[K, V any](n *Node[K, V]) string {
	return fmt.Sprintf("%s %s", n.nodeType, formatKeys(n.keys))
}

// InspectTo writes a breadth-first dump of every node to w, listing
// key -> value pairs for leaves.
func (t *BPlusTree[K, V]) InspectTo(w io.Writer) error {
	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	p("B+ tree: m=%d height=%d keys=%d\n", t.branchingFactor, t.Height(), t.Len())

	queue := []*Node[K, V]{t.root}
	level := 0
	for len(queue) > 0 {
		size := len(queue)
		p("  Level %d:\n", level)
		for _, n := range queue[:size] {
			if n.nodeType == NodeInternal {
				p("    INTERNAL keys=%s children=%d\n", formatKeys(n.keys), len(n.children))
				queue = append(queue, n.children...)
				continue
			}
			p("    LEAF numKeys=%d\n", len(n.keys))
			for j, k := range n.keys {
				p("      %v -> %v\n", k, n.values[j])
			}
		}
		queue = queue[size:]
		level++
	}
	return err
}

// formatKeys renders keys as "[a, b, c]".
func formatKeys[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
