package layout

import "github.com/seanwallawalla-forks/blockly-ios/internal/debug"

// --- Relayout entry points ---
//
// Both directions terminate in the coordinate propagation pass; they differ
// only in how much arrangement work they redo before it runs.

// UpdateLayoutDownTree performs a full relayout of the subtree rooted at n:
// it recursively re-arranges every descendant, then propagates coordinates
// over the subtree, seeded with the parent's current absolute position (or
// the zero point at the tree root).
//
// Use after a structural change (node inserted or removed) or any content
// change whose arrangement effect cannot be localized: cost is linear in
// the subtree size and the result is correct regardless of what changed.
func (n *Node) UpdateLayoutDownTree() {
	debug.Log("UpdateLayoutDownTree: node=%s kind=%s", n.id, n.kind)
	n.ArrangeChildren(true)

	var parentAbs Point
	if n.parent != nil {
		parentAbs = n.parent.absolutePosition
	}
	n.RefreshViewPositions(parentAbs, true)
}

// UpdateLayoutUpTree performs an incremental relayout starting at n,
// typically a leaf whose own content size changed: it re-arranges only n's
// direct children using their current sizes, recomputes n's content size,
// and recurses to the parent so ancestors can shift to accommodate the new
// size. Descendant arrangements below n are assumed already correct and are
// not touched.
//
// On reaching the tree root, coordinates are re-propagated over the entire
// tree: an ancestor's shift displaces every node's absolute position, no
// matter where upward re-arrangement stopped.
func (n *Node) UpdateLayoutUpTree() {
	debug.Log("UpdateLayoutUpTree: node=%s kind=%s", n.id, n.kind)
	n.ArrangeChildren(false)

	if n.parent != nil {
		n.parent.UpdateLayoutUpTree()
		return
	}
	n.RefreshViewPositions(Point{}, true)
}
