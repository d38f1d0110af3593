package layout

// --- Tree membership ---

// SetParent reassigns this node's parent. It is a no-op when newParent is
// the current parent; otherwise it removes the node from the old parent's
// children and appends it to the new parent's, keeping the bidirectional
// membership invariant intact. Passing nil detaches the node.
//
// SetParent does not trigger relayout; callers run one of the relayout
// entry points explicitly after restructuring.
func (n *Node) SetParent(newParent *Node) {
	if n.parent == newParent {
		return
	}
	if newParent != nil {
		if newParent.ws != n.ws {
			panic("layout: cannot reparent across workspaces")
		}
		for a := newParent; a != nil; a = a.parent {
			if a == n {
				panic("layout: reparenting would create a cycle")
			}
		}
	}
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	n.parent = newParent
	if newParent != nil {
		newParent.children = append(newParent.children, n)
	}
}

// removeChild drops child from the children slice, preserving sibling
// order (arrangement is order-sensitive).
func (n *Node) removeChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
	panic("layout: child missing from parent's child list")
}

// Parent returns the parent node, or nil if this node is detached or is
// the tree root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child nodes in arrangement order. The returned
// slice is the node's own; callers must not mutate it.
func (n *Node) Children() []*Node {
	return n.children
}

// Root walks up the parent chain and returns the topmost node. For an
// attached node this is the workspace root; for a detached subtree it is
// the subtree's own top.
func (n *Node) Root() *Node {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Walk visits n and every descendant in depth-first order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.children {
		child.Walk(fn)
	}
}
