package layout

// RefreshViewPositions runs the coordinate propagation pass over the
// subtree rooted at n, seeded with the absolute position of n's parent.
// It is the single source of truth for absolute and view coordinates: after
// it returns, every visited node's AbsolutePosition and (for directly
// rendered kinds) ViewFrame are consistent with the subtree's current
// relative positions, insets, and content sizes.
//
// The pass is a pure function of current geometry state. It has no memory
// of what changed, so it must be re-run in full over any subtree whose
// geometry changed.
//
// When includeFields is false, field-kind nodes are skipped entirely; their
// frames move with their block, so callers that know field frames are
// current can avoid touching them.
func (n *Node) RefreshViewPositions(parentAbsolutePosition Point, includeFields bool) {
	n.absolutePosition = parentAbsolutePosition.
		Add(n.relativePosition).
		Add(n.edgeInsets.Origin())

	if n.kind.DirectlyRendered() && (includeFields || !n.kind.IsField()) {
		n.setViewFrame(n.ws.transform.ViewFrame(n.absolutePosition, n.contentSize))
	}

	for _, child := range n.children {
		if !includeFields && child.kind.IsField() {
			continue
		}
		child.RefreshViewPositions(n.absolutePosition, includeFields)
	}
}
