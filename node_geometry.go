package layout

import "github.com/seanwallawalla-forks/blockly-ios/internal/geometry"

// --- Geometry accessors ---
//
// Derived state is recomputed inside the setter that invalidates it, so no
// reader ever observes a stale totalSize and every view-frame change is
// accounted for by the notification contract.

// RelativePosition returns this node's offset from its parent's origin, in
// the parent's local space before edge insets.
func (n *Node) RelativePosition() Point {
	return n.relativePosition
}

// SetRelativePosition updates the node's offset from its parent's origin.
// Arrangement hooks call this for every direct child they position.
func (n *Node) SetRelativePosition(p Point) {
	n.relativePosition = p
}

// ContentSize returns the space this node's own content occupies,
// excluding insets.
func (n *Node) ContentSize() Size {
	return n.contentSize
}

// SetContentSize updates the content size and synchronously rederives
// totalSize. Negative dimensions panic: they indicate a broken arrangement
// hook, not a runtime condition.
func (n *Node) SetContentSize(s Size) {
	n.contentSize = geometry.NewSize(s.Width, s.Height)
	n.totalSize = geometry.TotalSize(n.contentSize, n.edgeInsets)
}

// EdgeInsets returns the insets applied around the node's content.
func (n *Node) EdgeInsets() EdgeInsets {
	return n.edgeInsets
}

// SetEdgeInsets updates the insets and synchronously rederives totalSize.
func (n *Node) SetEdgeInsets(e EdgeInsets) {
	n.edgeInsets = e
	n.totalSize = geometry.TotalSize(n.contentSize, n.edgeInsets)
}

// TotalSize returns the space the node reserves in its parent's
// arrangement: contentSize plus edge insets. It is derived; there is no
// setter.
func (n *Node) TotalSize() Size {
	return n.totalSize
}

// AbsolutePosition returns the node's position in the tree-root coordinate
// space, valid as of the last propagation pass that visited this node. Any
// ancestor geometry change invalidates it until the next pass.
func (n *Node) AbsolutePosition() Point {
	return n.absolutePosition
}

// ViewFrame returns the node's rectangle in view coordinates, valid as of
// the last propagation pass. It is meaningless for kinds that are not
// directly rendered.
func (n *Node) ViewFrame() Rect {
	return n.viewFrame
}

// setViewFrame stores a propagated view frame. A change to a different
// value marks the node as needing repositioning.
func (n *Node) setViewFrame(f Rect) {
	if n.viewFrame == f {
		return
	}
	n.viewFrame = f
	n.SetNeedsRepositioning()
}
