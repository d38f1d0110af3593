package layout

// Observer receives coalesced change notifications for a node. Registration
// is per node and optional: with no observer, a flushed notification is
// dropped silently and the node's dirty flags still clear.
type Observer interface {
	// NodeDisplayChanged reports that the node requires a full redraw.
	NodeDisplayChanged(n *Node)

	// NodePositionChanged reports that the node's frame moved but its
	// content is unchanged.
	NodePositionChanged(n *Node)
}

// SetObserver registers the observer receiving this node's change
// notifications. Pass nil to unregister.
func (n *Node) SetObserver(o Observer) {
	n.observer = o
}

// NeedsDisplay returns whether a full redraw is pending for this node.
func (n *Node) NeedsDisplay() bool {
	return n.needsDisplay
}

// NeedsRepositioning returns whether a frame move is pending for this
// node.
func (n *Node) NeedsRepositioning() bool {
	return n.needsRepositioning
}

// SetNeedsDisplay marks the node as requiring a full redraw and schedules
// a pending notification with the workspace scheduler. Redundant calls
// within one cycle schedule nothing further.
func (n *Node) SetNeedsDisplay() {
	transitioned := !n.needsDisplay
	n.needsDisplay = true
	if transitioned {
		n.ws.scheduler.Schedule(n)
	}
}

// SetNeedsRepositioning marks the node's frame as moved and schedules a
// pending notification with the workspace scheduler.
func (n *Node) SetNeedsRepositioning() {
	transitioned := !n.needsRepositioning
	n.needsRepositioning = true
	if transitioned {
		n.ws.scheduler.Schedule(n)
	}
}

// clearChangeFlags resets both dirty flags. The scheduler calls this after
// delivery, whichever branch fired.
func (n *Node) clearChangeFlags() {
	n.needsDisplay = false
	n.needsRepositioning = false
}
