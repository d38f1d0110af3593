package layout

import "github.com/google/uuid"

// Node is the tree entity of the layout core: identity, parent/child
// membership, local geometry, and the dirty flags backing the
// change-notification contract.
//
// A node is created through Workspace.NewNode with a reference to its
// workspace and no parent; tree construction attaches it with SetParent.
// All geometry fields are mutated through explicit setters so that derived
// state (total size, dirty flags, pending notifications) is recomputed
// synchronously with the mutation.
type Node struct {
	// Identity (assigned at creation, stable for the node's lifetime)
	id   uuid.UUID
	kind Kind

	// Tree structure (children is the single source of truth for
	// membership; parent always mirrors it)
	ws       *Workspace // non-owning back reference, never reassigned
	parent   *Node
	children []*Node

	// Local geometry
	relativePosition Point
	contentSize      Size
	edgeInsets       EdgeInsets
	totalSize        Size // derived from contentSize and edgeInsets

	// Derived coordinates, valid as of the last propagation pass that
	// visited this node
	absolutePosition Point
	viewFrame        Rect

	// Notification state
	needsDisplay       bool
	needsRepositioning bool
	observer           Observer
}

// newNode constructs a detached node bound to ws. Callers go through
// Workspace.NewNode, which validates the kind.
func newNode(ws *Workspace, kind Kind, opts ...NodeOption) *Node {
	n := &Node{
		id:   uuid.New(),
		kind: kind,
		ws:   ws,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NodeOption configures a node at creation time.
type NodeOption func(*Node)

// WithContentSize sets the node's initial content size.
func WithContentSize(s Size) NodeOption {
	return func(n *Node) { n.SetContentSize(s) }
}

// WithEdgeInsets sets the node's initial edge insets.
func WithEdgeInsets(e EdgeInsets) NodeOption {
	return func(n *Node) { n.SetEdgeInsets(e) }
}

// WithRelativePosition sets the node's initial offset from its parent.
func WithRelativePosition(p Point) NodeOption {
	return func(n *Node) { n.relativePosition = p }
}

// WithObserver registers a change observer on the node.
func WithObserver(o Observer) NodeOption {
	return func(n *Node) { n.observer = o }
}

// ID returns the node's process-unique identifier.
func (n *Node) ID() uuid.UUID {
	return n.id
}

// Kind returns the node's kind tag.
func (n *Node) Kind() Kind {
	return n.kind
}

// Workspace returns the workspace-level container all nodes in this tree
// reference.
func (n *Node) Workspace() *Workspace {
	return n.ws
}
