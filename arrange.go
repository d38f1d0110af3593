package layout

import "errors"

// ErrUnimplementedOperation is the panic value raised when arrangement is
// requested for a kind with no registered arranger. This is a programming
// error in the integration, never a recoverable runtime condition.
var ErrUnimplementedOperation = errors.New("layout: no arranger registered for node kind")

// Arranger supplies the node-kind-specific arrangement algorithm. The core
// treats it as an opaque capability: before returning, an implementation
// must leave RelativePosition set for every direct child of n and
// ContentSize set for n itself.
//
// When recursive is true the implementation must invoke each child's
// ArrangeChildren(true) before using the child's resulting total size; when
// false it uses each child's current size as-is.
type Arranger interface {
	ArrangeChildren(n *Node, recursive bool)
}

// ArrangerFunc adapts a plain function to the Arranger interface.
type ArrangerFunc func(n *Node, recursive bool)

// ArrangeChildren calls fn.
func (fn ArrangerFunc) ArrangeChildren(n *Node, recursive bool) {
	fn(n, recursive)
}

// ArrangeChildren dispatches to the arranger registered for this node's
// kind. It panics with ErrUnimplementedOperation if the workspace has no
// arranger for the kind.
func (n *Node) ArrangeChildren(recursive bool) {
	a := n.ws.arrangerFor(n.kind)
	if a == nil {
		panic(ErrUnimplementedOperation)
	}
	a.ArrangeChildren(n, recursive)
}
