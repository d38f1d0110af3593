package layout

// Stock arrangers for the closed kind set. They cover the common block
// geometry (field rows, block stacks, free-floating groups); embedders with
// richer element sizing register their own Arranger per kind instead.

// FieldArranger arranges field nodes. Fields are leaves that own their
// content size — it is measured by the rendering layer and pushed in with
// SetContentSize — so arrangement leaves the node untouched.
type FieldArranger struct{}

// ArrangeChildren implements Arranger.
func (FieldArranger) ArrangeChildren(n *Node, recursive bool) {}

// BlockArranger lays a block's fields out in a single left-to-right row
// separated by Gap, and sizes the block to the row's extent.
type BlockArranger struct {
	// Gap is the horizontal spacing between adjacent fields.
	Gap float64
}

// ArrangeChildren implements Arranger.
func (a BlockArranger) ArrangeChildren(n *Node, recursive bool) {
	var x, rowHeight float64
	for i, child := range n.Children() {
		if recursive {
			child.ArrangeChildren(true)
		}
		if i > 0 {
			x += a.Gap
		}
		child.SetRelativePosition(Point{X: x, Y: 0})
		total := child.TotalSize()
		x += total.Width
		if total.Height > rowHeight {
			rowHeight = total.Height
		}
	}
	n.SetContentSize(Size{Width: x, Height: rowHeight})
}

// BlockGroupArranger stacks a group's blocks vertically, separated by
// Spacing, and sizes the group to the stack's extent.
type BlockGroupArranger struct {
	// Spacing is the vertical spacing between adjacent blocks.
	Spacing float64
}

// ArrangeChildren implements Arranger.
func (a BlockGroupArranger) ArrangeChildren(n *Node, recursive bool) {
	var y, stackWidth float64
	for i, child := range n.Children() {
		if recursive {
			child.ArrangeChildren(true)
		}
		if i > 0 {
			y += a.Spacing
		}
		child.SetRelativePosition(Point{X: 0, Y: y})
		total := child.TotalSize()
		y += total.Height
		if total.Width > stackWidth {
			stackWidth = total.Width
		}
	}
	n.SetContentSize(Size{Width: stackWidth, Height: y})
}

// WorkspaceArranger arranges the workspace root. Block groups float freely
// at whatever relative position they were dragged to, so the root leaves
// child positions alone and sizes itself to cover every group's extent.
type WorkspaceArranger struct{}

// ArrangeChildren implements Arranger.
func (WorkspaceArranger) ArrangeChildren(n *Node, recursive bool) {
	var extent Size
	for _, child := range n.Children() {
		if recursive {
			child.ArrangeChildren(true)
		}
		pos := child.RelativePosition()
		total := child.TotalSize()
		extent = extent.Union(Size{
			Width:  pos.X + total.Width,
			Height: pos.Y + total.Height,
		})
	}
	n.SetContentSize(extent)
}
