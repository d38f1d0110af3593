package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshViewPositions_AbsolutePositionComposition(t *testing.T) {
	ws := NewWorkspace()
	group := ws.NewNode(KindBlockGroup, WithRelativePosition(Point{X: 10, Y: 20}))
	block := ws.NewNode(KindBlock,
		WithRelativePosition(Point{X: 5, Y: 5}),
		WithEdgeInsets(EdgeInsets{Top: 2, Left: 3}),
		WithContentSize(Size{Width: 40, Height: 8}),
	)
	group.SetParent(ws.Root())
	block.SetParent(group)

	ws.Root().RefreshViewPositions(Point{}, true)

	require.Equal(t, Point{}, ws.Root().AbsolutePosition())
	require.Equal(t, Point{X: 10, Y: 20}, group.AbsolutePosition())

	// child abs = parent abs + relative + (insets.left, insets.top)
	want := group.AbsolutePosition().
		Add(block.RelativePosition()).
		Add(Point{X: 3, Y: 2})
	require.Equal(t, want, block.AbsolutePosition())
}

func TestRefreshViewPositions_ViewFrames(t *testing.T) {
	ws := NewWorkspace(WithScale(2))
	group := ws.NewNode(KindBlockGroup, WithRelativePosition(Point{X: 10, Y: 10}))
	block := ws.NewNode(KindBlock, WithContentSize(Size{Width: 30, Height: 15}))
	group.SetParent(ws.Root())
	block.SetParent(group)

	ws.Root().RefreshViewPositions(Point{}, true)

	assert.Equal(t, NewRect(20, 20, 60, 30), block.ViewFrame(), "frame must pass through the root-supplied transform")

	// The workspace root is the rendering surface itself; propagation never
	// assigns it a frame.
	assert.Equal(t, Rect{}, ws.Root().ViewFrame())
}

func TestRefreshViewPositions_SkipsFieldsWhenExcluded(t *testing.T) {
	ws := NewWorkspace()
	block := ws.NewNode(KindBlock, WithContentSize(Size{Width: 50, Height: 10}))
	field := ws.NewNode(KindField,
		WithRelativePosition(Point{X: 4, Y: 4}),
		WithContentSize(Size{Width: 10, Height: 5}),
	)
	block.SetParent(ws.Root())
	field.SetParent(block)

	ws.Root().RefreshViewPositions(Point{}, true)
	frameBefore := field.ViewFrame()
	absBefore := field.AbsolutePosition()

	// Move the block; re-propagate without fields. The field keeps its old
	// coordinates untouched.
	block.SetRelativePosition(Point{X: 100, Y: 100})
	ws.Root().RefreshViewPositions(Point{}, false)

	require.Equal(t, absBefore, field.AbsolutePosition())
	require.Equal(t, frameBefore, field.ViewFrame())
	require.Equal(t, Point{X: 100, Y: 100}, block.AbsolutePosition())

	// A full pass brings the field back in sync.
	ws.Root().RefreshViewPositions(Point{}, true)
	require.Equal(t, Point{X: 104, Y: 104}, field.AbsolutePosition())
}

func TestRefreshViewPositions_ConsistentAfterAncestorShift(t *testing.T) {
	ws := NewWorkspace()
	group := ws.NewNode(KindBlockGroup, WithRelativePosition(Point{X: 1, Y: 1}))
	block := ws.NewNode(KindBlock, WithRelativePosition(Point{X: 2, Y: 2}))
	field := ws.NewNode(KindField, WithRelativePosition(Point{X: 3, Y: 3}))
	group.SetParent(ws.Root())
	block.SetParent(group)
	field.SetParent(block)

	ws.Root().RefreshViewPositions(Point{}, true)
	require.Equal(t, Point{X: 6, Y: 6}, field.AbsolutePosition())

	// Shifting the topmost ancestor displaces every descendant by the same
	// delta on the next pass.
	group.SetRelativePosition(Point{X: 11, Y: 1})
	ws.Root().RefreshViewPositions(Point{}, true)
	require.Equal(t, Point{X: 16, Y: 6}, field.AbsolutePosition())
}
