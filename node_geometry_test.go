package layout

import "testing"

func TestNode_TotalSizeDerivation(t *testing.T) {
	type tc struct {
		content  Size
		insets   EdgeInsets
		expected Size
	}

	tests := map[string]tc{
		"no insets": {
			content:  Size{Width: 100, Height: 50},
			insets:   EdgeInsets{},
			expected: Size{Width: 100, Height: 50},
		},
		"uniform insets": {
			content:  Size{Width: 20, Height: 10},
			insets:   InsetAll(2),
			expected: Size{Width: 24, Height: 14},
		},
		"asymmetric insets": {
			content:  Size{Width: 30, Height: 30},
			insets:   EdgeInsets{Top: 1, Left: 2, Bottom: 3, Right: 4},
			expected: Size{Width: 36, Height: 34},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ws := NewWorkspace()
			n := ws.NewNode(KindBlock)

			// Order must not matter: set insets first, then content.
			n.SetEdgeInsets(tt.insets)
			n.SetContentSize(tt.content)
			if got := n.TotalSize(); got != tt.expected {
				t.Errorf("TotalSize() = %v, want %v", got, tt.expected)
			}

			// And content first, then insets.
			m := ws.NewNode(KindBlock)
			m.SetContentSize(tt.content)
			m.SetEdgeInsets(tt.insets)
			if got := m.TotalSize(); got != tt.expected {
				t.Errorf("TotalSize() after reversed setters = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNode_TotalSizeNeverStale(t *testing.T) {
	ws := NewWorkspace()
	n := ws.NewNode(KindField, WithContentSize(Size{Width: 10, Height: 10}))

	if got := n.TotalSize(); got != (Size{Width: 10, Height: 10}) {
		t.Fatalf("TotalSize() = %v, want 10x10", got)
	}

	n.SetEdgeInsets(InsetAll(1))
	if got := n.TotalSize(); got != (Size{Width: 12, Height: 12}) {
		t.Errorf("TotalSize() after insets = %v, want 12x12", got)
	}

	n.SetContentSize(Size{Width: 4, Height: 6})
	if got := n.TotalSize(); got != (Size{Width: 6, Height: 8}) {
		t.Errorf("TotalSize() after resize = %v, want 6x8", got)
	}
}

func TestNode_SetContentSize_PanicsOnNegative(t *testing.T) {
	ws := NewWorkspace()
	n := ws.NewNode(KindField)

	defer func() {
		if recover() == nil {
			t.Error("SetContentSize with negative width should panic")
		}
	}()
	n.SetContentSize(Size{Width: -1, Height: 5})
}

func TestNode_ViewFrameChangeMarksRepositioning(t *testing.T) {
	ws := NewWorkspace()
	n := ws.NewNode(KindBlock)

	n.setViewFrame(NewRect(1, 2, 3, 4))
	if !n.NeedsRepositioning() {
		t.Fatal("first frame assignment should mark repositioning")
	}

	n.clearChangeFlags()
	n.setViewFrame(NewRect(1, 2, 3, 4))
	if n.NeedsRepositioning() {
		t.Error("unchanged frame should not mark repositioning")
	}

	n.setViewFrame(NewRect(9, 2, 3, 4))
	if !n.NeedsRepositioning() {
		t.Error("moved frame should mark repositioning")
	}
}
