package layout

// Kind identifies which node category a layout node belongs to. The set is
// closed: arrangement behavior is dispatched by kind tag, and the
// propagation pass queries per-kind capabilities instead of inspecting
// concrete types.
type Kind uint8

const (
	// KindField is a leaf element rendered inside a block (a label, an
	// input, a dropdown). Fields own their content size.
	KindField Kind = iota
	// KindBlock is a single block, arranging a row of fields.
	KindBlock
	// KindBlockGroup is a purely structural container holding a vertical
	// stack of connected blocks.
	KindBlockGroup
	// KindWorkspace is the tree root. There is exactly one per tree and it
	// is created together with its Workspace.
	KindWorkspace
)

// String returns the kind name for debugging.
func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindBlock:
		return "block"
	case KindBlockGroup:
		return "blockGroup"
	case KindWorkspace:
		return "workspace"
	default:
		return "unknown"
	}
}

// DirectlyRendered reports whether nodes of this kind have a view frame
// computed during coordinate propagation. The workspace root is the
// rendering surface itself; its frame belongs to the view layer, so it is
// treated as a structural container here.
func (k Kind) DirectlyRendered() bool {
	return k != KindWorkspace
}

// IsField reports whether this is the field kind. The propagation pass can
// skip field nodes entirely when the caller knows field frames are already
// current (fields travel with their block during drags).
func (k Kind) IsField() bool {
	return k == KindField
}
