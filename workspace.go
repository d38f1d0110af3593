package layout

// Workspace is the workspace-level container every node in a tree
// references: it owns the tree's root node, the workspace-to-view
// transform, and the per-session notification scheduler. Create one per UI
// session and discard it with the session.
type Workspace struct {
	root      *Node
	transform ViewTransform
	scheduler *Scheduler
	arrangers map[Kind]Arranger
}

// Option configures a Workspace at creation time.
type Option func(*Workspace)

// WithTransform sets the workspace-to-view coordinate transform. The
// default is the identity transform.
func WithTransform(t ViewTransform) Option {
	return func(w *Workspace) { w.transform = t }
}

// WithScale is shorthand for WithTransform(ScaleTransform(scale)).
func WithScale(scale float64) Option {
	return func(w *Workspace) { w.transform = ScaleTransform(scale) }
}

// WithArranger registers the arrangement algorithm for a node kind.
func WithArranger(k Kind, a Arranger) Option {
	return func(w *Workspace) { w.arrangers[k] = a }
}

// WithStockArrangers registers the stock arrangers for all four kinds:
// field pass-through, block field rows, block-group vertical stacking, and
// free workspace positioning.
func WithStockArrangers() Option {
	return func(w *Workspace) {
		w.arrangers[KindField] = FieldArranger{}
		w.arrangers[KindBlock] = BlockArranger{}
		w.arrangers[KindBlockGroup] = BlockGroupArranger{}
		w.arrangers[KindWorkspace] = WorkspaceArranger{}
	}
}

// NewWorkspace creates a workspace with a fresh scheduler and an attached
// root node of KindWorkspace.
func NewWorkspace(opts ...Option) *Workspace {
	w := &Workspace{
		transform: IdentityTransform(),
		scheduler: NewScheduler(),
		arrangers: make(map[Kind]Arranger),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.root = newNode(w, KindWorkspace)
	return w
}

// Root returns the tree's root node.
func (w *Workspace) Root() *Node {
	return w.root
}

// Scheduler returns the workspace's notification scheduler. The embedding
// UI session flushes it once per update cycle.
func (w *Workspace) Scheduler() *Scheduler {
	return w.scheduler
}

// Transform returns the workspace-to-view transform.
func (w *Workspace) Transform() ViewTransform {
	return w.transform
}

// SetTransform replaces the workspace-to-view transform. Frames computed
// under the old transform remain until the next propagation pass.
func (w *Workspace) SetTransform(t ViewTransform) {
	w.transform = t
}

// RegisterArranger sets the arrangement algorithm used for nodes of kind k.
func (w *Workspace) RegisterArranger(k Kind, a Arranger) {
	w.arrangers[k] = a
}

// arrangerFor returns the arranger registered for k, or nil.
func (w *Workspace) arrangerFor(k Kind) Arranger {
	return w.arrangers[k]
}

// NewNode creates a detached node of the given kind bound to this
// workspace. The workspace root is created with the workspace itself;
// requesting another KindWorkspace node panics.
func (w *Workspace) NewNode(kind Kind, opts ...NodeOption) *Node {
	if kind == KindWorkspace {
		panic("layout: the workspace root is created with the workspace")
	}
	return newNode(w, kind, opts...)
}
