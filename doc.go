// Package layout implements the layout-computation core of a hierarchical
// block-workspace node tree.
//
// Users import this single package for the complete public API: the node
// tree, geometry value types, the two relayout directions, the coordinate
// propagation pass, and the change-notification scheduler.
package layout
