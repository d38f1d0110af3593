// Package geometry provides the value types for workspace layout computation.
//
// It defines points, sizes, edge insets, and rectangles in continuous
// (float64) workspace coordinates, plus the total-size derivation rule that
// relates a node's content size and its edge insets. Types are re-exported
// through the root layout package for public consumption.
package geometry
