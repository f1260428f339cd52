// Package gridgraph lays a rectangular matrix of cell values over the grid
// map, so worlds can be drawn as text instead of listed edge by edge.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int with a LandThreshold and an Origin.
//   - ParseRows reads text rows: digits are land costs, '.' is void, 'x' an obstacle.
//   - ToGraph joins adjacent land cells; edges into obstacles are blocked.
//   - ConnectedComponents lists the islands an explorer could fully map.
//
// Orientation: row 0 is the northmost line and Origin is the bottom-left
// cell, so
//
//	1x
//	12
//
// with Origin (0,0) puts the '2' at (1,0) and the obstacle at (1,1).
//
// Complexity:
//
//   - ToGraph:             O(W×H), Memory: O(W×H).
//   - ConnectedComponents: O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadThreshold: LandThreshold below 1.
//   - ErrBadCell: ParseRows met an unknown character.
package gridgraph
