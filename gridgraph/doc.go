// Package gridgraph treats a fixed-size rectangular grid as an implicit,
// unweighted graph: every cell is a vertex and edges join 4-adjacent cells.
//
// What:
//
//   - Coordinate is a comparable (Row, Col) value used as vertex identity.
//   - Grid holds only the bounds; vertices and edges are generated on demand.
//   - Index/CoordinateAt pack a coordinate into row*Cols+col for slice-backed
//     bookkeeping (visited flags, parents, scores).
//   - Offsets4 fixes the neighbor order right, down, left, up; ReverseOffsets4
//     is the order a stack-based walker pushes in to get the same priority.
//   - ConnectedComponents and Connected answer reachability under an optional
//     EdgeFilter.
//
// Why:
//
//   - Search algorithms share one definition of bounds and adjacency, so their
//     traces are comparable step for step.
//   - Packed keys give O(1) lookups without hashing formatted strings.
//
// Complexity:
//
//   - InBounds, Index, CoordinateAt, Manhattan: O(1).
//   - ConnectedComponents: O(R×C×4) time, O(R×C) memory.
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols is not positive.
//   - ErrOutOfBounds: a coordinate lies outside [0,Rows)×[0,Cols).
//   - ErrSameEndpoints: start and end are the same cell.
package gridgraph
