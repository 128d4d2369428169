// Package hypergraph defines the Hypergraph data model shared by every
// generator in hypergen: a vertex set of non-negative integer identifiers
// paired with an ordered sequence of hyperedges.
//
// What
//
//   - Vertices are plain ints. A freshly created hypergraph owns the universe
//     {0,…,n-1}; mid-construction sets may be sparse (FromVertices).
//   - A Hyperedge is a non-empty set of vertex ids, stored sorted ascending
//     with duplicates collapsed.
//   - Hyperedges keep their creation order. Order carries no meaning but is
//     preserved so that seeded generation yields byte-identical output.
//
// Invariants (enforced on every mutation)
//
//   - I1: every id inside a hyperedge is a member of the vertex set
//     (AddHyperedge returns ErrVertexNotFound otherwise).
//   - I2: no hyperedge is empty (AddHyperedge returns ErrEmptyHyperedge).
//
// Simplicity (antichain) and connectivity are optional finishing properties;
// they live in package enforce.
//
// Lifecycle
//
//	A Hypergraph is built once, inside a single generator call. Restrict
//	produces a new, relabeled Hypergraph and never mutates its receiver.
//	After a generator returns, the value is read-only and owned by the
//	caller. The type carries no locks: concurrent readers are safe, a
//	concurrent writer is not.
//
// Complexity (V = |vertices|, E = |hyperedges|, k = hyperedge size)
//
//   - AddHyperedge: O(k log k).
//   - Vertices/Hyperedges: O(V) / O(Σk) copies.
//   - Restrict: O(V + Σk).
package hypergraph
