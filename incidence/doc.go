// Package incidence models the bipartite incidence structure of a hypergraph
// and walks it breadth-first.
//
// What
//
//   - One node per vertex and one node per hyperedge; an edge joins a
//     vertex-node and a hyperedge-node iff the vertex belongs to the hyperedge.
//   - Node numbering is dense: vertex at position i in Vertices() is node i,
//     hyperedge j is node V+j. Adjacency lists are ascending, so every walk
//     is reproducible.
//   - Walk runs BFS from one node with optional hooks (OnVisit), a node
//     filter and a context.
//   - Components partitions all nodes into connected components, ordered by
//     their smallest node. It is a sequence of Walks over one visited slice,
//     collecting nodes through the OnVisit hook.
//   - WithFilterNode is for callers that walk a pruned structure (say, with
//     one hyperedge removed); the finishing passes do not need it.
//   - IsConnected checks invariant I4 on a hypergraph directly.
//
// Why
//
//	Connectivity of a hypergraph is defined on this structure, not on the
//	vertex set alone: an isolated vertex is its own component, and so is a
//	hyperedge that shares no vertex with the rest.
//
// Complexity (V vertices, E hyperedges, S = Σ|e|)
//
//   - Build: O(V + E + S) time and memory.
//   - Walk, Components: O(V + E + S).
//
// Errors
//
//   - ErrGraphNil         nil *Graph.
//   - ErrStartNotFound    start node outside [0, NumNodes).
//   - ErrOptionViolation  invalid Option (recorded, surfaced by Walk).
//   - Wrapped OnVisit hook errors.
package incidence
