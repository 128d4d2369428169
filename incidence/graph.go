package incidence

import (
	"github.com/katalvlaran/hypergen/hypergraph"
)

// Graph is the bipartite incidence structure of one hypergraph snapshot.
type Graph struct {
	vertexIDs []int   // node i (i < V) → vertex id
	numEdges  int     // E
	adj       [][]int // node → neighbor nodes, ascending
}

// Build constructs the incidence structure of h.
//
// Implementation:
//   - Stage 1: map vertex ids to dense positions 0..V-1.
//   - Stage 2: for hyperedge j (node V+j) and each member v, link both ways.
//     Hyperedges are visited in creation order and members ascending, so
//     vertex-node lists come out ascending; hyperedge-node lists are ascending
//     because members are.
//
// Complexity: O(V + E + Σ|e|).
func Build(h *hypergraph.Hypergraph) *Graph {
	vs := h.Vertices()
	es := h.Hyperedges()
	nv := len(vs)

	pos := make(map[int]int, nv)
	for i, v := range vs {
		pos[v] = i
	}

	g := &Graph{
		vertexIDs: vs,
		numEdges:  len(es),
		adj:       make([][]int, nv+len(es)),
	}
	for j, e := range es {
		en := nv + j
		g.adj[en] = make([]int, 0, len(e))
		for _, v := range e {
			vn := pos[v] // I1 guarantees presence
			g.adj[en] = append(g.adj[en], vn)
			g.adj[vn] = append(g.adj[vn], en)
		}
	}

	return g
}

// NumNodes returns V + E.
func (g *Graph) NumNodes() int { return len(g.adj) }

// NumVertexNodes returns V.
func (g *Graph) NumVertexNodes() int { return len(g.vertexIDs) }

// NumHyperedgeNodes returns E.
func (g *Graph) NumHyperedgeNodes() int { return g.numEdges }

// VertexNode returns the node number of the vertex at position i.
func (g *Graph) VertexNode(i int) int { return i }

// EdgeNode returns the node number of hyperedge j.
func (g *Graph) EdgeNode(j int) int { return len(g.vertexIDs) + j }

// IsVertexNode reports whether node stands for a vertex.
func (g *Graph) IsVertexNode(node int) bool { return node >= 0 && node < len(g.vertexIDs) }

// VertexID returns the hypergraph vertex id behind a vertex-node.
func (g *Graph) VertexID(node int) int { return g.vertexIDs[node] }

// EdgeIndex returns the hyperedge index behind a hyperedge-node.
func (g *Graph) EdgeIndex(node int) int { return node - len(g.vertexIDs) }

// Neighbors returns a copy of the neighbors of node, ascending.
func (g *Graph) Neighbors(node int) []int {
	out := make([]int, len(g.adj[node]))
	copy(out, g.adj[node])
	return out
}
