package hypergraph

import (
	"fmt"
	"sort"
	"strings"
)

// AddHyperedge inserts the set {ids...} as a new hyperedge and returns its index.
//
// Implementation:
//   - Stage 1: reject an empty argument list (I2).
//   - Stage 2: verify every id is a vertex (I1); nothing is stored on failure.
//   - Stage 3: sort and collapse duplicates, then append in creation order.
//
// Errors:
//   - ErrEmptyHyperedge: len(ids) == 0.
//   - ErrVertexNotFound: some id is not a vertex.
//
// Complexity: O(k log k) for k = len(ids).
func (h *Hypergraph) AddHyperedge(ids ...int) (int, error) {
	if len(ids) == 0 {
		return -1, ErrEmptyHyperedge
	}
	for _, v := range ids {
		if _, ok := h.member[v]; !ok {
			return -1, fmt.Errorf("AddHyperedge: vertex %d: %w", v, ErrVertexNotFound)
		}
	}

	e := make(Hyperedge, len(ids))
	copy(e, ids)
	sort.Ints(e)
	// in-place dedup over the sorted slice
	w := 1
	for r := 1; r < len(e); r++ {
		if e[r] != e[w-1] {
			e[w] = e[r]
			w++
		}
	}
	h.edges = append(h.edges, e[:w])

	return len(h.edges) - 1, nil
}

// Vertices returns a copy of the vertex ids in ascending order.
func (h *Hypergraph) Vertices() []int {
	out := make([]int, len(h.vertices))
	copy(out, h.vertices)
	return out
}

// Hyperedges returns deep copies of all hyperedges in creation order.
func (h *Hypergraph) Hyperedges() []Hyperedge {
	out := make([]Hyperedge, len(h.edges))
	for i, e := range h.edges {
		out[i] = e.Clone()
	}
	return out
}

// Hyperedge returns a copy of the i-th hyperedge.
func (h *Hypergraph) Hyperedge(i int) (Hyperedge, error) {
	if i < 0 || i >= len(h.edges) {
		return nil, fmt.Errorf("Hyperedge: index %d of %d: %w", i, len(h.edges), ErrHyperedgeNotFound)
	}
	return h.edges[i].Clone(), nil
}

// NumVertices returns |vertices|.
func (h *Hypergraph) NumVertices() int { return len(h.vertices) }

// NumHyperedges returns the number of hyperedges.
func (h *Hypergraph) NumHyperedges() int { return len(h.edges) }

// HasVertex reports whether v is in the vertex set.
func (h *Hypergraph) HasVertex(v int) bool {
	_, ok := h.member[v]
	return ok
}

// Degree returns the number of hyperedges containing v (0 for unknown ids).
// Complexity: O(E log k).
func (h *Hypergraph) Degree(v int) int {
	d := 0
	for _, e := range h.edges {
		if e.Contains(v) {
			d++
		}
	}
	return d
}

// IsContiguous reports whether the vertex set is exactly {0,…,V-1}.
func (h *Hypergraph) IsContiguous() bool {
	for i, v := range h.vertices {
		if v != i {
			return false
		}
	}
	return true
}

// Equal reports whether both hypergraphs have the same vertex set and the
// same hyperedge sequence (order included).
func (h *Hypergraph) Equal(other *Hypergraph) bool {
	if h == nil || other == nil {
		return h == other
	}
	if len(h.vertices) != len(other.vertices) || len(h.edges) != len(other.edges) {
		return false
	}
	for i := range h.vertices {
		if h.vertices[i] != other.vertices[i] {
			return false
		}
	}
	for i := range h.edges {
		a, b := h.edges[i], other.edges[i]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

// String renders a compact summary followed by one hyperedge per line.
func (h *Hypergraph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hypergraph(V=%d, E=%d)", len(h.vertices), len(h.edges))
	for _, e := range h.edges {
		sb.WriteString("\n  {")
		sb.WriteString(e.String())
		sb.WriteByte('}')
	}
	return sb.String()
}
