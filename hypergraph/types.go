package hypergraph

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for hypergraph construction.
var (
	// ErrNegativeSize indicates New was asked for a negative vertex universe.
	ErrNegativeSize = errors.New("hypergraph: negative vertex count")

	// ErrNegativeVertex indicates a vertex id below zero.
	ErrNegativeVertex = errors.New("hypergraph: negative vertex id")

	// ErrVertexNotFound indicates a hyperedge referenced a vertex outside the vertex set (I1).
	ErrVertexNotFound = errors.New("hypergraph: vertex not found")

	// ErrEmptyHyperedge indicates an attempt to insert an empty hyperedge (I2).
	ErrEmptyHyperedge = errors.New("hypergraph: empty hyperedge")

	// ErrHyperedgeNotFound indicates a hyperedge index outside [0, NumHyperedges).
	ErrHyperedgeNotFound = errors.New("hypergraph: hyperedge not found")
)

// Hyperedge is a set of vertex ids kept sorted ascending without duplicates.
type Hyperedge []int

// Len returns the number of member vertices.
func (e Hyperedge) Len() int { return len(e) }

// Contains reports whether v is a member. O(log k).
func (e Hyperedge) Contains(v int) bool {
	i := sort.SearchInts(e, v)
	return i < len(e) && e[i] == v
}

// Clone returns an independent copy.
func (e Hyperedge) Clone() Hyperedge {
	out := make(Hyperedge, len(e))
	copy(out, e)
	return out
}

// String renders the hyperedge in the .dat line format: "0 2 5".
func (e Hyperedge) String() string {
	var sb strings.Builder
	for i, v := range e {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// Hypergraph is a vertex set paired with an ordered sequence of hyperedges.
//
// vertices is kept sorted ascending; member is its lookup index.
type Hypergraph struct {
	vertices []int
	member   map[int]struct{}
	edges    []Hyperedge
}

// New creates an empty hypergraph over the vertex universe {0,…,n-1}.
// n == 0 is allowed and yields a hypergraph with no vertices.
// Complexity: O(n).
func New(n int) (*Hypergraph, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	h := &Hypergraph{
		vertices: make([]int, n),
		member:   make(map[int]struct{}, n),
	}
	for v := 0; v < n; v++ {
		h.vertices[v] = v
		h.member[v] = struct{}{}
	}

	return h, nil
}

// FromVertices creates an empty hypergraph over an arbitrary set of
// non-negative ids. Duplicates collapse; the result need not be contiguous.
// Complexity: O(V log V).
func FromVertices(ids []int) (*Hypergraph, error) {
	h := &Hypergraph{member: make(map[int]struct{}, len(ids))}
	for _, v := range ids {
		if v < 0 {
			return nil, ErrNegativeVertex
		}
		if _, ok := h.member[v]; ok {
			continue
		}
		h.member[v] = struct{}{}
		h.vertices = append(h.vertices, v)
	}
	sort.Ints(h.vertices)

	return h, nil
}
