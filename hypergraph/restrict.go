package hypergraph

import (
	"fmt"
	"sort"
)

// Restrict returns a new hypergraph holding only keepVertices and the
// hyperedges at indices keepHyperedges, with vertex ids relabeled to the
// contiguous range 0..k-1.
//
// Implementation:
//   - Stage 1: validate that every kept vertex exists and every index is in range.
//   - Stage 2: rank kept vertices ascending; rank i becomes the new id i, so the
//     relative order of the original ids is preserved.
//   - Stage 3: copy the kept hyperedges in their original creation order (indices
//     are deduplicated and sorted), mapping members through the ranking. Members
//     outside keepVertices are dropped; a hyperedge left empty is dropped too,
//     which keeps I2.
//
// The receiver is never modified.
//
// Errors:
//   - ErrVertexNotFound: a kept vertex is not in the receiver.
//   - ErrHyperedgeNotFound: an index is out of range.
//
// Complexity: O(V log V + Σk).
func (h *Hypergraph) Restrict(keepVertices, keepHyperedges []int) (*Hypergraph, error) {
	kv := make([]int, 0, len(keepVertices))
	seen := make(map[int]struct{}, len(keepVertices))
	for _, v := range keepVertices {
		if _, ok := h.member[v]; !ok {
			return nil, fmt.Errorf("Restrict: vertex %d: %w", v, ErrVertexNotFound)
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		kv = append(kv, v)
	}
	sort.Ints(kv)

	ke := make([]int, len(keepHyperedges))
	copy(ke, keepHyperedges)
	sort.Ints(ke)
	for _, i := range ke {
		if i < 0 || i >= len(h.edges) {
			return nil, fmt.Errorf("Restrict: hyperedge %d of %d: %w", i, len(h.edges), ErrHyperedgeNotFound)
		}
	}

	rank := make(map[int]int, len(kv))
	for i, v := range kv {
		rank[v] = i
	}
	out, _ := New(len(kv)) // len(kv) >= 0

	last := -1
	for _, i := range ke {
		if i == last {
			continue
		}
		last = i
		mapped := make(Hyperedge, 0, len(h.edges[i]))
		for _, v := range h.edges[i] {
			if r, ok := rank[v]; ok {
				mapped = append(mapped, r)
			}
		}
		if len(mapped) == 0 {
			continue
		}
		// ranking is monotone, so mapped is already sorted and duplicate-free
		out.edges = append(out.edges, mapped)
	}

	return out, nil
}

// Relabel returns a copy whose vertex ids are compacted to 0..V-1, keeping
// every vertex and hyperedge.
func (h *Hypergraph) Relabel() *Hypergraph {
	all := make([]int, len(h.edges))
	for i := range all {
		all[i] = i
	}
	out, _ := h.Restrict(h.vertices, all) // every id and index is valid by construction
	return out
}
