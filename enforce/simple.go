package enforce

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/hypergen/hypergraph"
)

// Simple returns a copy of h whose hyperedges form an antichain.
//
// Hyperedge i is discarded iff some distinct hyperedge j contains it and
// either |j| > |i| (strict superset) or j == i as sets with j created first.
//
// Implementation:
//   - Stage 1: encode each hyperedge as a bitset over vertex positions.
//   - Stage 2: for each i, scan candidates j; a candidate with fewer members
//     cannot contain i and is skipped before the superset test.
//   - Stage 3: Restrict to the surviving indices; the vertex set is unchanged.
//
// Complexity: O(E² · V/64) worst case; O(E·V) memory for the bitsets.
func Simple(h *hypergraph.Hypergraph) *hypergraph.Hypergraph {
	vs := h.Vertices()
	es := h.Hyperedges()

	pos := make(map[int]uint, len(vs))
	for i, v := range vs {
		pos[v] = uint(i)
	}
	sets := make([]*bitset.BitSet, len(es))
	for i, e := range es {
		b := bitset.New(uint(len(vs)))
		for _, v := range e {
			b.Set(pos[v])
		}
		sets[i] = b
	}

	keep := make([]int, 0, len(es))
	for i := range es {
		if !dominated(i, es, sets) {
			keep = append(keep, i)
		}
	}

	out, _ := h.Restrict(vs, keep) // ids and indices come from h itself
	return out
}

// dominated reports whether hyperedge i is contained in another hyperedge
// that outranks it (larger, or equal and earlier).
func dominated(i int, es []hypergraph.Hyperedge, sets []*bitset.BitSet) bool {
	for j := range es {
		if j == i || len(es[j]) < len(es[i]) {
			continue
		}
		if !sets[j].IsSuperSet(sets[i]) {
			continue
		}
		if len(es[j]) > len(es[i]) || j < i {
			return true
		}
	}
	return false
}

// IsSimple reports whether the hyperedges of h form an antichain: no hyperedge
// is a subset of, or equal to, another.
func IsSimple(h *hypergraph.Hypergraph) bool {
	es := h.Hyperedges()
	for i := range es {
		for j := range es {
			if i != j && subset(es[i], es[j]) {
				return false
			}
		}
	}
	return true
}

// subset reports a ⊆ b for sorted, duplicate-free hyperedges.
func subset(a, b hypergraph.Hyperedge) bool {
	if len(a) > len(b) {
		return false
	}
	j := 0
	for _, v := range a {
		for j < len(b) && b[j] < v {
			j++
		}
		if j == len(b) || b[j] != v {
			return false
		}
		j++
	}
	return true
}
