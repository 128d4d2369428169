package enforce

import (
	"github.com/katalvlaran/hypergen/hypergraph"
	"github.com/katalvlaran/hypergen/incidence"
)

// Connected returns the largest incidence component of h, relabeled.
//
// Selection: the component with the most vertex-nodes wins. Components are
// produced in order of their smallest vertex id, and only a strictly larger
// count replaces the current winner, so ties go to the component holding
// the smallest vertex id. Hyperedge-only components (impossible under I2)
// never win against a component with vertices.
//
// Degenerate outcomes (legal, not errors):
//   - empty input → empty output;
//   - no hyperedges at all → a single isolated vertex (the smallest id);
//   - the winner may hold vertices but no hyperedges.
//
// Complexity: O(V + E + Σ|e|) plus the Restrict copy.
func Connected(h *hypergraph.Hypergraph) *hypergraph.Hypergraph {
	comps := incidence.Components(incidence.Build(h))

	best := -1
	for i, c := range comps {
		if best < 0 || len(c.Vertices) > len(comps[best].Vertices) {
			best = i
		}
	}
	if best < 0 {
		out, _ := hypergraph.New(0)
		return out
	}

	out, _ := h.Restrict(comps[best].Vertices, comps[best].Hyperedges) // ids come from h
	return out
}
