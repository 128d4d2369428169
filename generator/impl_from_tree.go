// SPDX-License-Identifier: MIT
// Package: hypergen/generator
//
// impl_from_tree.go - FromTree(a, b, p).
//
// Model:
//   1. Uniform spanning tree of K_{a,b} (Aldous–Broder walk): tree nodes 0..a-1
//      play the vertex role (vertex id = node id), nodes a..a+b-1 the hyperedge role
//      (hyperedge j = node a+j). Every tree edge joins the two roles.
//   2. Hyperedge j starts as the set of tree neighbors of node a+j. A spanning
//      tree touches every node, so this set is never empty; it may be a single vertex.
//   3. Densification: every vertex not yet in hyperedge j joins with probability p.
//   4. Optional enforce.Simple. Dropping a hyperedge contained in another keeps
//      the incidence structure connected.
//
// Connectivity holds for every seed: the tree edges are incidence edges and
// the tree spans all a+b nodes.
//
// Contract:
//   - a ≥ 1, b ≥ 1 (ErrTooFewVertices); 0 ≤ p ≤ 1 (ErrInvalidProbability);
//     rng required (ErrNeedRandSource) since the tree is always random.
//
// Complexity:
//   - Tree: expected O((a+b)·log(a+b)) draws. Densification: O(a·b) draws.
//
// Determinism:
//   - Draw order: walk start, walk steps, then densification (hyperedge j asc,
//     vertex v asc, non-members only).

package generator

import (
	"fmt"

	"github.com/katalvlaran/hypergen/enforce"
	"github.com/katalvlaran/hypergen/hypergraph"
)

// FromTree builds a connected hypergraph with a vertices and b hyperedges.
func FromTree(a, b int, p float64, opts ...Option) (*hypergraph.Hypergraph, error) {
	cfg := newGeneratorConfig(opts...)

	if err := validateMin(methodFromTree, "a", a, MinPartition); err != nil {
		return nil, err
	}
	if err := validateMin(methodFromTree, "b", b, MinPartition); err != nil {
		return nil, err
	}
	if err := validateProbability(methodFromTree, p); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		return nil, invalidf(methodFromTree, ErrNeedRandSource, "tree construction needs WithSeed or WithRand")
	}
	rng := cfg.rng

	// 1) Spanning tree over both roles.
	treeEdges := bipartiteSpanningTree(a, b, rng)
	cfg.emit(StageTree, func() Snapshot { return Snapshot{TreeEdges: cloneEdges(treeEdges)} })

	// 2) Role assignment is positional: the tree is uniform over K_{a,b}, so
	//    labels carry no bias.
	vertexNodes := make([]int, a)
	for v := range vertexNodes {
		vertexNodes[v] = v
	}
	edgeNodes := make([]int, b)
	for j := range edgeNodes {
		edgeNodes[j] = a + j
	}
	cfg.emit(StagePartition, func() Snapshot {
		return Snapshot{
			TreeEdges:      cloneEdges(treeEdges),
			VertexNodes:    cloneInts(vertexNodes),
			HyperedgeNodes: cloneInts(edgeNodes),
		}
	})

	// 3) Tree-derived membership.
	initial := make([][]int, b)
	for _, e := range treeEdges {
		initial[e[1]-a] = append(initial[e[1]-a], e[0])
	}
	cfg.emit(StageSampled, func() Snapshot {
		seed, _ := assemble(methodFromTree, a, initial) // a bad id also fails the assemble below
		return Snapshot{Hypergraph: seed}
	})

	// 4) Densification.
	final := make([][]int, b)
	for j := range initial {
		final[j] = densify(initial[j], a, p, rng)
	}
	h, err := assemble(methodFromTree, a, final)
	if err != nil {
		return nil, err
	}

	out := enforce.Apply(h, cfg.order, cfg.simple, false)
	cfg.emit(StageFinal, func() Snapshot { return snapshotOf(out) })

	return out, nil
}

// assemble turns membership lists into a hypergraph over {0..n-1}.
func assemble(method string, n int, edges [][]int) (*hypergraph.Hypergraph, error) {
	h, err := hypergraph.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	for j, members := range edges {
		if _, err := h.AddHyperedge(members...); err != nil {
			return nil, fmt.Errorf("%s: AddHyperedge(#%d): %w", method, j, err)
		}
	}
	return h, nil
}
