// SPDX-License-Identifier: MIT
// Package: hypergen/generator
//
// impl_random_tree.go - FromRandomTree(total, p).
//
// Model:
//   1. Uniform labeled tree on total nodes from a random Prüfer sequence.
//   2. Random root; BFS level parity splits nodes: even levels → hyperedges,
//      odd levels → vertices. Every tree edge crosses the split.
//   3. Vertices are renamed 0..k-1 by ascending node id; hyperedges follow
//      ascending node id. Hyperedge = renamed tree neighbors of its node.
//   4. Densification and optional simplicity as in FromTree.
//
// The split sizes are random; only their sum is fixed.
//
// Contract:
//   - total ≥ 2 (ErrTooFewVertices); 0 ≤ p ≤ 1; rng required.
//
// Determinism:
//   - Draw order: Prüfer entries (total-2 draws), root, densification.

package generator

import (
	"github.com/katalvlaran/hypergen/enforce"
	"github.com/katalvlaran/hypergen/hypergraph"
)

// FromRandomTree builds a connected hypergraph from a random labeled tree.
func FromRandomTree(total int, p float64, opts ...Option) (*hypergraph.Hypergraph, error) {
	cfg := newGeneratorConfig(opts...)

	if err := validateMin(methodFromRandomTree, "total", total, MinTreeNodes); err != nil {
		return nil, err
	}
	if err := validateProbability(methodFromRandomTree, p); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		return nil, invalidf(methodFromRandomTree, ErrNeedRandSource, "tree construction needs WithSeed or WithRand")
	}
	rng := cfg.rng

	// 1) Tree.
	treeEdges := randomPruferTree(total, rng)
	cfg.emit(StageTree, func() Snapshot { return Snapshot{TreeEdges: cloneEdges(treeEdges)} })

	// 2) Parity split from a random root.
	adj := adjacency(total, treeEdges)
	edgeNodes, vertexNodes := levelParity(adj, rng.Intn(total))
	cfg.emit(StagePartition, func() Snapshot {
		return Snapshot{
			TreeEdges:      cloneEdges(treeEdges),
			VertexNodes:    cloneInts(vertexNodes),
			HyperedgeNodes: cloneInts(edgeNodes),
		}
	})

	// 3) Rename and collect tree neighbors.
	rename := make(map[int]int, len(vertexNodes))
	for id, node := range vertexNodes {
		rename[node] = id
	}
	initial := make([][]int, len(edgeNodes))
	for j, node := range edgeNodes {
		for _, nb := range adj[node] {
			initial[j] = append(initial[j], rename[nb]) // parity: every neighbor is a vertex node
		}
	}
	cfg.emit(StageSampled, func() Snapshot {
		seed, _ := assemble(methodFromRandomTree, len(vertexNodes), initial) // a bad id also fails the assemble below
		return Snapshot{Hypergraph: seed}
	})

	// 4) Densification and optional simplicity.
	final := make([][]int, len(initial))
	for j := range initial {
		final[j] = densify(initial[j], len(vertexNodes), p, rng)
	}
	h, err := assemble(methodFromRandomTree, len(vertexNodes), final)
	if err != nil {
		return nil, err
	}

	out := enforce.Apply(h, cfg.order, cfg.simple, false)
	cfg.emit(StageFinal, func() Snapshot { return snapshotOf(out) })

	return out, nil
}
