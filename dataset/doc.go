// SPDX-License-Identifier: MIT
// Package: hypergen/dataset

// Package dataset sweeps the edge probability p over a grid and writes a
// batch of random hypergraphs per grid point, the layout used for
// benchmarking hypergraph algorithms:
//
//	<root>/p_0.05/0_nodes_17_hyperedges_31_p_0.05_from_scratch.dat
//	<root>/p_0.05/0_nodes_17_hyperedges_31_p_0.05_from_scratch_id.yaml
//	...
//
// Every instance draws from its own rng, seeded from (Seed, p index,
// instance index), so the files on disk do not depend on Workers or on
// goroutine scheduling.
package dataset
