// Package hypergen generates random hypergraphs for benchmarking hypergraph
// algorithms.
//
// What is in the box?
//
//	• hypergraph/ : the data model (vertex set + ordered, sorted hyperedges)
//	• incidence/  : the bipartite incidence structure, BFS walks, components
//	• enforce/    : simplicity (antichain) and connectivity finishing passes
//	• generator/  : FromScratch (Bernoulli sampling), FromTree (spanning tree
//	                of K_{a,b}, connected by construction), FromRandomTree
//	• datfile/    : the flat ".dat" format, one hyperedge per line
//	• dataset/    : a probability sweep writing batches with YAML id cards
//	• metrics/    : Prometheus counters, dumpable to a textfile
//	• config/     : viper-backed settings (file, HYPERGEN_* env, flags)
//	• cmd/hypergen: the CLI (generate, dataset)
//
// Quick start:
//
//	h, err := generator.FromScratch(20, 30, 0.2,
//		generator.WithSeed(42),
//		generator.WithSimple(true),
//		generator.WithConnected(true),
//	)
//	if err != nil { /* errors.Is(err, generator.ErrInvalidParameter) */ }
//	_ = datfile.WriteFile(afero.NewOsFs(), "out/h.dat", h)
//
// Every generator is deterministic given its rng: the same seed and the same
// arguments produce the same hypergraph.
package hypergen
