// Package generator samples random hypergraphs.
//
// Three entry points share one option set:
//
//   - FromScratch(n, m, p): m Bernoulli(p) trial sets over {0..n-1}; empty
//     sets are discarded; optional simplicity and connectivity passes.
//   - FromTree(a, b, p): a uniform random spanning tree of K_{a,b} gives every
//     one of the b hyperedges at least one of the a vertices and makes the
//     incidence structure connected by construction; then each hyperedge is
//     densified with Bernoulli(p) extra members.
//   - FromRandomTree(total, p): a uniform labeled tree on total nodes (Prüfer
//     decoding) is split by BFS level parity from a random root; even levels
//     become hyperedges, odd levels vertices; then densification as above.
//
// Options
//
//   - WithSeed / WithRand      randomness source (required for stochastic paths).
//   - WithSimple(true)         run enforce.Simple on the result.
//   - WithConnected(true)      run enforce.Connected (FromScratch only; tree
//     methods are connected already).
//   - WithOrder(o)             order of the two passes.
//   - WithTrace(fn)            observe intermediate stages (tree, partition,
//     sampled, final). Tracing never draws randomness.
//
// Determinism
//
//	Draw order is fixed and documented per method, so the same seed and
//	parameters always yield the same hyperedge sequence. A *rand.Rand is not
//	safe for concurrent use; give each goroutine its own.
//
// Errors
//
//	Every validation failure wraps ErrInvalidParameter together with a more
//	specific sentinel (ErrTooFewVertices, ErrNegativeCount,
//	ErrInvalidProbability, ErrNeedRandSource). Validation runs before any
//	sampling. Small or empty results are not errors.
package generator
