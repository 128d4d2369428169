package generator

import (
	"github.com/katalvlaran/hypergen/hypergraph"
)

// Stage names a point in a generator run at which a trace is emitted.
type Stage int

const (
	// StageTree follows spanning tree construction (tree methods).
	StageTree Stage = iota
	// StagePartition follows the vertex/hyperedge role assignment (tree methods).
	StagePartition
	// StageSampled follows sampling (FromScratch) or tree-derived hyperedges
	// before densification (tree methods).
	StageSampled
	// StageFinal carries the hypergraph about to be returned.
	StageFinal
)

// String returns a lower-case stage label.
func (s Stage) String() string {
	switch s {
	case StageTree:
		return "tree"
	case StagePartition:
		return "partition"
	case StageSampled:
		return "sampled"
	case StageFinal:
		return "final"
	default:
		return "unknown"
	}
}

// Snapshot is what a TraceFunc sees. Fields irrelevant to a stage are nil.
// All slices and the hypergraph are copies owned by the observer.
type Snapshot struct {
	// TreeEdges lists spanning tree edges as node pairs.
	TreeEdges [][2]int
	// VertexNodes lists tree nodes playing the vertex role; index = vertex id.
	VertexNodes []int
	// HyperedgeNodes lists tree nodes playing the hyperedge role; index = hyperedge index.
	HyperedgeNodes []int
	// Hypergraph is the current hypergraph.
	Hypergraph *hypergraph.Hypergraph
}

// TraceFunc observes a generator run. It must not retain the rng.
type TraceFunc func(stage Stage, snap Snapshot)

func cloneEdges(es [][2]int) [][2]int {
	out := make([][2]int, len(es))
	copy(out, es)
	return out
}

func cloneInts(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	return out
}

// snapshotOf copies h so the observer cannot alias generator state.
func snapshotOf(h *hypergraph.Hypergraph) Snapshot {
	return Snapshot{Hypergraph: h.Relabel()}
}
