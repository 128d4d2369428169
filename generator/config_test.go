package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEmit_BuildsSnapshotsOnlyWhenTraced: without WithTrace the snapshot
// builder is never invoked.
func TestEmit_BuildsSnapshotsOnlyWhenTraced(t *testing.T) {
	t.Parallel()

	built := 0
	snap := func() Snapshot {
		built++
		return Snapshot{}
	}

	cfg := newGeneratorConfig(WithSeed(1))
	assert.Nil(t, cfg.trace)
	for _, s := range []Stage{StageTree, StagePartition, StageSampled, StageFinal} {
		cfg.emit(s, snap)
	}
	assert.Equal(t, 0, built)

	var seen []Stage
	cfg = newGeneratorConfig(WithTrace(func(s Stage, _ Snapshot) { seen = append(seen, s) }))
	cfg.emit(StageSampled, snap)
	cfg.emit(StageFinal, snap)
	assert.Equal(t, 2, built)
	assert.Equal(t, []Stage{StageSampled, StageFinal}, seen)
}

// TestFromTree_TraceStages: every stage is reported once, in order, and the
// pre-densification hypergraph equals the result when p=0.
func TestFromTree_TraceStages(t *testing.T) {
	t.Parallel()

	var stages []Stage
	var sampled Snapshot
	h, err := FromTree(4, 3, 0, WithSeed(9), WithTrace(func(s Stage, snap Snapshot) {
		stages = append(stages, s)
		if s == StageSampled {
			sampled = snap
		}
	}))
	assert.NoError(t, err)
	assert.Equal(t, []Stage{StageTree, StagePartition, StageSampled, StageFinal}, stages)
	if assert.NotNil(t, sampled.Hypergraph) {
		assert.True(t, sampled.Hypergraph.Equal(h))
	}
}
