package incidence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypergen/hypergraph"
)

// TestWalk_SharedVisited: a second walk over a shared slice skips what the
// first one claimed, and a mis-sized slice is rejected.
func TestWalk_SharedVisited(t *testing.T) {
	t.Parallel()

	h, err := hypergraph.New(4)
	require.NoError(t, err)
	_, err = h.AddHyperedge(0, 1)
	require.NoError(t, err)
	_, err = h.AddHyperedge(2, 3)
	require.NoError(t, err)
	g := Build(h)

	visited := make([]bool, g.NumNodes())
	first, err := Walk(g, 0, withVisited(visited))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 1}, first.Order)

	second, err := Walk(g, 2, withVisited(visited))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 3}, second.Order)
	for node, seen := range visited {
		assert.True(t, seen, "node %d", node)
	}

	_, err = Walk(g, 0, withVisited(make([]bool, 2)))
	assert.ErrorIs(t, err, ErrOptionViolation)
}
