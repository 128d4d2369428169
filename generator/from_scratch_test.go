package generator_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/hypergen/enforce"
	"github.com/katalvlaran/hypergen/generator"
	"github.com/katalvlaran/hypergen/hypergraph"
	"github.com/katalvlaran/hypergen/incidence"
)

// TestFromScratch_Scenarios pins the concrete cases from the model description.
func TestFromScratch_Scenarios(t *testing.T) {
	t.Parallel()

	full := hypergraph.Hyperedge{0, 1, 2, 3}

	tests := []struct {
		name  string
		n, m  int
		p     float64
		opts  []generator.Option
		wantV int
		want  []hypergraph.Hyperedge
	}{
		{
			name: "p=1 plain", n: 4, m: 3, p: 1,
			opts:  []generator.Option{generator.WithSeed(1)},
			wantV: 4, want: []hypergraph.Hyperedge{full, full, full},
		},
		{
			name: "p=1 plain without rng", n: 4, m: 3, p: 1,
			wantV: 4, want: []hypergraph.Hyperedge{full, full, full},
		},
		{
			name: "p=1 simple", n: 4, m: 3, p: 1,
			opts:  []generator.Option{generator.WithSeed(1), generator.WithSimple(true)},
			wantV: 4, want: []hypergraph.Hyperedge{full},
		},
		{
			name: "p=1 simple and connected", n: 4, m: 3, p: 1,
			opts:  []generator.Option{generator.WithSeed(1), generator.WithSimple(true), generator.WithConnected(true)},
			wantV: 4, want: []hypergraph.Hyperedge{full},
		},
		{
			name: "p=0 yields no hyperedges", n: 4, m: 10, p: 0,
			opts:  []generator.Option{generator.WithSeed(1)},
			wantV: 4,
		},
		{
			name: "m=0 isolated vertices", n: 5, m: 0, p: 0.5,
			opts:  []generator.Option{generator.WithSeed(1)},
			wantV: 5,
		},
		{
			name: "m=0 connected keeps a single vertex", n: 5, m: 0, p: 0.5,
			opts:  []generator.Option{generator.WithSeed(1), generator.WithConnected(true)},
			wantV: 1,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h, err := generator.FromScratch(tc.n, tc.m, tc.p, tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, h.NumVertices())
			if tc.want == nil {
				assert.Equal(t, 0, h.NumHyperedges())
			} else {
				assert.Equal(t, tc.want, h.Hyperedges())
			}
		})
	}
}

// TestFromScratch_Validation checks fail-fast parameter errors.
func TestFromScratch_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n, m int
		p    float64
		opts []generator.Option
		want error
	}{
		{name: "n=0", n: 0, m: 1, p: 0.5, opts: []generator.Option{generator.WithSeed(1)}, want: generator.ErrTooFewVertices},
		{name: "m<0", n: 3, m: -1, p: 0.5, opts: []generator.Option{generator.WithSeed(1)}, want: generator.ErrNegativeCount},
		{name: "p>1", n: 3, m: 1, p: 1.5, opts: []generator.Option{generator.WithSeed(1)}, want: generator.ErrInvalidProbability},
		{name: "p<0", n: 3, m: 1, p: -0.1, opts: []generator.Option{generator.WithSeed(1)}, want: generator.ErrInvalidProbability},
		{name: "p NaN", n: 3, m: 1, p: math.NaN(), opts: []generator.Option{generator.WithSeed(1)}, want: generator.ErrInvalidProbability},
		{name: "no rng", n: 3, m: 1, p: 0.5, want: generator.ErrNeedRandSource},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h, err := generator.FromScratch(tc.n, tc.m, tc.p, tc.opts...)
			assert.Nil(t, h)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, generator.ErrInvalidParameter)
		})
	}
}

// TestFromScratch_ValidationDoesNotDraw: a rejected call leaves the rng untouched.
func TestFromScratch_ValidationDoesNotDraw(t *testing.T) {
	t.Parallel()

	a := rand.New(rand.NewSource(5))
	b := rand.New(rand.NewSource(5))
	_, err := generator.FromScratch(0, 3, 0.5, generator.WithRand(a))
	require.Error(t, err)
	assert.Equal(t, b.Int63(), a.Int63())
}

// TestFromScratch_Deterministic: identical seeds give identical sequences.
func TestFromScratch_Deterministic(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{1, 2, 42, 1 << 40} {
		a, err := generator.FromScratch(12, 20, 0.3, generator.WithSeed(seed), generator.WithSimple(true), generator.WithConnected(true))
		require.NoError(t, err)
		b, err := generator.FromScratch(12, 20, 0.3, generator.WithSeed(seed), generator.WithSimple(true), generator.WithConnected(true))
		require.NoError(t, err)
		assert.True(t, a.Equal(b), "seed %d", seed)
	}
}

// TestFromScratch_DrawOrder replays the documented draw order by hand.
func TestFromScratch_DrawOrder(t *testing.T) {
	t.Parallel()

	const n, m, p, seed = 5, 4, 0.4, 99
	replay := rand.New(rand.NewSource(seed))
	var want []hypergraph.Hyperedge
	for i := 0; i < m; i++ {
		var e hypergraph.Hyperedge
		for v := 0; v < n; v++ {
			if replay.Float64() < p {
				e = append(e, v)
			}
		}
		if len(e) > 0 {
			want = append(want, e)
		}
	}

	h, err := generator.FromScratch(n, m, p, generator.WithSeed(seed))
	require.NoError(t, err)
	if want == nil {
		assert.Equal(t, 0, h.NumHyperedges())
	} else {
		assert.Equal(t, want, h.Hyperedges())
	}
}

// TestFromScratch_TraceIsPassive: tracing does not change the result.
func TestFromScratch_TraceIsPassive(t *testing.T) {
	t.Parallel()

	var stages []generator.Stage
	traced, err := generator.FromScratch(8, 10, 0.35, generator.WithSeed(3), generator.WithSimple(true),
		generator.WithTrace(func(s generator.Stage, snap generator.Snapshot) {
			stages = append(stages, s)
			require.NotNil(t, snap.Hypergraph)
		}))
	require.NoError(t, err)
	plain, err := generator.FromScratch(8, 10, 0.35, generator.WithSeed(3), generator.WithSimple(true))
	require.NoError(t, err)

	assert.True(t, traced.Equal(plain))
	assert.Equal(t, []generator.Stage{generator.StageSampled, generator.StageFinal}, stages)
}

// TestFromScratch_Properties checks the invariants for arbitrary inputs.
func TestFromScratch_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "n")
		m := rapid.IntRange(0, 15).Draw(t, "m")
		p := rapid.Float64Range(0, 1).Draw(t, "p")
		seed := rapid.Int64().Draw(t, "seed")
		simple := rapid.Bool().Draw(t, "simple")
		connected := rapid.Bool().Draw(t, "connected")
		order := rapid.SampledFrom([]enforce.Order{enforce.SimpleThenConnected, enforce.ConnectedThenSimple}).Draw(t, "order")

		h, err := generator.FromScratch(n, m, p, generator.WithSeed(seed),
			generator.WithSimple(simple), generator.WithConnected(connected), generator.WithOrder(order))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h.NumHyperedges() > m {
			t.Fatalf("%d hyperedges > m=%d", h.NumHyperedges(), m)
		}
		if !h.IsContiguous() {
			t.Fatalf("vertices not contiguous: %v", h.Vertices())
		}
		if !simple && !connected && h.NumVertices() != n {
			t.Fatalf("vertex set %d != n=%d", h.NumVertices(), n)
		}
		for _, e := range h.Hyperedges() {
			if e.Len() == 0 {
				t.Fatalf("empty hyperedge")
			}
			for _, v := range e {
				if !h.HasVertex(v) {
					t.Fatalf("hyperedge member %d outside vertex set", v)
				}
			}
		}
		if simple && !enforce.IsSimple(h) {
			t.Fatalf("not simple: %v", h)
		}
		if connected && !incidence.IsConnected(h) {
			t.Fatalf("not connected: %v", h)
		}
	})
}
