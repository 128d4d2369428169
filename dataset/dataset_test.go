package dataset_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/hypergen/dataset"
	"github.com/katalvlaran/hypergen/datfile"
	"github.com/katalvlaran/hypergen/generator"
	"github.com/katalvlaran/hypergen/incidence"
	"github.com/katalvlaran/hypergen/metrics"
)

func smallConfig(method generator.Method) dataset.Config {
	cfg := dataset.DefaultConfig()
	cfg.Root = "out"
	cfg.Method = method
	cfg.Probabilities = []float64{0.1, 0.5}
	cfg.PerProbability = 4
	cfg.MinVertices, cfg.MaxVertices = 3, 8
	cfg.MinHyperedges, cfg.MaxHyperedges = 2, 6
	cfg.Workers = 2
	return cfg
}

func TestDefaultProbabilities(t *testing.T) {
	t.Parallel()

	ps := dataset.DefaultProbabilities()
	require.Len(t, ps, 19)
	assert.Equal(t, 0.05, ps[0])
	assert.Equal(t, 0.5, ps[9])
	assert.Equal(t, 0.95, ps[18])
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, dataset.DefaultConfig().Validate())

	bad := dataset.DefaultConfig()
	bad.Root = ""
	bad.Method = "nope"
	bad.Probabilities = []float64{0.5, 1.5}
	bad.MaxVertices = 1
	bad.Workers = 0
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrInvalidConfig)
	assert.Len(t, multierr.Errors(err), 5)

	tree := dataset.DefaultConfig()
	tree.Method = generator.MethodFromTree
	tree.MinHyperedges = 0
	assert.ErrorIs(t, tree.Validate(), dataset.ErrInvalidConfig)
}

// TestValidate_ProbabilityGrid rejects grids whose directories would collide.
func TestValidate_ProbabilityGrid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ps      []float64
		wantErr bool
	}{
		{name: "default grid", ps: dataset.DefaultProbabilities()},
		{name: "distinct after rounding", ps: []float64{0.5, 0.51}},
		{name: "exact duplicate", ps: []float64{0.5, 0.5}, wantErr: true},
		{name: "same two decimals", ps: []float64{0.5, 0.501}, wantErr: true},
		{name: "rounds up into a neighbour", ps: []float64{0.1, 0.0999}, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := dataset.DefaultConfig()
			cfg.Probabilities = tc.ps
			err := cfg.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, dataset.ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestRun_CollidingGridWritesNothing: a rejected grid never reaches the disk.
func TestRun_CollidingGridWritesNothing(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cfg := smallConfig(generator.MethodFromScratch)
	cfg.Probabilities = []float64{0.5, 0.501}
	cfg.PerProbability = 3

	sum, err := dataset.Run(context.Background(), fs, cfg)
	assert.Nil(t, sum)
	assert.ErrorIs(t, err, dataset.ErrInvalidConfig)

	ok, err := afero.DirExists(fs, "out")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRun_Layout(t *testing.T) {
	t.Parallel()

	for _, method := range generator.Methods() {
		method := method
		t.Run(string(method), func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			cfg := smallConfig(method)
			sum, err := dataset.Run(context.Background(), fs, cfg)
			require.NoError(t, err)
			require.Len(t, sum.Instances, 8)

			for k, inst := range sum.Instances {
				p := cfg.Probabilities[k/cfg.PerProbability]
				assert.Equal(t, k%cfg.PerProbability, inst.Card.Index)
				assert.Equal(t, p, inst.Card.P)

				dir := filepath.Base(filepath.Dir(inst.Path))
				if p == 0.1 {
					assert.Equal(t, "p_0.10", dir)
				} else {
					assert.Equal(t, "p_0.50", dir)
				}

				h, err := datfile.Load(fs, inst.Path)
				require.NoError(t, err)
				assert.Equal(t, inst.Card.Hyperedges, h.NumHyperedges())
				assert.True(t, incidence.IsConnected(h), inst.Path)

				card, err := dataset.ReadIDCard(fs, dataset.IDCardPath(inst.Path))
				require.NoError(t, err)
				assert.Equal(t, inst.Card, card)
			}
		})
	}
}

func TestRun_FileName(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cfg := smallConfig(generator.MethodFromScratch)
	cfg.Probabilities = []float64{0.25}
	cfg.PerProbability = 1
	cfg.MinVertices, cfg.MaxVertices = 7, 7
	cfg.MinHyperedges, cfg.MaxHyperedges = 3, 3

	sum, err := dataset.Run(context.Background(), fs, cfg)
	require.NoError(t, err)
	require.Len(t, sum.Instances, 1)
	assert.Equal(t, filepath.Join("out", "p_0.25", "0_nodes_7_hyperedges_3_p_0.25_from_scratch.dat"), sum.Instances[0].Path)

	ok, err := afero.Exists(fs, filepath.Join("out", "p_0.25", "0_nodes_7_hyperedges_3_p_0.25_from_scratch_id.yaml"))
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestRun_WorkerIndependent: the bytes on disk do not depend on Workers.
func TestRun_WorkerIndependent(t *testing.T) {
	t.Parallel()

	run := func(workers int) (*dataset.Summary, afero.Fs) {
		fs := afero.NewMemMapFs()
		cfg := smallConfig(generator.MethodFromTree)
		cfg.Workers = workers
		sum, err := dataset.Run(context.Background(), fs, cfg)
		require.NoError(t, err)
		return sum, fs
	}

	s1, fs1 := run(1)
	s8, fs8 := run(8)
	require.Equal(t, s1, s8)
	for _, inst := range s1.Instances {
		a, err := afero.ReadFile(fs1, inst.Path)
		require.NoError(t, err)
		b, err := afero.ReadFile(fs8, inst.Path)
		require.NoError(t, err)
		assert.Equal(t, a, b, inst.Path)
	}
}

func TestRun_ProgressAndMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	var progress bytes.Buffer
	_, err := dataset.Run(context.Background(), afero.NewMemMapFs(), smallConfig(generator.MethodFromScratch),
		dataset.WithProgress(&progress),
		dataset.WithCollector(metrics.NewPrometheusCollector(reg)),
	)
	require.NoError(t, err)
	assert.NotEmpty(t, progress.String())

	n, err := testutil.GatherAndCount(reg, "hypergen_generate_hypergraphs_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	cfg := smallConfig(generator.MethodFromScratch)
	cfg.Workers = 0
	_, err := dataset.Run(context.Background(), afero.NewMemMapFs(), cfg)
	assert.ErrorIs(t, err, dataset.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dataset.Run(ctx, afero.NewMemMapFs(), smallConfig(generator.MethodFromScratch))
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = dataset.Run(context.Background(), afero.NewReadOnlyFs(afero.NewMemMapFs()), smallConfig(generator.MethodFromScratch))
	assert.Error(t, err)
}

// TestRun_CancelledBeforeStart: a cancelled context stops the whole sweep,
// not just the current probability, so no instance is written anywhere.
func TestRun_CancelledBeforeStart(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cfg := smallConfig(generator.MethodFromScratch)
	cfg.Probabilities = dataset.DefaultProbabilities()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum, err := dataset.Run(ctx, fs, cfg)
	assert.Nil(t, sum)
	assert.ErrorIs(t, err, context.Canceled)

	var written []string
	require.NoError(t, afero.Walk(fs, "out", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			written = append(written, path)
		}
		return nil
	}))
	assert.Empty(t, written)
}
