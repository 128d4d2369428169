package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/hypergen/config"
	"github.com/katalvlaran/hypergen/dataset"
	"github.com/katalvlaran/hypergen/enforce"
	"github.com/katalvlaran/hypergen/generator"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "from_scratch", cfg.Generate.Method)
	assert.Equal(t, int64(42), cfg.Generate.Seed)
	assert.True(t, cfg.Generate.Simple)
	assert.True(t, cfg.Generate.Connected)
	assert.Equal(t, dataset.DefaultProbabilities(), cfg.Dataset.Probabilities)

	run, err := cfg.DatasetRun()
	require.NoError(t, err)
	require.NoError(t, run.Validate())
	assert.Equal(t, generator.MethodFromScratch, run.Method)
	assert.Equal(t, enforce.SimpleThenConnected, run.Order)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hypergen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
generate:
  method: from_tree
  seed: 7
  order: connected_first
dataset:
  per_probability: 3
  probabilities: [0.2, 0.4]
`), 0o644))
	t.Setenv("HYPERGEN_GENERATE_SEED", "99")
	t.Setenv("HYPERGEN_LOG_FORMAT", "json")

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "from_tree", cfg.Generate.Method)
	assert.Equal(t, int64(99), cfg.Generate.Seed)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Dataset.PerProbability)
	assert.Equal(t, []float64{0.2, 0.4}, cfg.Dataset.Probabilities)

	method, opts, err := cfg.GeneratorOptions()
	require.NoError(t, err)
	assert.Equal(t, generator.MethodFromTree, method)
	assert.Len(t, opts, 3)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate_Aggregates(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"
	cfg.Generate.Method = "first"
	cfg.Generate.Order = "sideways"

	err = cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Len(t, multierr.Errors(err), 4)

	_, err = cfg.DatasetRun()
	assert.ErrorIs(t, err, generator.ErrUnknownMethod)
}

func TestNewLogger(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	log, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
}
