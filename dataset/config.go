package dataset

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/multierr"

	"github.com/katalvlaran/hypergen/enforce"
	"github.com/katalvlaran/hypergen/generator"
)

// ErrInvalidConfig marks every Validate failure.
var ErrInvalidConfig = errors.New("dataset: invalid config")

// Config describes one sweep.
type Config struct {
	Root           string
	Method         generator.Method
	Probabilities  []float64
	PerProbability int
	MinVertices    int
	MaxVertices    int
	MinHyperedges  int
	MaxHyperedges  int
	Simple         bool
	Connected      bool
	Order          enforce.Order
	Seed           int64
	Workers        int
}

// DefaultProbabilities returns 0.05, 0.10, ..., 0.95.
func DefaultProbabilities() []float64 {
	ps := make([]float64, 0, 19)
	for k := 1; k <= 19; k++ {
		ps = append(ps, float64(5*k)/100)
	}
	return ps
}

// DefaultConfig mirrors the reference benchmark: 100 instances per p with
// both sizes drawn from [5, 50].
func DefaultConfig() Config {
	return Config{
		Root:           "dataset",
		Method:         generator.MethodFromScratch,
		Probabilities:  DefaultProbabilities(),
		PerProbability: 100,
		MinVertices:    5,
		MaxVertices:    50,
		MinHyperedges:  5,
		MaxHyperedges:  50,
		Simple:         true,
		Connected:      true,
		Order:          enforce.SimpleThenConnected,
		Seed:           42,
		Workers:        runtime.GOMAXPROCS(0),
	}
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var errs error
	add := func(format string, args ...interface{}) {
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig))
	}

	if c.Root == "" {
		add("root is empty")
	}
	if _, err := generator.ParseMethod(string(c.Method)); err != nil {
		add("method %q unknown", c.Method)
	}
	if len(c.Probabilities) == 0 {
		add("no probabilities")
	}
	dirs := make(map[string]float64, len(c.Probabilities))
	for _, p := range c.Probabilities {
		if !(p >= generator.MinProbability && p <= generator.MaxProbability) {
			add("probability %v not in [0,1]", p)
			continue
		}
		name := dirName(p)
		if prev, dup := dirs[name]; dup {
			add("probabilities %v and %v share directory %s", prev, p, name)
			continue
		}
		dirs[name] = p
	}
	if c.PerProbability < 0 {
		add("per-probability count %d < 0", c.PerProbability)
	}

	minV, minE := generator.MinVertices, 0
	if c.Method == generator.MethodFromTree {
		minV, minE = generator.MinPartition, generator.MinPartition
	}
	if c.MinVertices < minV {
		add("min vertices %d < %d", c.MinVertices, minV)
	}
	if c.MaxVertices < c.MinVertices {
		add("max vertices %d < min vertices %d", c.MaxVertices, c.MinVertices)
	}
	if c.MinHyperedges < minE {
		add("min hyperedges %d < %d", c.MinHyperedges, minE)
	}
	if c.MaxHyperedges < c.MinHyperedges {
		add("max hyperedges %d < min hyperedges %d", c.MaxHyperedges, c.MinHyperedges)
	}
	if c.Method == generator.MethodFromRandomTree && c.MinVertices+c.MinHyperedges < generator.MinTreeNodes {
		add("min vertices + min hyperedges %d < %d", c.MinVertices+c.MinHyperedges, generator.MinTreeNodes)
	}
	if c.Workers < 1 {
		add("workers %d < 1", c.Workers)
	}
	return errs
}

// dirName names the directory holding every instance drawn at p. Two grid
// values are distinct only if their names are.
func dirName(p float64) string {
	return fmt.Sprintf("p_%0.2f", p)
}
