package cmd

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypergen/datfile"
	"github.com/katalvlaran/hypergen/generator"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <count> <vertices> <hyperedges> <p> <path>",
		Short: "Write <count> random hypergraphs as hypergraph_<i>.dat under <path>",
		Long: `Write <count> random hypergraphs as hypergraph_<i>.dat under <path>.

For from_scratch, <vertices> and <hyperedges> are n and m; for from_tree they
are the two partition sizes; for from_random_tree the tree has
<vertices>+<hyperedges> nodes. All instances share one rng seeded by --seed.`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(afero.NewOsFs(), args)
		},
	}
}

func (a *app) runGenerate(fs afero.Fs, args []string) error {
	count, err := parseIntArg("count", args[0])
	if err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("<count>: %d < 0: %w", count, generator.ErrInvalidParameter)
	}
	vertices, err := parseIntArg("vertices", args[1])
	if err != nil {
		return err
	}
	hyperedges, err := parseIntArg("hyperedges", args[2])
	if err != nil {
		return err
	}
	p, err := parseFloatArg("p", args[3])
	if err != nil {
		return err
	}
	dir := args[4]

	method, opts, err := a.cfg.GeneratorOptions()
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(a.cfg.Generate.Seed))
	opts = append(opts, generator.WithRand(rng))

	a.log.Info().
		Str("method", string(method)).
		Int("count", count).
		Int("vertices", vertices).
		Int("hyperedges", hyperedges).
		Float64("p", p).
		Int64("seed", a.cfg.Generate.Seed).
		Msg("generating hypergraphs")

	for i := 0; i < count; i++ {
		h, err := generator.Generate(method, vertices, hyperedges, p, opts...)
		if err != nil {
			a.collector.GenerationFailed(string(method))
			return err
		}
		a.collector.HypergraphGenerated(string(method), h.NumVertices(), h.NumHyperedges())

		path := filepath.Join(dir, fmt.Sprintf("hypergraph_%d%s", i, datfile.Ext))
		if err := datfile.WriteFile(fs, path, h); err != nil {
			return err
		}
		a.log.Debug().
			Str("path", path).
			Int("vertices", h.NumVertices()).
			Int("hyperedges", h.NumHyperedges()).
			Msg("hypergraph written")
	}
	return a.flushMetrics()
}
