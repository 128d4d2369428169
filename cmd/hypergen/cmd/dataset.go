package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hypergen/dataset"
)

func newDatasetCmd(a *app) *cobra.Command {
	var progress bool

	datasetCmd := &cobra.Command{
		Use:   "dataset",
		Short: "Sweep p over a grid and write a batch of hypergraphs per value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []dataset.Option
			if progress {
				opts = append(opts, dataset.WithProgress(cmd.ErrOrStderr()))
			}
			return a.runDataset(cmd, afero.NewOsFs(), opts...)
		},
	}

	f := datasetCmd.Flags()
	f.String("root", "dataset", "output directory")
	f.Int("per-p", 100, "instances per probability")
	f.Int("min-vertices", 5, "smallest vertex count drawn")
	f.Int("max-vertices", 50, "largest vertex count drawn")
	f.Int("min-hyperedges", 5, "smallest hyperedge count drawn")
	f.Int("max-hyperedges", 50, "largest hyperedge count drawn")
	f.Int("workers", 0, "parallel workers (0: config or GOMAXPROCS)")
	f.Float64Slice("probabilities", nil, "probability grid (default 0.05..0.95 step 0.05)")
	f.BoolVar(&progress, "progress", true, "show a progress bar on stderr")

	bind(a.v, f.Lookup("root"), "dataset.root")
	bind(a.v, f.Lookup("per-p"), "dataset.per_probability")
	bind(a.v, f.Lookup("min-vertices"), "dataset.min_vertices")
	bind(a.v, f.Lookup("max-vertices"), "dataset.max_vertices")
	bind(a.v, f.Lookup("min-hyperedges"), "dataset.min_hyperedges")
	bind(a.v, f.Lookup("max-hyperedges"), "dataset.max_hyperedges")

	return datasetCmd
}

func (a *app) runDataset(cmd *cobra.Command, fs afero.Fs, opts ...dataset.Option) error {
	run, err := a.cfg.DatasetRun()
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("workers") {
		if run.Workers, err = f.GetInt("workers"); err != nil {
			return err
		}
	}
	if f.Changed("probabilities") {
		if run.Probabilities, err = f.GetFloat64Slice("probabilities"); err != nil {
			return err
		}
	}

	opts = append(opts, dataset.WithLogger(a.log), dataset.WithCollector(a.collector))
	sum, err := dataset.Run(cmd.Context(), fs, run, opts...)
	if err != nil {
		return err
	}
	a.log.Info().Int("instances", len(sum.Instances)).Str("root", run.Root).Msg("done")
	return a.flushMetrics()
}
