package cmd

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hypergen/config"
	"github.com/katalvlaran/hypergen/metrics"
)

// app is the state shared by every sub-command after flag parsing.
type app struct {
	v          *viper.Viper
	configFile string

	cfg       *config.Config
	log       zerolog.Logger
	registry  *prometheus.Registry
	collector metrics.Collector
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree with a fresh viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:           "hypergen",
		Short:         "Generate random hypergraphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "path to a YAML config file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	pf.String("metrics-textfile", "", "write Prometheus metrics to this file after the run")
	pf.String("method", "from_scratch", "generation method (from_scratch, from_tree, from_random_tree)")
	pf.Int64("seed", 42, "random seed")
	pf.Bool("simple", true, "remove hyperedges contained in another hyperedge")
	pf.Bool("connected", true, "keep only the largest incidence component (from_scratch)")
	pf.String("order", "simple_first", "finishing pass order (simple_first, connected_first)")

	bind(a.v, pf.Lookup("log-level"), "log.level")
	bind(a.v, pf.Lookup("log-format"), "log.format")
	bind(a.v, pf.Lookup("metrics-textfile"), "metrics.textfile")
	bind(a.v, pf.Lookup("method"), "generate.method")
	bind(a.v, pf.Lookup("seed"), "generate.seed")
	bind(a.v, pf.Lookup("simple"), "generate.simple")
	bind(a.v, pf.Lookup("connected"), "generate.connected")
	bind(a.v, pf.Lookup("order"), "generate.order")

	rootCmd.AddCommand(newGenerateCmd(a), newDatasetCmd(a))
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log

	if cfg.Metrics.Textfile != "" {
		a.registry = prometheus.NewRegistry()
		a.collector = metrics.NewPrometheusCollector(a.registry)
	} else {
		a.collector = metrics.NewNoopCollector()
	}
	return nil
}

// flushMetrics writes the textfile if one was requested.
func (a *app) flushMetrics() error {
	if a.registry == nil {
		return nil
	}
	if err := metrics.WriteTextfile(a.cfg.Metrics.Textfile, a.registry); err != nil {
		return fmt.Errorf("could not write metrics: %w", err)
	}
	a.log.Debug().Str("path", a.cfg.Metrics.Textfile).Msg("metrics written")
	return nil
}
