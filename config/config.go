// Package config loads hypergen settings from defaults, an optional YAML
// file, HYPERGEN_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/katalvlaran/hypergen/dataset"
	"github.com/katalvlaran/hypergen/enforce"
	"github.com/katalvlaran/hypergen/generator"
)

// EnvPrefix prefixes every environment override, e.g. HYPERGEN_GENERATE_SEED.
const EnvPrefix = "HYPERGEN"

// ErrInvalid marks every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Generate GenerateConfig `mapstructure:"generate"`
	Dataset  DatasetConfig  `mapstructure:"dataset"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GenerateConfig holds the knobs shared by both commands.
type GenerateConfig struct {
	Method    string `mapstructure:"method"`
	Seed      int64  `mapstructure:"seed"`
	Simple    bool   `mapstructure:"simple"`
	Connected bool   `mapstructure:"connected"`
	Order     string `mapstructure:"order"`
}

type DatasetConfig struct {
	Root           string    `mapstructure:"root"`
	Probabilities  []float64 `mapstructure:"probabilities"`
	PerProbability int       `mapstructure:"per_probability"`
	MinVertices    int       `mapstructure:"min_vertices"`
	MaxVertices    int       `mapstructure:"max_vertices"`
	MinHyperedges  int       `mapstructure:"min_hyperedges"`
	MaxHyperedges  int       `mapstructure:"max_hyperedges"`
	Workers        int       `mapstructure:"workers"`
}

type MetricsConfig struct {
	// Textfile, when set, receives a Prometheus text dump after each run.
	Textfile string `mapstructure:"textfile"`
}

// SetDefaults registers every key so env overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("generate.method", string(generator.MethodFromScratch))
	v.SetDefault("generate.seed", 42)
	v.SetDefault("generate.simple", true)
	v.SetDefault("generate.connected", true)
	v.SetDefault("generate.order", enforce.SimpleThenConnected.String())

	d := dataset.DefaultConfig()
	v.SetDefault("dataset.root", d.Root)
	v.SetDefault("dataset.probabilities", d.Probabilities)
	v.SetDefault("dataset.per_probability", d.PerProbability)
	v.SetDefault("dataset.min_vertices", d.MinVertices)
	v.SetDefault("dataset.max_vertices", d.MaxVertices)
	v.SetDefault("dataset.min_hyperedges", d.MinHyperedges)
	v.SetDefault("dataset.max_hyperedges", d.MaxHyperedges)
	v.SetDefault("dataset.workers", runtime.GOMAXPROCS(0))

	v.SetDefault("metrics.textfile", "")
}

// Load reads file (if non-empty) into v on top of the defaults and the
// environment, then unmarshals. Flags bound to v before Load take precedence.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs error
	add := func(err error) {
		errs = multierr.Append(errs, fmt.Errorf("%v: %w", err, ErrInvalid))
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		add(fmt.Errorf("log.level: %w", err))
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		add(fmt.Errorf("log.format %q: want console or json", c.Log.Format))
	}
	if _, err := generator.ParseMethod(c.Generate.Method); err != nil {
		add(fmt.Errorf("generate.method: %w", err))
	}
	if _, err := enforce.ParseOrder(c.Generate.Order); err != nil {
		add(fmt.Errorf("generate.order: %w", err))
	}
	return errs
}

// DatasetRun resolves the sweep settings. The result still needs
// dataset.Config.Validate.
func (c *Config) DatasetRun() (dataset.Config, error) {
	method, err := generator.ParseMethod(c.Generate.Method)
	if err != nil {
		return dataset.Config{}, err
	}
	order, err := enforce.ParseOrder(c.Generate.Order)
	if err != nil {
		return dataset.Config{}, err
	}
	return dataset.Config{
		Root:           c.Dataset.Root,
		Method:         method,
		Probabilities:  append([]float64(nil), c.Dataset.Probabilities...),
		PerProbability: c.Dataset.PerProbability,
		MinVertices:    c.Dataset.MinVertices,
		MaxVertices:    c.Dataset.MaxVertices,
		MinHyperedges:  c.Dataset.MinHyperedges,
		MaxHyperedges:  c.Dataset.MaxHyperedges,
		Simple:         c.Generate.Simple,
		Connected:      c.Generate.Connected,
		Order:          order,
		Seed:           c.Generate.Seed,
		Workers:        c.Dataset.Workers,
	}, nil
}

// GeneratorOptions turns the generate section into generator options,
// without the rng, which callers seed per instance.
func (c *Config) GeneratorOptions() (generator.Method, []generator.Option, error) {
	method, err := generator.ParseMethod(c.Generate.Method)
	if err != nil {
		return "", nil, err
	}
	order, err := enforce.ParseOrder(c.Generate.Order)
	if err != nil {
		return "", nil, err
	}
	return method, []generator.Option{
		generator.WithSimple(c.Generate.Simple),
		generator.WithConnected(c.Generate.Connected),
		generator.WithOrder(order),
	}, nil
}

// NewLogger builds the process logger. Nil w means stderr.
func (c *Config) NewLogger(w io.Writer) (zerolog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
