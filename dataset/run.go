package dataset

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hypergen/datfile"
	"github.com/katalvlaran/hypergen/generator"
	"github.com/katalvlaran/hypergen/metrics"
)

// Option customizes Run.
type Option func(*runner)

// WithLogger sets the logger. Default zerolog.Nop().
func WithLogger(log zerolog.Logger) Option {
	return func(r *runner) { r.log = log }
}

// WithProgress renders a progress bar to w.
func WithProgress(w io.Writer) Option {
	return func(r *runner) { r.progress = w }
}

// WithCollector reports every generation to c. Panics on nil.
func WithCollector(c metrics.Collector) Option {
	if c == nil {
		panic("dataset: WithCollector(nil)")
	}
	return func(r *runner) { r.collector = c }
}

// IDCard is the YAML sidecar written next to every instance.
type IDCard struct {
	Index               int     `yaml:"index"`
	Method              string  `yaml:"method"`
	P                   float64 `yaml:"p"`
	Seed                int64   `yaml:"seed"`
	Simple              bool    `yaml:"simple"`
	Connected           bool    `yaml:"connected"`
	RequestedVertices   int     `yaml:"requested_vertices"`
	RequestedHyperedges int     `yaml:"requested_hyperedges"`
	Vertices            int     `yaml:"vertices"`
	Hyperedges          int     `yaml:"hyperedges"`
	TotalSize           int     `yaml:"total_size"`
}

// Instance is one written hypergraph.
type Instance struct {
	Path string
	Card IDCard
}

// Summary lists instances ordered by (p, index).
type Summary struct {
	Instances []Instance
}

type runner struct {
	fs        afero.Fs
	cfg       Config
	log       zerolog.Logger
	progress  io.Writer
	collector metrics.Collector
}

type job struct {
	pIdx, i int
}

// Run validates cfg and writes the whole sweep to fs. The first failure
// cancels the remaining work.
func Run(ctx context.Context, fs afero.Fs, cfg Config, opts ...Option) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &runner{
		fs:        fs,
		cfg:       cfg,
		log:       zerolog.Nop(),
		collector: metrics.NewNoopCollector(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r.run(ctx)
}

func (r *runner) run(ctx context.Context) (*Summary, error) {
	cfg := r.cfg
	total := len(cfg.Probabilities) * cfg.PerProbability
	results := make([]Instance, total)

	for _, p := range cfg.Probabilities {
		if err := r.fs.MkdirAll(probabilityDir(cfg.Root, p), 0o755); err != nil {
			return nil, fmt.Errorf("dataset: mkdir: %w", err)
		}
	}

	var bar *progressbar.ProgressBar
	if r.progress != nil {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(r.progress),
			progressbar.OptionSetDescription(string(cfg.Method)),
			progressbar.OptionShowCount(),
		)
	}

	r.log.Info().
		Str("root", cfg.Root).
		Str("method", string(cfg.Method)).
		Int("probabilities", len(cfg.Probabilities)).
		Int("per_probability", cfg.PerProbability).
		Int("workers", cfg.Workers).
		Msg("generating dataset")

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
sweep:
	for pIdx := range cfg.Probabilities {
		for i := 0; i < cfg.PerProbability; i++ {
			j := job{pIdx: pIdx, i: i}
			if gCtx.Err() != nil {
				break sweep
			}
			g.Go(func() error {
				if err := gCtx.Err(); err != nil {
					return err
				}
				inst, err := r.instance(j)
				if err != nil {
					r.log.Err(err).Int("index", j.i).Float64("p", cfg.Probabilities[j.pIdx]).Msg("could not generate instance")
					return err
				}
				results[j.pIdx*cfg.PerProbability+j.i] = inst
				if bar != nil {
					_ = bar.Add(1)
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	r.log.Info().Int("instances", total).Msg("dataset complete")
	return &Summary{Instances: results}, nil
}

// instance generates, writes and describes one hypergraph.
func (r *runner) instance(j job) (Instance, error) {
	cfg := r.cfg
	p := cfg.Probabilities[j.pIdx]
	seed := instanceSeed(cfg.Seed, j.pIdx, j.i)
	rng := rand.New(rand.NewSource(seed))

	n := cfg.MinVertices + rng.Intn(cfg.MaxVertices-cfg.MinVertices+1)
	m := cfg.MinHyperedges + rng.Intn(cfg.MaxHyperedges-cfg.MinHyperedges+1)

	h, err := generator.Generate(cfg.Method, n, m, p,
		generator.WithRand(rng),
		generator.WithSimple(cfg.Simple),
		generator.WithConnected(cfg.Connected),
		generator.WithOrder(cfg.Order),
	)
	if err != nil {
		r.collector.GenerationFailed(string(cfg.Method))
		return Instance{}, fmt.Errorf("dataset: instance %d at p=%.2f: %w", j.i, p, err)
	}
	r.collector.HypergraphGenerated(string(cfg.Method), h.NumVertices(), h.NumHyperedges())

	name := fmt.Sprintf("%d_nodes_%d_hyperedges_%d_p_%.2f_%s%s", j.i, n, m, p, cfg.Method, datfile.Ext)
	path := filepath.Join(probabilityDir(cfg.Root, p), name)
	if err := datfile.WriteFile(r.fs, path, h); err != nil {
		return Instance{}, err
	}

	card := IDCard{
		Index:               j.i,
		Method:              string(cfg.Method),
		P:                   p,
		Seed:                seed,
		Simple:              cfg.Simple,
		Connected:           cfg.Connected,
		RequestedVertices:   n,
		RequestedHyperedges: m,
		Vertices:            h.NumVertices(),
		Hyperedges:          h.NumHyperedges(),
	}
	for _, e := range h.Hyperedges() {
		card.TotalSize += e.Len()
	}
	if err := writeCard(r.fs, IDCardPath(path), card); err != nil {
		return Instance{}, err
	}

	r.log.Debug().Str("path", path).Int("vertices", card.Vertices).Int("hyperedges", card.Hyperedges).Msg("instance written")
	return Instance{Path: path, Card: card}, nil
}

// IDCardPath returns the sidecar path for a .dat path.
func IDCardPath(datPath string) string {
	return strings.TrimSuffix(datPath, datfile.Ext) + "_id.yaml"
}

// ReadIDCard loads a sidecar written by Run.
func ReadIDCard(fs afero.Fs, path string) (IDCard, error) {
	var card IDCard
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return card, fmt.Errorf("dataset: ReadIDCard(%q): %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &card); err != nil {
		return card, fmt.Errorf("dataset: ReadIDCard(%q): %w", path, err)
	}
	return card, nil
}

func writeCard(fs afero.Fs, path string, card IDCard) error {
	raw, err := yaml.Marshal(card)
	if err != nil {
		return fmt.Errorf("dataset: id card: %w", err)
	}
	if err := afero.WriteFile(fs, path, raw, 0o644); err != nil {
		return fmt.Errorf("dataset: id card %q: %w", path, err)
	}
	return nil
}

func probabilityDir(root string, p float64) string {
	return filepath.Join(root, dirName(p))
}

// instanceSeed mixes the sweep seed with the grid position (splitmix64
// finalizer) so neighbouring instances get unrelated streams.
func instanceSeed(seed int64, pIdx, i int) int64 {
	z := uint64(seed) + uint64(pIdx)<<32 + uint64(i) + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return int64(z)
}
