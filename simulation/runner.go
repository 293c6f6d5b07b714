// SPDX-License-Identifier: MIT

package simulation

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hyperreach/distance"
	"github.com/katalvlaran/hyperreach/hyperdijkstra"
	"github.com/katalvlaran/hyperreach/network"
	"github.com/katalvlaran/hyperreach/results"
)

// ErrNilNetwork indicates Run was called without a network.
var ErrNilNetwork = errors.New("simulation: network is nil")

// Config selects what a Runner computes.
type Config struct {
	// Workers bounds concurrent searches; ≤ 0 means GOMAXPROCS.
	Workers int

	// Algorithm picks the single-source search.
	Algorithm hyperdijkstra.Algorithm

	// Kinds lists the distance kinds to compute; empty means all.
	Kinds []distance.Kind

	// Origin is passed to every search; it never changes a distance.
	Origin int64

	// ProgressEvery logs after every N finished searches; ≤ 0 means a
	// tenth of the sources.
	ProgressEvery int
}

// Runner executes all-pairs runs. It is safe for concurrent use.
type Runner struct {
	logger  *zap.Logger
	metrics *Metrics
	cfg     Config
	search  hyperdijkstra.Search
}

// NewRunner validates cfg. A nil logger is replaced by zap.NewNop; a nil
// metrics records nothing.
func NewRunner(logger *zap.Logger, metrics *Metrics, cfg Config) (*Runner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	search, err := cfg.Algorithm.Search()
	if err != nil {
		return nil, errors.Wrap(err, "new runner")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if len(cfg.Kinds) == 0 {
		cfg.Kinds = distance.Kinds()
	}
	seen := make(map[distance.Kind]bool, len(cfg.Kinds))
	kinds := make([]distance.Kind, 0, len(cfg.Kinds))
	for _, k := range cfg.Kinds {
		if !k.Valid() {
			return nil, errors.Wrapf(distance.ErrUnknownKind, "new runner: %s", k)
		}
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	cfg.Kinds = kinds

	return &Runner{logger: logger, metrics: metrics, cfg: cfg, search: search}, nil
}

// Config returns the effective configuration.
func (r *Runner) Config() Config {
	cfg := r.cfg
	cfg.Kinds = append([]distance.Kind(nil), r.cfg.Kinds...)

	return cfg
}

// Run computes, for every configured kind, the distances from every
// participant of net to every participant it reaches.
func (r *Runner) Run(ctx context.Context, net *network.CommunicationNetwork) (*results.Table, error) {
	if net == nil || net.Hypergraph == nil {
		return nil, ErrNilNetwork
	}

	sources := net.AllParticipants()
	log := r.logger.With(
		zap.String("network", net.Name),
		zap.Stringer("algorithm", r.cfg.Algorithm),
		zap.Int("participants", len(sources)),
		zap.Int("channels", net.HyperedgeCount()),
	)
	log.Info("simulation started", zap.Int("workers", r.cfg.Workers))

	table := results.NewTable()
	for _, kind := range r.cfg.Kinds {
		start := time.Now()
		slots, err := r.runKind(ctx, log, net, sources, kind)
		if err != nil {
			log.Error("simulation failed", zap.Stringer("kind", kind), zap.Error(err))
			return nil, errors.Wrapf(err, "run %s on %q", kind, net.Name)
		}
		for i, source := range sources {
			if err := table.Add(kind, source, slots[i]); err != nil {
				return nil, errors.Wrap(err, "collect")
			}
		}

		s := table.Summarize(kind)
		log.Info("kind finished",
			zap.Stringer("kind", kind),
			zap.Duration("elapsed", time.Since(start)),
			zap.Int("pairs", s.Count),
			zap.Int64("min", s.Min),
			zap.Int64("max", s.Max),
			zap.Float64("mean", s.Mean),
		)
	}
	log.Info("simulation finished", zap.Int("rows", table.Len()))

	return table, nil
}

// runKind fans the searches of one kind out over the pool. slots[i] holds
// the result of sources[i].
func (r *Runner) runKind(
	ctx context.Context,
	log *zap.Logger,
	net *network.CommunicationNetwork,
	sources []string,
	kind distance.Kind,
) ([]map[string]int64, error) {
	slots := make([]map[string]int64, len(sources))
	every := r.cfg.ProgressEvery
	if every <= 0 {
		every = max(1, len(sources)/10)
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.cfg.Workers)

	var done atomic.Int64
	for i, source := range sources {
		i, source := i, source
		eg.Go(func() error {
			dist, err := r.searchOne(gctx, net, source, kind)
			if err != nil {
				return err
			}
			slots[i] = dist
			if n := done.Add(1); n%int64(every) == 0 {
				log.Debug("progress",
					zap.Stringer("kind", kind),
					zap.Int64("done", n),
					zap.Int("total", len(sources)),
				)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return slots, nil
}

// searchOne runs and records a single search.
func (r *Runner) searchOne(
	ctx context.Context,
	net *network.CommunicationNetwork,
	source string,
	kind distance.Kind,
) (map[string]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var st hyperdijkstra.Stats
	start := time.Now()
	dist, err := r.search(net.Hypergraph, source, kind,
		hyperdijkstra.WithContext(ctx),
		hyperdijkstra.WithOrigin(r.cfg.Origin),
		hyperdijkstra.WithStats(&st),
	)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		r.metrics.observe(r.cfg.Algorithm, kind, statusOK, elapsed, st, len(dist))
		return dist, nil
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		r.metrics.observe(r.cfg.Algorithm, kind, statusCancelled, elapsed, st, 0)
		return nil, err
	default:
		r.metrics.observe(r.cfg.Algorithm, kind, statusError, elapsed, st, 0)
		return nil, errors.Wrapf(err, "%s from %q", kind, source)
	}
}

// Query computes every configured kind from a single source.
func (r *Runner) Query(ctx context.Context, net *network.CommunicationNetwork, source string) (*results.Table, error) {
	if net == nil || net.Hypergraph == nil {
		return nil, ErrNilNetwork
	}

	table := results.NewTable()
	for _, kind := range r.cfg.Kinds {
		dist, err := r.searchOne(ctx, net, source, kind)
		if err != nil {
			return nil, errors.Wrapf(err, "query %q", net.Name)
		}
		if err := table.Add(kind, source, dist); err != nil {
			return nil, errors.Wrap(err, "collect")
		}
	}

	return table, nil
}

// RunFile loads the network at in, runs it, and saves the table to out
// through f (raw ticks when nil).
func (r *Runner) RunFile(ctx context.Context, in, out string, f results.Formatter, opts ...network.Option) (*results.Table, error) {
	net, err := network.Load(in, opts...)
	if err != nil {
		return nil, err
	}

	table, err := r.Run(ctx, net)
	if err != nil {
		return nil, err
	}

	if err := results.Save(out, table, f); err != nil {
		return nil, err
	}
	r.logger.Info("results saved", zap.String("network", net.Name), zap.String("path", out))

	return table, nil
}
