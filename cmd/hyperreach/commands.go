// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/hyperreach/builder"
	"github.com/katalvlaran/hyperreach/internal/archive"
	"github.com/katalvlaran/hyperreach/internal/config"
	"github.com/katalvlaran/hyperreach/internal/logging"
	"github.com/katalvlaran/hyperreach/network"
	"github.com/katalvlaran/hyperreach/results"
	"github.com/katalvlaran/hyperreach/simulation"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries the state shared by subcommands once the root has resolved
// the configuration.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *zap.Logger
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "hyperreach",
		Short:         "Minimal temporal distances in communication networks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.bindFlags(cmd); err != nil {
				return err
			}
			return a.setup(configPath)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (YAML)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Duration("resolution", 0, "Tick length of network timestamps (default 1s)")

	rootCmd.AddCommand(
		newRunCmd(a),
		newQueryCmd(a),
		newGenerateCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":    "log.level",
	"resolution":   "data.resolution",
	"select":       "data.datasets",
	"networks-dir": "data.networks_dir",
	"results-dir":  "data.results_dir",
	"workers":      "run.workers",
	"kinds":        "run.kinds",
	"format":       "run.output_format",
	"metrics-addr": "metrics.addr",
}

// bindFlags binds the flags of the executing command only, so subcommands
// may declare the same flag.
func (a *app) bindFlags(cmd *cobra.Command) error {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return errors.Wrapf(err, "bind --%s", name)
			}
		}
	}

	return nil
}

// setup reads the config file under flags and environment, then builds the logger.
func (a *app) setup(configPath string) error {
	if configPath != "" {
		a.v.SetConfigFile(configPath)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrap(err, "reading config")
		}
	}

	cfg, err := config.FromViper(a.v)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.logger, a.closer = cfg, logger, closer

	return nil
}

func (a *app) teardown() error {
	if a.logger == nil {
		return nil
	}
	_ = a.logger.Sync()

	return a.closer.Close()
}

// runner builds a simulation.Runner from the resolved configuration.
func (a *app) runner(metrics *simulation.Metrics) (*simulation.Runner, error) {
	alg, err := a.cfg.Run.ParseAlgorithm()
	if err != nil {
		return nil, err
	}
	kinds, err := a.cfg.Run.ParseKinds()
	if err != nil {
		return nil, err
	}

	return simulation.NewRunner(a.logger, metrics, simulation.Config{
		Workers:   a.cfg.Run.Workers,
		Algorithm: alg,
		Kinds:     kinds,
	})
}

func newRunCmd(a *app) *cobra.Command {
	var (
		vertexDijkstra bool
		compression    string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute all-pairs distances of the selected datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if vertexDijkstra {
				a.cfg.Run.Algorithm = "vertex"
			}
			return a.runDatasets(cmd.Context(), compression)
		},
	}

	flags := cmd.Flags()
	flags.StringSlice("select", nil, "Datasets to load (default all)")
	flags.Int("workers", 0, "Concurrent searches (default GOMAXPROCS)")
	flags.StringSlice("kinds", nil, "Distance kinds: shortest, fastest, foremost (default all)")
	flags.String("networks-dir", "", "Directory of <dataset>.json.bz2 files")
	flags.String("results-dir", "", "Output directory")
	flags.String("format", "", "Cell format: raw or time")
	flags.String("metrics-addr", "", "Serve Prometheus metrics on this address")
	flags.BoolVar(&vertexDijkstra, "vertex-dijkstra", false, "Relax vertices instead of hyperedges (slower)")
	flags.StringVar(&compression, "compression", "bz2", "Result compression: bz2, gz, zst, or none")

	return cmd
}

func (a *app) runDatasets(ctx context.Context, compression string) error {
	ext, err := resultExt(compression)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	stopMetrics := a.serveMetrics(reg)
	defer stopMetrics()

	r, err := a.runner(simulation.NewMetrics(reg))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(a.cfg.Data.ResultsDir, 0o755); err != nil {
		return errors.Wrap(err, "results directory")
	}

	f := a.cfg.Run.Formatter(a.cfg.Data.Resolution)
	for _, name := range a.cfg.Data.Datasets {
		in, err := network.DatasetPath(a.cfg.Data.NetworksDir, name)
		if err != nil {
			return err
		}
		out := filepath.Join(a.cfg.Data.ResultsDir, name+".csv"+ext)
		if _, err := r.RunFile(ctx, in, out, f,
			network.WithName(name),
			network.WithResolution(a.cfg.Data.Resolution),
		); err != nil {
			return errors.Wrapf(err, "dataset %s", name)
		}
	}

	return nil
}

func resultExt(compression string) (string, error) {
	switch compression {
	case "bz2":
		return ".bz2", nil
	case "gz":
		return ".gz", nil
	case "zst":
		return ".zst", nil
	case "none", "":
		return "", nil
	default:
		return "", errors.Errorf("unknown compression %q", compression)
	}
}

// serveMetrics starts the Prometheus endpoint when configured and returns
// its shutdown function.
func (a *app) serveMetrics(reg *prometheus.Registry) func() {
	addr := a.cfg.Metrics.Addr
	if addr == "" {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server failed", zap.Error(err))
		}
	}()
	a.logger.Info("serving metrics", zap.String("addr", addr))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func newQueryCmd(a *app) *cobra.Command {
	var (
		path           string
		source         string
		vertexDijkstra bool
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print the distances from one participant as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if vertexDijkstra {
				a.cfg.Run.Algorithm = "vertex"
			}
			net, err := network.Load(path, network.WithResolution(a.cfg.Data.Resolution))
			if err != nil {
				return err
			}
			r, err := a.runner(nil)
			if err != nil {
				return err
			}
			table, err := r.Query(cmd.Context(), net, source)
			if err != nil {
				return err
			}
			return results.WriteCSV(cmd.OutOrStdout(), table, a.cfg.Run.Formatter(net.Resolution))
		},
	}
	cmd.Flags().StringVar(&path, "network", "", "Network file (.json, .json.gz, .json.zst, .json.bz2)")
	cmd.Flags().StringVar(&source, "source", "", "Source participant")
	cmd.Flags().BoolVar(&vertexDijkstra, "vertex-dijkstra", false, "Relax vertices instead of hyperedges")
	cmd.Flags().StringSlice("kinds", nil, "Distance kinds (default all)")
	cmd.Flags().String("format", "", "Cell format: raw or time")
	_ = cmd.MarkFlagRequired("network")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

// defaultEpoch is where generated networks start unless --start is given.
var defaultEpoch = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		vertices   int
		hyperedges int
		maxArity   int
		span       int64
		start      int64
		seed       int64
		output     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random communication network in the dataset format",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("start") {
				start = network.Ticks(defaultEpoch, a.cfg.Data.Resolution)
			}
			g, err := builder.Build(
				[]builder.BuilderOption{
					builder.WithSeed(seed),
					builder.WithStartTime(start),
					builder.WithIDScheme(builder.PrefixIDFn("p")),
					builder.WithHyperedgeIDScheme(builder.PrefixIDFn("c")),
				},
				builder.RandomTemporal(vertices, hyperedges, maxArity, span),
			)
			if err != nil {
				return err
			}

			net := network.New(g, archive.Trim(output, ".json"), a.cfg.Data.Resolution)
			if err := network.Save(output, net); err != nil {
				return err
			}
			a.logger.Info("network generated",
				zap.String("path", output),
				zap.Int("participants", net.VertexCount()),
				zap.Int("channels", net.HyperedgeCount()),
			)
			return nil
		},
	}
	cmd.Flags().IntVar(&vertices, "vertices", 50, "Number of participants")
	cmd.Flags().IntVar(&hyperedges, "hyperedges", 200, "Number of channels")
	cmd.Flags().IntVar(&maxArity, "max-arity", 4, "Maximum participants per channel")
	cmd.Flags().Int64Var(&span, "span", 86400, "Channel end times fall in [start, start+span) ticks")
	cmd.Flags().Int64Var(&start, "start", 0, "First tick (default 2020-01-01 at the configured resolution)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().StringVar(&output, "output", "", "Output file (.json, .json.bz2, .json.gz, .json.zst)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "hyperreach", version)
			return err
		},
	}
}
