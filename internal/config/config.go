// SPDX-License-Identifier: MIT

// Package config loads the command line configuration from an optional
// YAML file and HYPERREACH_* environment variables.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hyperreach/distance"
	"github.com/katalvlaran/hyperreach/hyperdijkstra"
	"github.com/katalvlaran/hyperreach/internal/logging"
	"github.com/katalvlaran/hyperreach/network"
	"github.com/katalvlaran/hyperreach/results"
)

// EnvPrefix prefixes every environment override: data.networks_dir is
// read from HYPERREACH_DATA_NETWORKS_DIR.
const EnvPrefix = "HYPERREACH"

// ErrInvalid is wrapped by Validate.
var ErrInvalid = errors.New("config: invalid")

// Config holds all application configuration.
type Config struct {
	Data    DataConfig     `mapstructure:"data"`
	Run     RunConfig      `mapstructure:"run"`
	Log     logging.Config `mapstructure:"log"`
	Metrics MetricsConfig  `mapstructure:"metrics"`
}

type DataConfig struct {
	NetworksDir string        `mapstructure:"networks_dir"`
	ResultsDir  string        `mapstructure:"results_dir"`
	Datasets    []string      `mapstructure:"datasets"`
	Resolution  time.Duration `mapstructure:"resolution"`
}

type RunConfig struct {
	Workers      int      `mapstructure:"workers"`
	Algorithm    string   `mapstructure:"algorithm"`
	Kinds        []string `mapstructure:"kinds"`
	OutputFormat string   `mapstructure:"output_format"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// setDefaults registers every key, which also makes each one overridable
// from the environment.
func setDefaults(v *viper.Viper) {
	kinds := make([]string, 0, 3)
	for _, k := range distance.Kinds() {
		kinds = append(kinds, k.String())
	}

	v.SetDefault("data.networks_dir", "./data/networks")
	v.SetDefault("data.results_dir", "./data/minimal_distances")
	v.SetDefault("data.datasets", network.Datasets)
	v.SetDefault("data.resolution", network.DefaultResolution)

	v.SetDefault("run.workers", 0)
	v.SetDefault("run.algorithm", hyperdijkstra.Hyperedge.String())
	v.SetDefault("run.kinds", kinds)
	v.SetDefault("run.output_format", "raw")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.debug", false)
	v.SetDefault("log.path", "")
	v.SetDefault("log.max_size", 50)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age", 14)
	v.SetDefault("log.compress", true)

	v.SetDefault("metrics.addr", "")
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (skipped when empty) over the defaults, applies the
// environment, and validates the result.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "reading config")
		}
	}

	return FromViper(v)
}

// FromViper decodes and validates the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports every problem at once, wrapped in ErrInvalid.
func (c *Config) Validate() error {
	var problems []string

	if len(c.Data.Datasets) == 0 {
		problems = append(problems, "data.datasets is empty")
	}
	for _, name := range c.Data.Datasets {
		if _, err := network.DatasetPath(c.Data.NetworksDir, name); err != nil {
			problems = append(problems, "data.datasets: unknown dataset "+name)
		}
	}
	if c.Data.Resolution <= 0 {
		problems = append(problems, "data.resolution must be positive")
	}
	if c.Run.Workers < 0 {
		problems = append(problems, "run.workers is negative")
	}
	if _, err := c.Run.ParseAlgorithm(); err != nil {
		problems = append(problems, "run.algorithm: "+err.Error())
	}
	if _, err := c.Run.ParseKinds(); err != nil {
		problems = append(problems, "run.kinds: "+err.Error())
	}
	if _, ok := results.FormatterFor(c.Run.OutputFormat, time.Second); !ok {
		problems = append(problems, "run.output_format must be raw or time")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, "log.level: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.Wrap(ErrInvalid, strings.Join(problems, "; "))
	}

	return nil
}

// ParseAlgorithm resolves Algorithm.
func (r RunConfig) ParseAlgorithm() (hyperdijkstra.Algorithm, error) {
	return hyperdijkstra.ParseAlgorithm(r.Algorithm)
}

// ParseKinds resolves Kinds; empty means every kind.
func (r RunConfig) ParseKinds() ([]distance.Kind, error) {
	if len(r.Kinds) == 0 {
		return distance.Kinds(), nil
	}

	out := make([]distance.Kind, 0, len(r.Kinds))
	for _, s := range r.Kinds {
		k, err := distance.ParseKind(s)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}

	return out, nil
}

// Formatter returns the CSV formatter of OutputFormat for res.
func (r RunConfig) Formatter(res time.Duration) results.Formatter {
	f, ok := results.FormatterFor(r.OutputFormat, res)
	if !ok {
		return results.RawFormatter{}
	}

	return f
}
