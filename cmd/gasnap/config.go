// SPDX-License-Identifier: MIT
// Package: genops/cmd/gasnap

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	errBadConfig = errors.New("gasnap: invalid configuration")
	errNoMode    = errors.New("gasnap: one of -problem or -crossover is required")
)

// Config is the merged result of the optional TOML file and the flags.
// Flags that are set on the command line win over the file.
type Config struct {
	Problem  string  `toml:"problem"`
	Seed     int64   `toml:"seed"`
	Size     int     `toml:"size"`
	Queens   int     `toml:"queens"`
	Costs    string  `toml:"costs"`
	Values   string  `toml:"values"`
	Capacity float64 `toml:"capacity"`
	Matrix   string  `toml:"matrix"`
	Plot     string  `toml:"plot"`
	Out      string  `toml:"out"`

	Crossover string `toml:"crossover"`
	Mutation  string `toml:"mutation"`
	N         int    `toml:"n"`

	Log LogConfig `toml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Format string `toml:"format"` // text | json
	Level  string `toml:"level"`  // debug | info | warn | error
}

// DefaultConfig mirrors the flag defaults.
func DefaultConfig() Config {
	return Config{
		Size:   30,
		Queens: 8,
		N:      9,
		Log:    LogConfig{Format: "text", Level: "info"},
	}
}

// loadConfigFile decodes path over cfg and rejects unknown keys.
func loadConfigFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys %s: %w", path, strings.Join(keys, ", "), errBadConfig)
	}

	return nil
}

// parseConfig reads flags from args, loads -config if given and re-applies
// the flags that were set explicitly.
func parseConfig(args []string, stderr io.Writer) (Config, error) {
	var (
		fs      = flag.NewFlagSet("gasnap", flag.ContinueOnError)
		fl      = DefaultConfig()
		cfgPath string
	)
	fs.SetOutput(stderr)
	fs.StringVar(&cfgPath, "config", "", "optional TOML config file")
	fs.StringVar(&fl.Problem, "problem", fl.Problem, "knapsack | nqueens | tsp")
	fs.Int64Var(&fl.Seed, "seed", fl.Seed, "RNG seed (0 selects the default seed)")
	fs.IntVar(&fl.Size, "size", fl.Size, "population size")
	fs.IntVar(&fl.Queens, "queens", fl.Queens, "board size for nqueens")
	fs.StringVar(&fl.Costs, "costs", fl.Costs, "knapsack cost vector file")
	fs.StringVar(&fl.Values, "values", fl.Values, "knapsack value vector file")
	fs.Float64Var(&fl.Capacity, "capacity", fl.Capacity, "knapsack capacity")
	fs.StringVar(&fl.Matrix, "matrix", fl.Matrix, "tsp cost matrix file")
	fs.StringVar(&fl.Plot, "plot", fl.Plot, "write the quality chart to this image file")
	fs.StringVar(&fl.Out, "out", fl.Out, "write the population to this file ('-' for stdout)")
	fs.StringVar(&fl.Crossover, "crossover", fl.Crossover, "run one crossover: pmx | ox | cx | ecx | onepoint | uniform")
	fs.StringVar(&fl.Mutation, "mutation", fl.Mutation, "mutate crossover children: inversion | swap | insertion")
	fs.IntVar(&fl.N, "n", fl.N, "parent length for -crossover")
	fs.StringVar(&fl.Log.Format, "log-format", fl.Log.Format, "text | json")
	fs.StringVar(&fl.Log.Level, "log-level", fl.Log.Level, "debug | info | warn | error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments %q: %w", fs.Args(), errBadConfig)
	}

	cfg := DefaultConfig()
	if cfgPath != "" {
		if err := loadConfigFile(cfgPath, &cfg); err != nil {
			return Config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) { override(&cfg, &fl, f.Name) })
	cfg.Problem = strings.ToLower(strings.TrimSpace(cfg.Problem))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func override(dst, src *Config, name string) {
	switch name {
	case "problem":
		dst.Problem = src.Problem
	case "seed":
		dst.Seed = src.Seed
	case "size":
		dst.Size = src.Size
	case "queens":
		dst.Queens = src.Queens
	case "costs":
		dst.Costs = src.Costs
	case "values":
		dst.Values = src.Values
	case "capacity":
		dst.Capacity = src.Capacity
	case "matrix":
		dst.Matrix = src.Matrix
	case "plot":
		dst.Plot = src.Plot
	case "out":
		dst.Out = src.Out
	case "crossover":
		dst.Crossover = src.Crossover
	case "mutation":
		dst.Mutation = src.Mutation
	case "n":
		dst.N = src.N
	case "log-format":
		dst.Log.Format = src.Log.Format
	case "log-level":
		dst.Log.Level = src.Log.Level
	}
}

// Validate checks cross-field rules. Value ranges of the problem parameters
// are left to the library constructors.
func (c Config) Validate() error {
	switch {
	case c.Problem == "" && c.Crossover == "":
		return errNoMode
	case c.Problem != "" && c.Crossover != "":
		return fmt.Errorf("-problem and -crossover are exclusive: %w", errBadConfig)
	}
	switch c.Problem {
	case "", "nqueens":
	case "knapsack":
		if c.Costs == "" || c.Values == "" {
			return fmt.Errorf("knapsack needs -costs and -values: %w", errBadConfig)
		}
	case "tsp":
		if c.Matrix == "" {
			return fmt.Errorf("tsp needs -matrix: %w", errBadConfig)
		}
	default:
		return fmt.Errorf("unknown problem %q: %w", c.Problem, errBadConfig)
	}
	if c.Mutation != "" && c.Crossover == "" {
		return fmt.Errorf("-mutation applies to -crossover children: %w", errBadConfig)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log format %q: %w", c.Log.Format, errBadConfig)
	}

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, errBadConfig)
	}

	return lvl, nil
}

// newLogger builds the CLI logger on w. cfg must have passed Validate.
func newLogger(w io.Writer, cfg LogConfig) *slog.Logger {
	lvl, _ := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
