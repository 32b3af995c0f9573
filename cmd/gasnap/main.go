// SPDX-License-Identifier: MIT
// Package: genops/cmd/gasnap

// Command gasnap builds one initial population for a toy problem, or runs a
// single crossover on two random parents.
//
//	gasnap -problem nqueens -queens 8 -size 30 -plot pop.png
//	gasnap -problem knapsack -costs cost.txt -values value.txt -capacity 50
//	gasnap -problem tsp -matrix dist.txt -out pop.txt
//	gasnap -crossover pmx -n 9 -mutation swap
//
// Settings may also come from a TOML file given with -config; flags set on
// the command line override it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"

	"github.com/katalvlaran/genops/crossover"
	"github.com/katalvlaran/genops/knapsack"
	"github.com/katalvlaran/genops/mutation"
	"github.com/katalvlaran/genops/nqueens"
	"github.com/katalvlaran/genops/numfile"
	"github.com/katalvlaran/genops/permutation"
	"github.com/katalvlaran/genops/population"
	"github.com/katalvlaran/genops/tsp"
)

// Stream ids derived from the -seed generator in crossover mode.
const (
	streamCrossover uint64 = iota
	streamMutation
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "gasnap: %v\n", err)
		return 1
	}
	logger := newLogger(stderr, cfg.Log)

	if cfg.Crossover != "" {
		err = runCrossover(cfg, stdout, logger)
	} else {
		err = runProblem(cfg, stdout, logger)
	}
	if err != nil {
		logger.Error("gasnap failed", "err", err)
		return 1
	}

	return 0
}

func runCrossover(cfg Config, stdout io.Writer, logger *slog.Logger) error {
	op, err := crossover.Lookup(cfg.Crossover)
	if err != nil {
		return err
	}
	var mutate mutation.Operator
	if cfg.Mutation != "" {
		if mutate, err = mutation.Lookup(cfg.Mutation); err != nil {
			return err
		}
	}

	// Parents and crossover draw from stream 0, mutations from stream 1, so
	// -mutation never changes the parents or children.
	base := permutation.NewRand(cfg.Seed)
	rng := permutation.DeriveRand(base, streamCrossover)
	mutRng := permutation.DeriveRand(base, streamMutation)

	p1, err := permutation.Random(cfg.N, rng)
	if err != nil {
		return err
	}
	p2, err := permutation.Random(cfg.N, rng)
	if err != nil {
		return err
	}
	c1, c2, err := op(p1, p2, rng)
	if err != nil {
		return err
	}
	logger.Debug("crossover done", "operator", cfg.Crossover, "n", cfg.N,
		"preserves_permutation", crossover.PreservesPermutation(cfg.Crossover))

	fmt.Fprintf(stdout, "p1: %v\np2: %v\nc1: %v\nc2: %v\n", p1, p2, c1, c2)
	if mutate == nil {
		return nil
	}
	// Mutations need permutations; onepoint/uniform children may not be.
	var m []int
	for i, c := range [][]int{c1, c2} {
		if err = permutation.ValidatePair(c, p1); err != nil {
			return fmt.Errorf("mutation %s on child %d: %w", cfg.Mutation, i+1, err)
		}
		if m, err = mutate(c, mutRng); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "m%d: %v\n", i+1, m)
	}

	return nil
}

func runProblem(cfg Config, stdout io.Writer, logger *slog.Logger) error {
	rng := permutation.NewRand(cfg.Seed)
	snap, err := buildSnapshot(cfg, rng)
	if err != nil {
		return err
	}

	sum, err := snap.Stats()
	if err != nil {
		return err
	}
	best, err := snap.Best()
	if err != nil {
		return err
	}
	logger.Info("initial population",
		"problem", cfg.Problem,
		"seed", cfg.Seed,
		"size", sum.Size,
		"min", sum.Min,
		"max", sum.Max,
		"mean", sum.Mean,
		"stddev", sum.StdDev,
		"best_index", best,
		"best", snap.Individuals[best],
	)
	if cfg.Problem == "tsp" {
		tour, err := closedTour(snap.Individuals[best])
		if err != nil {
			return err
		}
		logger.Info("best tour", "tour", tour, "quality", snap.Qualities[best])
	}

	if cfg.Plot != "" {
		title := fmt.Sprintf("%s initial population (seed %d)", cfg.Problem, cfg.Seed)
		if err = snap.Plot(cfg.Plot, title); err != nil {
			return err
		}
		logger.Info("plot written", "path", cfg.Plot)
	}
	if cfg.Out != "" {
		if err = writeSnapshot(snap, cfg.Out, stdout); err != nil {
			return err
		}
		logger.Info("population written", "path", cfg.Out)
	}

	return nil
}

func buildSnapshot(cfg Config, rng *rand.Rand) (population.Snapshot, error) {
	switch cfg.Problem {
	case "knapsack":
		costs, err := numfile.LoadVector(cfg.Costs)
		if err != nil {
			return population.Snapshot{}, err
		}
		values, err := numfile.LoadVector(cfg.Values)
		if err != nil {
			return population.Snapshot{}, err
		}
		inst, err := knapsack.NewInstance(costs, values, cfg.Capacity)
		if err != nil {
			return population.Snapshot{}, err
		}
		return knapsack.InitialPopulation(inst, cfg.Size, rng)
	case "nqueens":
		return nqueens.InitialPopulation(cfg.Queens, cfg.Size, rng)
	case "tsp":
		rows, err := numfile.LoadMatrix(cfg.Matrix)
		if err != nil {
			return population.Snapshot{}, err
		}
		dist, err := tsp.NewCostMatrix(rows)
		if err != nil {
			return population.Snapshot{}, err
		}
		return tsp.InitialPopulation(dist, cfg.Size, rng)
	default:
		return population.Snapshot{}, fmt.Errorf("unknown problem %q: %w", cfg.Problem, errBadConfig)
	}
}

// closedTour returns perm as a validated closed tour starting at city 0.
func closedTour(perm []int) ([]int, error) {
	tour, err := tsp.MakeTourFromPermutation(perm, 0)
	if err != nil {
		return nil, err
	}
	if err = tsp.ValidateTour(tour, len(perm)); err != nil {
		return nil, err
	}

	return tour, nil
}

func writeSnapshot(snap population.Snapshot, path string, stdout io.Writer) error {
	if path == "-" {
		_, err := snap.WriteTo(stdout)
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = snap.WriteTo(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
