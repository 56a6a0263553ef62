package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/adt/dataset"
	"github.com/katalvlaran/adt/selection"
)

var (
	flagTrials int
	flagSizes  []int
	flagSeed   int64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "compare deterministic and randomized selection across input shapes",
	Long: `For each size and distribution (random, ascending, descending), run a
fixed number of trials with a uniformly random rank k per trial, timing
SelectDeterministic and Quickselect on identical fresh inputs, and report
the mean wall-clock time per call in milliseconds.`,
	Run: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagTrials, "trials", 100, "trials per size/distribution case")
	benchCmd.Flags().IntSliceVar(&flagSizes, "sizes", []int{100, 1000, 10000}, "input sizes to benchmark")
	benchCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for inputs, ranks, and pivots (0 = fixed default)")
}

// runBench executes the full size × distribution grid sequentially; trials
// never overlap, so each measurement covers exactly one selector call.
func runBench(*cobra.Command, []string) {
	if flagTrials <= 0 {
		log.Fatal().Int("trials", flagTrials).Msg("trials must be > 0")
	}
	rng := dataset.NewRand(flagSeed)

	log.Info().
		Ints("sizes", flagSizes).
		Int("trials", flagTrials).
		Int64("seed", flagSeed).
		Msg("starting selection benchmark")

	for _, n := range flagSizes {
		if n <= 0 {
			log.Fatal().Int("size", n).Msg("sizes must be > 0")
		}
		for _, dist := range dataset.Distributions() {
			detMs, rndMs, err := benchCase(n, dist, rng)
			if err != nil {
				log.Fatal().Err(err).Int("n", n).Str("distribution", dist.Name).Msg("benchmark case failed")
			}
			fmt.Printf("%6d | %-10s | mean runtime of deterministic median of medians = %6.2f ms | mean runtime of randomized quickselect = %6.2f ms\n",
				n, dist.Name, detMs, rndMs)
		}
	}

	log.Info().Msg("benchmark complete")
}

// benchCase times both selectors over flagTrials fresh inputs of one shape
// and returns their mean runtimes in milliseconds.
func benchCase(n int, dist dataset.Distribution, rng *rand.Rand) (float64, float64, error) {
	detNs := make([]float64, 0, flagTrials)
	rndNs := make([]float64, 0, flagTrials)

	for trial := 0; trial < flagTrials; trial++ {
		k := rng.Intn(n)

		// Deterministic selector on a fresh input.
		a := dist.Make(n, rng)
		start := time.Now()
		if _, err := selection.SelectDeterministic(a, k); err != nil {
			return 0, 0, err
		}
		detNs = append(detNs, float64(time.Since(start).Nanoseconds()))

		// Randomized selector on an equally fresh input.
		a = dist.Make(n, rng)
		start = time.Now()
		if _, err := selection.Quickselect(a, k, selection.WithRand(rng)); err != nil {
			return 0, 0, err
		}
		rndNs = append(rndNs, float64(time.Since(start).Nanoseconds()))
	}

	detMean, err := stats.Mean(detNs)
	if err != nil {
		return 0, 0, err
	}
	rndMean, err := stats.Mean(rndNs)
	if err != nil {
		return 0, 0, err
	}

	const nsPerMs = 1e6

	return detMean / nsPerMs, rndMean / nsPerMs, nil
}
