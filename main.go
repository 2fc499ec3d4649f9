package main

import (
	"flag"
	"fmt"

	"github.com/joho/godotenv"
)

const banner = `
Two-stream memory-layout benchmark

Compares two ways of storing paired identity ("what") and location ("where")
facts about a population of objects: a Unified layout that keeps both facts in
one record per object id, and a Split layout that keeps them in two tables
joined through a reverse index. Reported timings vary with hardware and
background load, but the qualitative trends between the layouts are robust.
`

var (
	mixCanonical = QueryMix{LocationToID: 0.4, IDToLocation: 0.4, Combined: 0.2}
	mixSizeSweep = QueryMix{LocationToID: 0.47, IDToLocation: 0.47, Combined: 0.06}
	mixParallel  = QueryMix{LocationToID: 0.375, IDToLocation: 0.375, Combined: 0.25}
)

const (
	mixSweepObjects = 2_500
	mixSweepGrid    = 300_000_000
	parallelObjects = 20_000
	parallelGrid    = 1_000_000
	parallelQueries = 50_000
)

func layoutMeans(results []TrialResult) (split, unified float64) {
	stats := SummarizeByLayout(results)
	return stats[LayoutSplit].Mean, stats[LayoutUnified].Mean
}

// runCanonical repeats the default-parameter benchmark with a 40/40/20 mix and
// tables mean latency per layout.
func runCanonical(trials, n, q, grid int) error {
	results := make([]TrialResult, 0, 2*trials)
	for trial := 0; trial < trials; trial++ {
		for _, layout := range []LayoutKind{LayoutUnified, LayoutSplit} {
			result, err := RunTrial(TrialConfig{
				Seed:    int64(trial),
				Objects: n,
				Queries: q,
				Mix:     mixCanonical,
				Grid:    grid,
				Layout:  layout,
			})
			if err != nil {
				return err
			}
			results = append(results, result)
		}
	}
	PrintSummaryTable("Split vs Unified latency for canonical 40/40/20 query mix", results)
	return nil
}

// runMixSweep varies the share of combined queries while splitting the rest
// evenly between the two single-fact query types.
func runMixSweep(trials, q int) error {
	rows := make([]SweepRow, 0)
	for _, p := range []float64{0, 0.05, 0.10, 0.15, 0.20, 0.30, 0.35, 0.40, 0.50} {
		mix := QueryMix{LocationToID: (1 - p) / 2, IDToLocation: (1 - p) / 2, Combined: p}
		results := make([]TrialResult, 0, 2*trials)
		for trial := 0; trial < trials; trial++ {
			for _, layout := range []LayoutKind{LayoutUnified, LayoutSplit} {
				result, err := RunTrial(TrialConfig{
					Seed:    int64(trial),
					Objects: mixSweepObjects,
					Queries: q,
					Mix:     mix,
					Grid:    mixSweepGrid,
					Layout:  layout,
				})
				if err != nil {
					return err
				}
				results = append(results, result)
			}
		}
		split, unified := layoutMeans(results)
		rows = append(rows, SweepRow{Label: fmt.Sprintf("%v%% combined", int(p*100)), Split: split, Unified: unified})
	}
	PrintSweepTable("Split vs Unified latency (us) for combined-query mix sweep", rows, false)
	return nil
}

// runSizeSweep varies the object population under a mostly single-fact mix.
func runSizeSweep(trials, q, grid int) error {
	rows := make([]SweepRow, 0)
	for _, n := range []int{100, 1_000, 5_000, 10_000, 20_000, 50_000, 100_000, 200_000} {
		results := make([]TrialResult, 0, 2*trials)
		for trial := 0; trial < trials; trial++ {
			for _, layout := range []LayoutKind{LayoutUnified, LayoutSplit} {
				result, err := RunTrial(TrialConfig{
					Seed:    int64(trial),
					Objects: n,
					Queries: q,
					Mix:     mixSizeSweep,
					Grid:    grid,
					Layout:  layout,
				})
				if err != nil {
					return err
				}
				results = append(results, result)
			}
		}
		split, unified := layoutMeans(results)
		rows = append(rows, SweepRow{Label: fmt.Sprintf("%v objects", n), Split: split, Unified: unified})
	}
	PrintSweepTable("Split vs Unified latency (us) for object quantity sweep", rows, false)
	return nil
}

// runParallelSweep measures aggregate throughput with 1, 4, 8 and 16 isolated
// worker processes per layout.
func runParallelSweep() error {
	rows := make([]SweepRow, 0)
	for _, workers := range []int{1, 4, 8, 16} {
		throughput := Throughput{
			Workers: workers,
			Objects: parallelObjects,
			Queries: parallelQueries,
			Grid:    parallelGrid,
			Mix:     mixParallel,
		}
		splitKqps, unifiedKqps, err := throughput.Run()
		if err != nil {
			return err
		}
		rows = append(rows, SweepRow{Label: fmt.Sprintf("%v worker(s)", workers), Split: splitKqps, Unified: unifiedKqps})
	}
	PrintSweepTable("Split vs Unified kiloqueries/sec for worker process sweep", rows, true)
	return nil
}

func main() {
	if isWorkerProcess() {
		if err := RunWorker(); err != nil {
			Logger.Fatalf("worker failed: %v", err)
		}
		return
	}

	if err := godotenv.Load(); err == nil {
		Logger.Infof("loaded configuration overrides from .env")
	}
	n := flag.Int("n", IntEnv("BENCHMARK_OBJECTS", 5_000), "number of objects in the coordinate space")
	q := flag.Int("q", IntEnv("BENCHMARK_QUERIES", 10_000), "number of queries per trial")
	trials := flag.Int("trials", IntEnv("BENCHMARK_TRIALS", 50), "trial repetitions per configuration")
	grid := flag.Int("grid", IntEnv("BENCHMARK_GRID", 100_000_000), "inclusive coordinate space bound")
	flag.Parse()

	fmt.Print(banner)
	info := HostStat()
	Logger.Infof("host stat: %+v", info)
	Logger.Infof("logical cores available: %v (the OS scheduler decides actual placement of worker processes)", info.LogicalCPUs)
	Logger.Infof("start benchmark: n=%v q=%v trials=%v grid=%v", *n, *q, *trials, *grid)

	if err := runCanonical(*trials, *n, *q, *grid); err != nil {
		Logger.Fatalf("canonical benchmark failed: %v", err)
	}
	if err := runMixSweep(*trials, *q); err != nil {
		Logger.Fatalf("mix sweep failed: %v", err)
	}
	if err := runSizeSweep(*trials, *q, *grid); err != nil {
		Logger.Fatalf("size sweep failed: %v", err)
	}
	if err := runParallelSweep(); err != nil {
		Logger.Fatalf("parallel sweep failed: %v", err)
	}
}
