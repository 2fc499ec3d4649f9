package main

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"golang.org/x/sync/errgroup"
)

// Throughput measures aggregate queries/second by fanning identical trials out
// to independent worker processes. Every worker owns its dataset and store in
// its own address space, so nothing in one worker's execution (allocation,
// garbage collection, map layout) can bias another's timing.
type Throughput struct {
	Workers int
	Objects int
	Queries int
	Grid    int
	Mix     QueryMix
}

// Run benchmarks first the Split layout, then the Unified layout, as two
// sequential phases so neither pollutes the other's timing. Returned values
// are kilo-queries/second per layout.
func (t *Throughput) Run() (splitKqps float64, unifiedKqps float64, err error) {
	splitKqps, err = t.phase(LayoutSplit)
	if err != nil {
		return 0, 0, fmt.Errorf("split phase failed: %w", err)
	}
	unifiedKqps, err = t.phase(LayoutUnified)
	if err != nil {
		return 0, 0, fmt.Errorf("unified phase failed: %w", err)
	}
	return splitKqps, unifiedKqps, nil
}

// phase runs all workers for one layout and converts the wall time for the
// whole batch into kqps. The timer starts before any worker is dispatched and
// stops only after every worker has exited; a failed worker aborts the phase.
func (t *Throughput) phase(kind LayoutKind) (float64, error) {
	exe, err := os.Executable()
	if err != nil {
		return 0, fmt.Errorf("cannot resolve worker executable: %w", err)
	}
	configs := make([]TrialConfig, 0, t.Workers)
	for seed := 0; seed < t.Workers; seed++ {
		configs = append(configs, TrialConfig{
			Seed:    int64(seed),
			Objects: t.Objects,
			Queries: t.Queries,
			Mix:     t.Mix,
			Grid:    t.Grid,
			Layout:  kind,
		})
	}

	Logger.Infof("running %v phase with %v workers, %v objects, %v queries each", kind, t.Workers, t.Objects, t.Queries)
	start := time.Now()
	var group errgroup.Group
	for _, cfg := range configs {
		cfg := cfg
		group.Go(func() error {
			cmd := exec.Command(exe)
			cmd.Env = append(os.Environ(), workerEnviron(cfg)...)
			output, err := cmd.CombinedOutput()
			if err != nil {
				return fmt.Errorf("worker seed=%v layout=%v failed: err=%w, out=%v", cfg.Seed, kind, err, string(output))
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return 0, err
	}
	elapsed := time.Since(start)

	total := float64(t.Workers) * float64(t.Queries)
	kqps := total / elapsed.Seconds() / 1000
	Logger.Infof("%v phase finished in %v: %.3f kq/s", kind, elapsed, kqps)
	return kqps, nil
}
