package main

import (
	"fmt"
	"math/rand"
)

type TrialConfig struct {
	Seed    int64
	Objects int
	Queries int
	Mix     QueryMix
	Grid    int
	Layout  LayoutKind
}

// TrialResult is the flat record handed to the reporting layer.
type TrialResult struct {
	Seed       int64
	Layout     LayoutKind
	MeanMicros float64
}

// RunTrial is the unit of work shared by the sequential sweeps and the
// throughput workers: one seeded dataset, one freshly built store, one
// latency run. The store never outlives the trial.
func RunTrial(cfg TrialConfig) (TrialResult, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	ds, err := GenerateDataset(cfg.Objects, cfg.Grid, rng)
	if err != nil {
		return TrialResult{}, fmt.Errorf("failed to generate dataset for trial seed=%v: %w", cfg.Seed, err)
	}
	store, err := NewStore(cfg.Layout, ds)
	if err != nil {
		return TrialResult{}, fmt.Errorf("failed to build store for trial seed=%v: %w", cfg.Seed, err)
	}
	mean, err := RunLatency(store, cfg.Queries, cfg.Mix, rng)
	if err != nil {
		return TrialResult{}, fmt.Errorf("latency run failed for trial seed=%v layout=%v: %w", cfg.Seed, cfg.Layout, err)
	}
	return TrialResult{Seed: cfg.Seed, Layout: cfg.Layout, MeanMicros: mean}, nil
}
