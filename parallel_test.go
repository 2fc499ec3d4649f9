package main

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkerEnvironRoundTrip(t *testing.T) {
	cfg := TrialConfig{
		Seed:    3,
		Objects: 1_234,
		Queries: 5_678,
		Grid:    9_999,
		Layout:  LayoutSplit,
		Mix:     QueryMix{LocationToID: 0.375, IDToLocation: 0.375, Combined: 0.25},
	}
	for _, pair := range workerEnviron(cfg) {
		key, value, found := strings.Cut(pair, "=")
		require.True(t, found)
		t.Setenv(key, value)
	}
	require.True(t, isWorkerProcess())
	require.Equal(t, cfg, workerConfig())
}

func TestThroughputSingleWorker(t *testing.T) {
	throughput := Throughput{
		Workers: 1,
		Objects: 500,
		Queries: 10_000,
		Grid:    1_000_000,
		Mix:     QueryMix{LocationToID: 0.375, IDToLocation: 0.375, Combined: 0.25},
	}
	splitKqps, unifiedKqps, err := throughput.Run()
	require.Nil(t, err)
	require.Greater(t, splitKqps, 0.0)
	require.Greater(t, unifiedKqps, 0.0)
}

func TestThroughputWorkerFailureAbortsPhase(t *testing.T) {
	// An infeasible dataset makes every worker exit non-zero.
	throughput := Throughput{
		Workers: 2,
		Objects: 100,
		Queries: 10,
		Grid:    2,
		Mix:     QueryMix{Combined: 1},
	}
	_, _, err := throughput.Run()
	require.ErrorContains(t, err, "split phase failed")
}

func TestThroughputScalesWithWorkers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping throughput scaling benchmark in short mode")
	}
	if runtime.NumCPU() < 4 {
		t.Skip("throughput scaling needs at least 4 logical cores")
	}
	mix := QueryMix{LocationToID: 0.375, IDToLocation: 0.375, Combined: 0.25}
	single := Throughput{Workers: 1, Objects: 5_000, Queries: 200_000, Grid: 1_000_000, Mix: mix}
	quad := Throughput{Workers: 4, Objects: 5_000, Queries: 200_000, Grid: 1_000_000, Mix: mix}

	_, singleKqps, err := single.Run()
	require.Nil(t, err)
	_, quadKqps, err := quad.Run()
	require.Nil(t, err)
	require.GreaterOrEqual(t, quadKqps, singleKqps)
}
