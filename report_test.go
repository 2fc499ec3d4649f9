package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	stats := summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.InDelta(t, 5.0, stats.Mean, 1e-9)
	require.InDelta(t, 2.13809, stats.Std, 1e-5)
}

func TestSummarizeDegenerate(t *testing.T) {
	require.Equal(t, Stats{}, summarize(nil))
	single := summarize([]float64{3})
	require.Equal(t, 3.0, single.Mean)
	require.True(t, math.IsNaN(single.Std))
}

func TestSummarizeByLayout(t *testing.T) {
	results := []TrialResult{
		{Seed: 0, Layout: LayoutUnified, MeanMicros: 0.10},
		{Seed: 1, Layout: LayoutUnified, MeanMicros: 0.12},
		{Seed: 0, Layout: LayoutSplit, MeanMicros: 0.14},
		{Seed: 1, Layout: LayoutSplit, MeanMicros: 0.16},
	}
	stats := SummarizeByLayout(results)
	require.InDelta(t, 0.11, stats[LayoutUnified].Mean, 1e-9)
	require.InDelta(t, 0.15, stats[LayoutSplit].Mean, 1e-9)
}

func TestDeltaVsUnified(t *testing.T) {
	// Latency: lower is better, so a slower split scores negative.
	require.Equal(t, -17.0, deltaVsUnified(0.117, 0.1, false))
	require.Equal(t, 10.0, deltaVsUnified(0.09, 0.1, false))
	// Throughput: higher is better, the sign flips.
	require.Equal(t, 20.0, deltaVsUnified(120, 100, true))
	require.Equal(t, -25.0, deltaVsUnified(75, 100, true))
}
