package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"
)

type Stats struct {
	Mean float64
	Std  float64
}

func summarize(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	if len(values) < 2 {
		return Stats{Mean: mean, Std: math.NaN()}
	}
	sq := 0.0
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return Stats{Mean: mean, Std: math.Sqrt(sq / float64(len(values)-1))}
}

func SummarizeByLayout(results []TrialResult) map[LayoutKind]Stats {
	grouped := make(map[LayoutKind][]float64)
	for _, r := range results {
		grouped[r.Layout] = append(grouped[r.Layout], r.MeanMicros)
	}
	stats := make(map[LayoutKind]Stats, len(grouped))
	for layout, values := range grouped {
		stats[layout] = summarize(values)
	}
	return stats
}

// deltaVsUnified expresses how much better the split figure is relative to the
// unified baseline, in percent rounded to one decimal.
func deltaVsUnified(split, unified float64, higherIsBetter bool) float64 {
	var delta float64
	if higherIsBetter {
		delta = (split - unified) / unified * 100
	} else {
		delta = (unified - split) / unified * 100
	}
	return math.Round(delta*10) / 10
}

// PrintSummaryTable renders per-layout mean and standard deviation of mean
// query latency together with the percentage advantage over Unified.
func PrintSummaryTable(title string, results []TrialResult) {
	stats := SummarizeByLayout(results)
	split, unified := stats[LayoutSplit], stats[LayoutUnified]

	fmt.Printf("\n=== %v ===\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "layout\tmean (us)\tstd (us)\tdelta vs Unified (%)")
	fmt.Fprintf(w, "%v\t%.3f\t%.3f\t%.1f\n", LayoutSplit, split.Mean, split.Std, deltaVsUnified(split.Mean, unified.Mean, false))
	fmt.Fprintf(w, "%v\t%.3f\t%.3f\t%.1f\n", LayoutUnified, unified.Mean, unified.Std, 0.0)
	w.Flush()
}

// SweepRow is one line of a parameter-sweep table: the swept value and the
// per-layout measurement at that point.
type SweepRow struct {
	Label   string
	Split   float64
	Unified float64
}

func PrintSweepTable(title string, rows []SweepRow, higherIsBetter bool) {
	fmt.Printf("\n=== %v ===\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tSplit\tUnified\tdelta vs Unified (%)")
	for _, row := range rows {
		fmt.Fprintf(w, "%v\t%.3f\t%.3f\t%.1f\n", row.Label, row.Split, row.Unified, deltaVsUnified(row.Split, row.Unified, higherIsBetter))
	}
	w.Flush()
}
