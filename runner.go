package main

import (
	"fmt"
	"math/rand"
	"time"
)

// QueryMix holds the probability of each query type. The three values are
// expected to sum to 1; the runner does not check this and an unbalanced mix
// silently skews the distribution, matching the behavior of the original
// simulation.
type QueryMix struct {
	LocationToID float64
	IDToLocation float64
	Combined     float64
}

// RunLatency fires totalQueries randomly classified queries at the store and
// returns the mean latency per query in microseconds.
//
// Valid ids and their coordinates are collected before the loop so that query
// construction stays outside the measured window; the timer brackets nothing
// but the single store call.
func RunLatency(store Store, totalQueries int, mix QueryMix, rng *rand.Rand) (float64, error) {
	if totalQueries <= 0 {
		return 0, nil
	}
	size := store.Size()
	if size == 0 {
		return 0, fmt.Errorf("cannot run %v queries against an empty store", totalQueries)
	}
	ids := make([]int, size)
	coords := make([]Coord, size)
	for id := 0; id < size; id++ {
		pos, err := store.LocationOf(id)
		if err != nil {
			return 0, fmt.Errorf("failed to precompute coordinate of object %v: %w", id, err)
		}
		ids[id] = id
		coords[id] = pos
	}

	var acc int64
	for i := 0; i < totalQueries; i++ {
		r := rng.Float64()
		var err error
		if r < mix.LocationToID {
			pos := coords[rng.Intn(size)]
			start := time.Now()
			_, err = store.IDAt(pos)
			acc += time.Since(start).Nanoseconds()
		} else if r < mix.LocationToID+mix.IDToLocation {
			id := ids[rng.Intn(size)]
			start := time.Now()
			_, err = store.LocationOf(id)
			acc += time.Since(start).Nanoseconds()
		} else {
			id := ids[rng.Intn(size)]
			start := time.Now()
			_, _, err = store.FullLookup(id)
			acc += time.Since(start).Nanoseconds()
		}
		if err != nil {
			return 0, fmt.Errorf("query #%v failed: %w", i, err)
		}
	}
	return float64(acc) / float64(totalQueries) / 1000, nil
}
