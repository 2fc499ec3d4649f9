package main

import (
	"fmt"
	"math/rand"
	"strings"
)

// LabelWidth is the fixed width of every object label. The label content is
// irrelevant to the benchmark; its size stands in for a realistic payload.
const LabelWidth = 128

type Coord struct {
	X, Y int
}

type Object struct {
	ID    int
	Pos   Coord
	Label string
}

type Dataset []Object

func objectLabel(id int) string {
	label := fmt.Sprintf("obj%07d", id)
	return label + strings.Repeat("X", LabelWidth-len(label))
}

// GenerateDataset places n objects at unique random coordinates inside the
// inclusive square [0, grid] x [0, grid]. Coordinates are drawn by rejection
// sampling against the set of already occupied cells, so the same seeded rng
// always yields the same dataset.
//
// The original simulation spins forever once the grid fills up; here the
// impossible case is rejected upfront instead. The check consumes no
// randomness, so feasible inputs generate identical datasets.
func GenerateDataset(n int, grid int, rng *rand.Rand) (Dataset, error) {
	if n < 0 || grid < 0 {
		return nil, fmt.Errorf("dataset parameters must be non-negative: n=%v, grid=%v", n, grid)
	}
	if capacity := (grid + 1) * (grid + 1); n > capacity {
		return nil, fmt.Errorf("cannot place %v objects on a grid with %v cells", n, capacity)
	}
	used := make(map[Coord]struct{}, n)
	ds := make(Dataset, 0, n)
	for id := 0; id < n; id++ {
		var pos Coord
		for {
			pos = Coord{X: rng.Intn(grid + 1), Y: rng.Intn(grid + 1)}
			if _, occupied := used[pos]; !occupied {
				used[pos] = struct{}{}
				break
			}
		}
		ds = append(ds, Object{ID: id, Pos: pos, Label: objectLabel(id)})
	}
	return ds, nil
}
