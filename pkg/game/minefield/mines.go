// Package minefield builds the immutable mine field: mine placement,
// adjacency counts and flood reveal.
package minefield

import (
	"errors"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"minefield/pkg/engine/world"
)

// Mine is the adjacency value stored in a mined cell
const Mine = 9

var (
	// ErrTooManyMines is returned when the requested mines would not leave a free cell
	ErrTooManyMines = errors.New("mine count must be less than the number of cells")
	// ErrNegativeMines is returned for a negative mine count
	ErrNegativeMines = errors.New("mine count must not be negative")
)

// GenerateMines samples count distinct positions uniformly, resampling on
// duplicates. Counts that could never terminate are rejected up front.
func GenerateMines(rng *rand.Rand, rows, cols, count int) (mapset.Set[world.Position], error) {
	if count < 0 {
		return mapset.Set[world.Position]{}, ErrNegativeMines
	}
	if count >= rows*cols {
		return mapset.Set[world.Position]{}, ErrTooManyMines
	}

	mines := mapset.New[world.Position]()
	for mines.Size() < count {
		col := rng.Intn(cols)
		row := rng.Intn(rows)
		mines.Put(world.Position{Row: row, Col: col})
	}
	return mines, nil
}

// ComputeAdjacency marks every mine with the Mine sentinel and increments
// each non-mine cell in the clamped 3x3 neighborhood of every mine.
// The result does not depend on the order of mines.
func ComputeAdjacency(rows, cols int, mines []world.Position) *world.Grid[int] {
	counts := world.NewGrid[int](rows, cols)

	for _, m := range mines {
		counts.Set(m, Mine)
	}

	for _, m := range mines {
		counts.ForEachNeighbor(m, func(n world.Position) {
			if v := counts.At(n); *v != Mine {
				*v++
			}
		})
	}

	return counts
}
