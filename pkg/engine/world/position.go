package world

import (
	"fmt"
	"math"
)

// Position addresses a cell by row and column
type Position struct {
	Row int
	Col int
}

// Add returns the position offset by the given direction
func (p Position) Add(dir Direction) Position {
	rowDelta, colDelta := dir.Delta()
	return Position{Row: p.Row + rowDelta, Col: p.Col + colDelta}
}

// Distance returns the euclidean distance between two positions in grid units
func (p Position) Distance(o Position) float64 {
	return math.Hypot(float64(p.Row-o.Row), float64(p.Col-o.Col))
}

// String returns the position as "row:col", the same naming the grid uses for cells
func (p Position) String() string {
	return fmt.Sprintf("%v:%v", p.Row, p.Col)
}
