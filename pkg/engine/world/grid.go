// Package world provides generic 2D grid primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Grid is a dense, fixed-size 2D grid of values addressed by row and column.
type Grid[T any] struct {
	cells []T
	rows  int
	cols  int
}

// NewGrid creates a new grid with the given dimensions, every cell holding the zero value
func NewGrid[T any](rows, cols int) *Grid[T] {
	g := &Grid[T]{}
	g.Build(rows, cols)
	return g
}

// NewGridFunc creates a new grid and initializes every cell with fn
func NewGridFunc[T any](rows, cols int, fn func(pos Position) T) *Grid[T] {
	g := NewGrid[T](rows, cols)
	g.ForEachPosition(func(pos Position) {
		g.Set(pos, fn(pos))
	})
	return g
}

// Build (re)initializes the grid with the given dimensions
func (g *Grid[T]) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([]T, rows*cols)
}

// Rows returns the number of rows in the grid
func (g *Grid[T]) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid[T]) Cols() int {
	return g.cols
}

// Len returns the number of cells in the grid
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// IsValidPosition checks if a position is within grid bounds
func (g *Grid[T]) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.cols
}

// Clamp returns the nearest position inside the grid
func (g *Grid[T]) Clamp(pos Position) Position {
	return Position{
		Row: clamp(pos.Row, 0, g.rows-1),
		Col: clamp(pos.Col, 0, g.cols-1),
	}
}

// Get returns the value at the given position, or the zero value if out of bounds
func (g *Grid[T]) Get(pos Position) T {
	if !g.IsValidPosition(pos) {
		var zero T
		return zero
	}
	return g.cells[g.index(pos)]
}

// At returns a pointer to the value at the given position, or nil if out of bounds
func (g *Grid[T]) At(pos Position) *T {
	if !g.IsValidPosition(pos) {
		return nil
	}
	return &g.cells[g.index(pos)]
}

// Set stores a value at the given position. Returns false if out of bounds.
func (g *Grid[T]) Set(pos Position, v T) bool {
	if !g.IsValidPosition(pos) {
		return false
	}
	g.cells[g.index(pos)] = v
	return true
}

// ForEachPosition iterates over all positions in row-major order
func (g *Grid[T]) ForEachPosition(fn func(pos Position)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(Position{Row: row, Col: col})
		}
	}
}

// ForEachCell iterates over all cells in row-major order, passing a pointer
// so the callback may mutate the cell in place
func (g *Grid[T]) ForEachCell(fn func(pos Position, cell *T)) {
	for i := range g.cells {
		fn(Position{Row: i / g.cols, Col: i % g.cols}, &g.cells[i])
	}
}

// ForEachNeighbor visits the 3x3 neighborhood around pos clamped to the grid
// bounds, including pos itself
func (g *Grid[T]) ForEachNeighbor(pos Position, fn func(n Position)) {
	for row := max(0, pos.Row-1); row <= min(pos.Row+1, g.rows-1); row++ {
		for col := max(0, pos.Col-1); col <= min(pos.Col+1, g.cols-1); col++ {
			fn(Position{Row: row, Col: col})
		}
	}
}

func (g *Grid[T]) index(pos Position) int {
	return pos.Row*g.cols + pos.Col
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
