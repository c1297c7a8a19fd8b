package minefield

import (
	"fmt"
	"math/rand"
	"sort"

	"minefield/pkg/engine/world"
)

// CellKind is what a reveal uncovers
type CellKind int

const (
	KindEmpty CellKind = iota
	KindMine
)

// String returns the name of the kind
func (k CellKind) String() string {
	if k == KindMine {
		return "Mine"
	}
	return "Empty"
}

// Board is the mine field. It is immutable once built.
type Board struct {
	counts *world.Grid[int]
	mines  []world.Position
}

// NewBoard places count mines on a rows x cols field and computes adjacency
func NewBoard(rng *rand.Rand, rows, cols, count int) (*Board, error) {
	set, err := GenerateMines(rng, rows, cols, count)
	if err != nil {
		return nil, fmt.Errorf("generate %d mines on %dx%d: %w", count, rows, cols, err)
	}

	mines := make([]world.Position, 0, set.Size())
	set.Each(func(p world.Position) {
		mines = append(mines, p)
	})

	return NewBoardWithMines(rows, cols, mines), nil
}

// NewBoardWithMines builds a board from known mine positions.
// Positions outside the field are ignored.
func NewBoardWithMines(rows, cols int, mines []world.Position) *Board {
	b := &Board{counts: world.NewGrid[int](rows, cols)}

	seen := make(map[world.Position]bool, len(mines))
	for _, m := range mines {
		if !b.counts.IsValidPosition(m) || seen[m] {
			continue
		}
		seen[m] = true
		b.mines = append(b.mines, m)
	}
	sortPositions(b.mines)
	b.counts = ComputeAdjacency(rows, cols, b.mines)

	return b
}

// Rows returns the number of rows
func (b *Board) Rows() int {
	return b.counts.Rows()
}

// Cols returns the number of columns
func (b *Board) Cols() int {
	return b.counts.Cols()
}

// Cells returns the number of cells
func (b *Board) Cells() int {
	return b.counts.Len()
}

// IsValidPosition checks if a position lies on the board
func (b *Board) IsValidPosition(pos world.Position) bool {
	return b.counts.IsValidPosition(pos)
}

// Clamp returns the nearest position on the board
func (b *Board) Clamp(pos world.Position) world.Position {
	return b.counts.Clamp(pos)
}

// Value returns the adjacency count at pos, or Mine
func (b *Board) Value(pos world.Position) int {
	return b.counts.Get(pos)
}

// IsMine reports whether pos holds a mine
func (b *Board) IsMine(pos world.Position) bool {
	return b.IsValidPosition(pos) && b.counts.Get(pos) == Mine
}

// Kind returns what revealing pos uncovers
func (b *Board) Kind(pos world.Position) CellKind {
	if b.IsMine(pos) {
		return KindMine
	}
	return KindEmpty
}

// Mines returns the mined positions in row-major order
func (b *Board) Mines() []world.Position {
	out := make([]world.Position, len(b.mines))
	copy(out, b.mines)
	return out
}

// MineCount returns the number of mines
func (b *Board) MineCount() int {
	return len(b.mines)
}

// Glyph returns the display character for pos: the adjacency digit or '*'
func (b *Board) Glyph(pos world.Position) rune {
	v := b.Value(pos)
	if v == Mine {
		return '*'
	}
	return rune('0' + v)
}

// ForEachNeighbor visits the clamped 3x3 neighborhood of pos, including pos
func (b *Board) ForEachNeighbor(pos world.Position, fn func(n world.Position)) {
	b.counts.ForEachNeighbor(pos, fn)
}

// ForEachPosition visits every position in row-major order
func (b *Board) ForEachPosition(fn func(pos world.Position)) {
	b.counts.ForEachPosition(fn)
}

func sortPositions(ps []world.Position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Row != ps[j].Row {
			return ps[i].Row < ps[j].Row
		}
		return ps[i].Col < ps[j].Col
	})
}
