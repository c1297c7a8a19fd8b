package minefield

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"minefield/pkg/engine/world"
)

// FloodReveal returns the cells uncovered by revealing start, in reveal order.
// Every unrevealed cell in the 3x3 neighborhood of a zero cell is revealed,
// and expansion continues only through zero cells. isRevealed reports cells
// that were uncovered earlier; they are never returned and never expanded.
// Each position appears at most once.
func (b *Board) FloodReveal(start world.Position, isRevealed func(world.Position) bool) []world.Position {
	if !b.IsValidPosition(start) {
		return nil
	}

	var revealed []world.Position
	visited := mapset.New[world.Position]()

	visit := func(p world.Position) bool {
		if visited.Has(p) {
			return false
		}
		visited.Put(p)
		if isRevealed(p) {
			return false
		}
		revealed = append(revealed, p)
		return true
	}

	visit(start)
	if b.Value(start) != 0 {
		return revealed
	}

	work := stack.New[world.Position]()
	work.Push(start)

	for work.Size() > 0 {
		current := work.Pop()

		b.ForEachNeighbor(current, func(n world.Position) {
			if !visit(n) {
				return
			}
			if b.Value(n) == 0 {
				work.Push(n)
			}
		})
	}

	return revealed
}
