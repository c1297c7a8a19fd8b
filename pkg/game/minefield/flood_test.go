package minefield

import (
	"testing"

	"minefield/pkg/engine/world"
)

func positionsSet(ps []world.Position) map[world.Position]int {
	out := make(map[world.Position]int, len(ps))
	for _, p := range ps {
		out[p]++
	}
	return out
}

// Field (M = mine), 5x5:
//
//	0 0 0 1 M
//	0 0 0 1 1
//	0 0 0 0 0
//	1 1 0 0 0
//	M 1 0 0 0
func knownBoard() *Board {
	return NewBoardWithMines(5, 5, []world.Position{
		{Row: 0, Col: 4},
		{Row: 4, Col: 0},
	})
}

func TestFloodReveal_KnownZeroRegion(t *testing.T) {
	b := knownBoard()
	never := func(world.Position) bool { return false }

	got := b.FloodReveal(world.Position{Row: 2, Col: 2}, never)

	counts := positionsSet(got)
	for p, n := range counts {
		if n != 1 {
			t.Errorf("%v revealed %d times, want once", p, n)
		}
		if b.IsMine(p) {
			t.Errorf("flood revealed mine %v", p)
		}
	}

	// Every non-mine cell is reachable here
	if len(counts) != 23 {
		t.Errorf("revealed %d cells, want 23", len(counts))
	}
}

func TestFloodReveal_StopsAtNumbers(t *testing.T) {
	// Wall of mines down column 2 splits the field
	b := NewBoardWithMines(3, 5, []world.Position{
		{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2},
	})

	got := positionsSet(b.FloodReveal(world.Position{Row: 1, Col: 0}, func(world.Position) bool { return false }))

	want := []world.Position{
		{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0},
		{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("revealed %d cells (%v), want %d", len(got), got, len(want))
	}
	for _, p := range want {
		if got[p] != 1 {
			t.Errorf("%v not revealed exactly once", p)
		}
	}
}

func TestFloodReveal_NumberedStartRevealsOnlyItself(t *testing.T) {
	b := knownBoard()
	got := b.FloodReveal(world.Position{Row: 1, Col: 3}, func(world.Position) bool { return false })
	if len(got) != 1 || got[0] != (world.Position{Row: 1, Col: 3}) {
		t.Errorf("FloodReveal(1:3) = %v, want only 1:3", got)
	}
}

func TestFloodReveal_SkipsAlreadyRevealed(t *testing.T) {
	b := knownBoard()
	already := map[world.Position]bool{
		{Row: 0, Col: 0}: true,
		{Row: 3, Col: 0}: true,
	}

	got := b.FloodReveal(world.Position{Row: 2, Col: 2}, func(p world.Position) bool { return already[p] })
	for _, p := range got {
		if already[p] {
			t.Errorf("FloodReveal returned already revealed %v", p)
		}
	}
	if len(got) != 21 {
		t.Errorf("revealed %d cells, want 21", len(got))
	}
}

func TestFloodReveal_OutOfBounds(t *testing.T) {
	b := knownBoard()
	if got := b.FloodReveal(world.Position{Row: 9, Col: 9}, func(world.Position) bool { return false }); got != nil {
		t.Errorf("FloodReveal(out of bounds) = %v, want nil", got)
	}
}

func TestFloodReveal_LargeOpenFieldTerminates(t *testing.T) {
	b := NewBoardWithMines(200, 200, nil)
	got := b.FloodReveal(world.Position{Row: 100, Col: 100}, func(world.Position) bool { return false })
	if len(got) != 200*200 {
		t.Errorf("revealed %d cells, want %d", len(got), 200*200)
	}
}
