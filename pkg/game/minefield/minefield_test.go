package minefield

import (
	"errors"
	"math/rand"
	"testing"

	"minefield/pkg/engine/world"
)

// bruteForceCount counts mines in the clamped 3x3 neighborhood of pos
func bruteForceCount(rows, cols int, mines map[world.Position]bool, pos world.Position) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			n := world.Position{Row: pos.Row + dr, Col: pos.Col + dc}
			if n.Row < 0 || n.Row >= rows || n.Col < 0 || n.Col >= cols {
				continue
			}
			if mines[n] {
				count++
			}
		}
	}
	return count
}

func TestGenerateMines_CountUniqueInBounds(t *testing.T) {
	tests := []struct {
		rows, cols, count int
	}{
		{15, 15, 20},
		{1, 2, 1},
		{3, 3, 8},
		{15, 15, 224},
		{4, 7, 0},
	}

	for _, tt := range tests {
		rng := rand.New(rand.NewSource(7))
		mines, err := GenerateMines(rng, tt.rows, tt.cols, tt.count)
		if err != nil {
			t.Fatalf("GenerateMines(%d, %d, %d) error = %v", tt.rows, tt.cols, tt.count, err)
		}
		if mines.Size() != tt.count {
			t.Errorf("GenerateMines(%d, %d, %d) size = %d, want %d", tt.rows, tt.cols, tt.count, mines.Size(), tt.count)
		}
		mines.Each(func(p world.Position) {
			if p.Row < 0 || p.Row >= tt.rows || p.Col < 0 || p.Col >= tt.cols {
				t.Errorf("mine %v out of bounds for %dx%d", p, tt.rows, tt.cols)
			}
		})
	}
}

func TestGenerateMines_RejectsDegenerateCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := GenerateMines(rng, 3, 3, 9); !errors.Is(err, ErrTooManyMines) {
		t.Errorf("GenerateMines(3, 3, 9) error = %v, want ErrTooManyMines", err)
	}
	if _, err := GenerateMines(rng, 3, 3, 50); !errors.Is(err, ErrTooManyMines) {
		t.Errorf("GenerateMines(3, 3, 50) error = %v, want ErrTooManyMines", err)
	}
	if _, err := GenerateMines(rng, 3, 3, -1); !errors.Is(err, ErrNegativeMines) {
		t.Errorf("GenerateMines(3, 3, -1) error = %v, want ErrNegativeMines", err)
	}
}

func TestNewBoard_DeterministicForSeed(t *testing.T) {
	a, err := NewBoard(rand.New(rand.NewSource(99)), 15, 15, 20)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewBoard(rand.New(rand.NewSource(99)), 15, 15, 20)
	if err != nil {
		t.Fatal(err)
	}

	am, bm := a.Mines(), b.Mines()
	if len(am) != len(bm) {
		t.Fatalf("mine counts differ: %d vs %d", len(am), len(bm))
	}
	for i := range am {
		if am[i] != bm[i] {
			t.Errorf("mine %d = %v vs %v, want equal for the same seed", i, am[i], bm[i])
		}
	}
}

func TestNewBoard_WrapsError(t *testing.T) {
	_, err := NewBoard(rand.New(rand.NewSource(1)), 2, 2, 4)
	if !errors.Is(err, ErrTooManyMines) {
		t.Errorf("NewBoard(2, 2, 4) error = %v, want ErrTooManyMines", err)
	}
}

func TestComputeAdjacency_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		rows, cols := 5+rng.Intn(12), 5+rng.Intn(12)
		count := rng.Intn(rows * cols / 2)

		b, err := NewBoard(rng, rows, cols, count)
		if err != nil {
			t.Fatal(err)
		}

		mines := make(map[world.Position]bool)
		for _, m := range b.Mines() {
			mines[m] = true
		}

		b.ForEachPosition(func(p world.Position) {
			if mines[p] {
				if got := b.Value(p); got != Mine {
					t.Errorf("seed %d: mine %v value = %d, want Mine", seed, p, got)
				}
				return
			}
			if got, want := b.Value(p), bruteForceCount(rows, cols, mines, p); got != want {
				t.Errorf("seed %d: Value(%v) = %d, want %d", seed, p, got, want)
			}
		})
	}
}

func TestComputeAdjacency_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	set, err := GenerateMines(rng, 10, 10, 30)
	if err != nil {
		t.Fatal(err)
	}
	var mines []world.Position
	set.Each(func(p world.Position) { mines = append(mines, p) })

	want := ComputeAdjacency(10, 10, mines)

	for i := 0; i < 10; i++ {
		shuffled := append([]world.Position(nil), mines...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := ComputeAdjacency(10, 10, shuffled)
		want.ForEachPosition(func(p world.Position) {
			if got.Get(p) != want.Get(p) {
				t.Errorf("shuffle %d: count at %v = %d, want %d", i, p, got.Get(p), want.Get(p))
			}
		})
	}
}

func TestBoard_Glyph(t *testing.T) {
	b := NewBoardWithMines(3, 3, []world.Position{{Row: 0, Col: 0}})
	if g := b.Glyph(world.Position{Row: 0, Col: 0}); g != '*' {
		t.Errorf("Glyph(mine) = %q, want '*'", g)
	}
	if g := b.Glyph(world.Position{Row: 1, Col: 1}); g != '1' {
		t.Errorf("Glyph(1:1) = %q, want '1'", g)
	}
	if g := b.Glyph(world.Position{Row: 2, Col: 2}); g != '0' {
		t.Errorf("Glyph(2:2) = %q, want '0'", g)
	}
	if b.Kind(world.Position{Row: 0, Col: 0}) != KindMine {
		t.Error("Kind(0:0) != KindMine")
	}
}

func TestNewBoardWithMines_DropsInvalidAndDuplicates(t *testing.T) {
	b := NewBoardWithMines(3, 3, []world.Position{
		{Row: 1, Col: 1}, {Row: 1, Col: 1}, {Row: 5, Col: 0},
	})
	if b.MineCount() != 1 {
		t.Errorf("MineCount() = %d, want 1", b.MineCount())
	}
}

func TestBoard_Clamp(t *testing.T) {
	b := NewBoardWithMines(3, 4, nil)

	tests := []struct {
		in, want world.Position
	}{
		{world.Position{Row: 1, Col: 2}, world.Position{Row: 1, Col: 2}},
		{world.Position{Row: -1, Col: 0}, world.Position{Row: 0, Col: 0}},
		{world.Position{Row: 5, Col: -2}, world.Position{Row: 2, Col: 0}},
		{world.Position{Row: 2, Col: 9}, world.Position{Row: 2, Col: 3}},
	}
	for _, tt := range tests {
		if got := b.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
