package physics

import "testing"

func TestIntegrate(t *testing.T) {
	k := &Kinetic{X: 1, Y: 2, VX: 0.5, VY: -0.25}
	Integrate(k)
	if k.X != 1.5 || k.Y != 1.75 {
		t.Errorf("Integrate position = (%v, %v), want (1.5, 1.75)", k.X, k.Y)
	}
}

func TestDamp(t *testing.T) {
	k := &Kinetic{VX: 2, VY: -4}
	Damp(k, 0.5)
	if k.VX != 1 || k.VY != -2 {
		t.Errorf("Damp velocity = (%v, %v), want (1, -2)", k.VX, k.VY)
	}
}

func TestReflectBounds(t *testing.T) {
	tests := []struct {
		name         string
		k            Kinetic
		wantVX       float64
		wantVY       float64
		wantReflects bool
	}{
		{"inside", Kinetic{X: 5, Y: 5, VX: 1, VY: 1}, 1, 1, false},
		{"left edge", Kinetic{X: 0, Y: 5, VX: -1, VY: 1}, 1, 1, true},
		{"past right", Kinetic{X: 12, Y: 5, VX: 1, VY: 1}, -1, 1, true},
		{"past top", Kinetic{X: 5, Y: -0.5, VX: 1, VY: -2}, 1, 2, true},
		{"bottom edge", Kinetic{X: 5, Y: 10, VX: 1, VY: 3}, 1, -3, true},
		{"corner", Kinetic{X: 10, Y: 0, VX: 1, VY: -1}, -1, 1, true},
		{"past right heading back", Kinetic{X: 10.5, Y: 5, VX: -0.1, VY: 0}, -0.1, 0, false},
		{"past left heading back", Kinetic{X: -0.2, Y: 5, VX: 0.3, VY: 1}, 0.3, 1, false},
		{"past bottom heading back", Kinetic{X: 5, Y: 11, VX: 0, VY: -2}, 0, -2, false},
		{"on edge at rest", Kinetic{X: 0, Y: 10, VX: 0, VY: 0}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := tt.k
			got := ReflectBounds(&k, 10, 10)
			if got != tt.wantReflects {
				t.Errorf("ReflectBounds = %v, want %v", got, tt.wantReflects)
			}
			if k.VX != tt.wantVX || k.VY != tt.wantVY {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", k.VX, k.VY, tt.wantVX, tt.wantVY)
			}
			if k.X != tt.k.X || k.Y != tt.k.Y {
				t.Error("ReflectBounds moved the position")
			}
		})
	}
}

func TestGridPos_TruncatesTowardZero(t *testing.T) {
	tests := []struct {
		x, y   float64
		gx, gy int
	}{
		{3.9, 7.1, 3, 7},
		{-0.5, -1.9, 0, -1},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		k := &Kinetic{X: tt.x, Y: tt.y}
		gx, gy := GridPos(k)
		if gx != tt.gx || gy != tt.gy {
			t.Errorf("GridPos(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, gx, gy, tt.gx, tt.gy)
		}
	}
}

func TestSpeed2(t *testing.T) {
	k := &Kinetic{VX: 3, VY: 4}
	if got := Speed2(k); got != 25 {
		t.Errorf("Speed2 = %v, want 25", got)
	}
	SetImpulse(k, 0, 1)
	if got := Speed2(k); got != 1 {
		t.Errorf("Speed2 after SetImpulse = %v, want 1", got)
	}
}
