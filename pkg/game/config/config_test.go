package config

import (
	"errors"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
	if c.Rows != 15 || c.Cols != 15 || c.Mines != 20 {
		t.Errorf("Default() = %dx%d/%d, want 15x15/20", c.Rows, c.Cols, c.Mines)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"negative cols", func(c *Config) { c.Cols = -1 }},
		{"negative mines", func(c *Config) { c.Mines = -1 }},
		{"mines fill field", func(c *Config) { c.Mines = c.Cells() }},
		{"mines exceed field", func(c *Config) { c.Mines = c.Cells() + 5 }},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }},
		{"zero min distance", func(c *Config) { c.MinDistance = 0 }},
		{"min distance reaches neighbors", func(c *Config) { c.MinDistance = 1 }},
		{"negative jitter", func(c *Config) { c.Jitter = -0.1 }},
		{"unknown renderer", func(c *Config) { c.Renderer = "sdl" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidate_AcceptsEdgeCounts(t *testing.T) {
	c := Default()
	c.Mines = 0
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() with no mines = %v, want nil", err)
	}
	c.Mines = c.Cells() - 1
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() with cells-1 mines = %v, want nil", err)
	}
}
