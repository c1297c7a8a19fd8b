package explosion

import "minefield/pkg/engine/world"

// Each grid cell occupies a 2x1 character-cell stride on screen
const (
	StrideX = 2
	StrideY = 1
)

// Layout maps grid positions to home screen positions
type Layout struct {
	OriginX int
	OriginY int
}

// CenteredLayout centers a rows x cols grid in a width x height viewport.
// The origin may be negative when the viewport is too small.
func CenteredLayout(width, height, rows, cols int) Layout {
	return Layout{
		OriginX: width/2 - cols*StrideX/2,
		OriginY: height/2 - rows*StrideY/2,
	}
}

// Screen returns the screen cell of a grid position
func (l Layout) Screen(pos world.Position) (x, y int) {
	return l.OriginX + pos.Col*StrideX, l.OriginY + pos.Row*StrideY
}
