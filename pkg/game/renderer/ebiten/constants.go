// Package ebiten provides an Ebiten-based window backend for minefield.
package ebiten

import "image/color"

// Color palette for the window
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorText       = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
)

// Character cell geometry in pixels. The 7x13 bitmap face gets one pixel of
// padding on each axis.
const (
	cellWidth  = 8
	cellHeight = 14
)

// Initial window size in character cells
const (
	defaultCols = 80
	defaultRows = 30
)

// ticksPerSecond is the ebiten update rate; explosion steps are scaled to it
// by a gameplay.Clock
const ticksPerSecond = 60

const windowTitle = "minefield"
