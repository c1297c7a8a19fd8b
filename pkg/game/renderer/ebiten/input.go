package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "minefield/pkg/engine/input"
)

// keyCodes maps ebiten keys to the device-independent codes used by the bindings
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyH:          "h",
	ebiten.KeyJ:          "j",
	ebiten.KeyK:          "k",
	ebiten.KeyL:          "l",
	ebiten.KeySpace:      "space",
	ebiten.KeyQ:          "q",
	ebiten.KeyEscape:     "escape",
}

// checkInput returns an Intent for every key pressed since the last update,
// in the order ebiten reports them.
func (b *Backend) checkInput() []engineinput.Intent {
	b.keys = inpututil.AppendJustPressedKeys(b.keys[:0])

	var intents []engineinput.Intent
	for _, key := range b.keys {
		code, ok := keyCodes[key]
		if key == ebiten.KeyC && ebiten.IsKeyPressed(ebiten.KeyControl) {
			code, ok = "ctrl_c", true
		}
		if !ok {
			continue
		}

		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device: engineinput.DeviceKeyboard,
			Code:   code,
		}))
		if intent.Action != engineinput.ActionNone {
			intents = append(intents, intent)
		}
	}
	return intents
}

// Layout records the window size in character cells (Ebiten interface).
// The game is resized on the next Update.
func (b *Backend) Layout(outsideWidth, outsideHeight int) (int, int) {
	b.cols = max(outsideWidth/cellWidth, 1)
	b.rows = max(outsideHeight/cellHeight, 1)
	return outsideWidth, outsideHeight
}
