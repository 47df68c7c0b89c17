package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/bblue/clicker-shipper/internal/game"
)

var (
	colorBG     = rl.NewColor(6, 9, 16, 255)
	colorPanel  = rl.NewColor(12, 18, 32, 255)
	colorBorder = rl.NewColor(40, 120, 220, 255)
	colorText   = rl.NewColor(190, 210, 240, 255)
	colorDim    = rl.NewColor(110, 125, 160, 255)
	colorAccent = rl.NewColor(255, 215, 0, 255)

	colorCorrect   = rl.NewColor(0, 232, 74, 255)
	colorMisplaced = rl.NewColor(255, 215, 0, 255)
	colorWrong     = rl.NewColor(255, 34, 68, 255)

	fillCorrect   = rl.NewColor(0, 58, 26, 255)
	fillMisplaced = rl.NewColor(42, 32, 0, 255)
	fillWrong     = rl.NewColor(42, 0, 17, 255)
)

// slotColors maps a slot status to its fill and stroke.
func slotColors(status game.SlotStatus) (fill, stroke rl.Color) {
	switch status {
	case game.SlotCorrect:
		return fillCorrect, colorCorrect
	case game.SlotMisplaced:
		return fillMisplaced, colorMisplaced
	case game.SlotWrong:
		return fillWrong, colorWrong
	default:
		return colorPanel, colorBorder
	}
}
