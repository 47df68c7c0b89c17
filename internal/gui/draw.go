package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/bblue/clicker-shipper/internal/game"
)

func (ui *gameUI) draw(now time.Time) {
	switch ui.screen {
	case screenMenu:
		ui.drawMenu()
	case screenShift:
		ui.drawShift(now)
	case screenEndShift:
		ui.drawEndShift()
	case screenError:
		ui.drawError()
	}
}

func (ui *gameUI) drawMenu() {
	rl.DrawText("CLICKER SHIPPER", 40, 40, 40, colorAccent)
	rl.DrawText(ui.cfg.Version, 40, 86, 16, colorDim)
	rl.DrawText(fmt.Sprintf("QUANTA BANKED: Q%d   SHIFTS: %d",
		ui.progress.Quanta(), ui.progress.ShiftsCompleted()), 40, 120, 20, colorText)

	for i, label := range menuLabels {
		y := int32(190 + i*56)
		r := rl.NewRectangle(40, float32(y), 320, 44)
		if i == ui.menuCursor {
			rl.DrawRectangleRounded(r, 0.3, 8, rl.Fade(colorAccent, 0.2))
			rl.DrawRectangleRoundedLinesEx(r, 0.3, 8, 2, colorAccent)
			rl.DrawText(label, 58, y+11, 22, colorAccent)
		} else {
			rl.DrawRectangleRounded(r, 0.3, 8, rl.Fade(colorPanel, 0.7))
			rl.DrawRectangleRoundedLinesEx(r, 0.3, 8, 1.5, colorBorder)
			rl.DrawText(label, 58, y+11, 22, colorText)
		}
	}
	rl.DrawText("UP/DOWN select, ENTER confirm", 40, ui.height-40, 16, colorDim)
}

func (ui *gameUI) drawShift(now time.Time) {
	panelW := ui.width/2 - 40
	panelH := ui.height - 60
	panel := rl.NewRectangle(20, 30, float32(panelW), float32(panelH))
	rl.DrawRectangleRec(panel, rl.Fade(colorPanel, 0.85))
	rl.DrawRectangleLinesEx(panel, 2, colorBorder)

	title := "REPAIR"
	if ui.tab == tabOrders {
		title = "ORDERS"
	}
	rl.DrawText(title, int32(panel.X)+60, int32(panel.Y)+10, 22, colorText)

	ui.drawShiftTimer(now, int32(panel.X)+30, int32(panel.Y)+22)
	ui.drawTotals(int32(panel.X)+12, int32(panel.Y)+44)

	body := game.Bounds{
		CX: float64(panel.X + panel.Width/2),
		CY: float64(panel.Y + panel.Height/2 + 40),
		W:  float64(panel.Width - 24),
		H:  float64(panel.Height - 140),
	}
	if ui.tab == tabRepair {
		ui.drawRepairGrid(body)
	} else {
		ui.drawOrderPanel(panel)
	}

	ui.drawDialColumn()

	if ui.status != "" {
		rl.DrawText(ui.status, 20, ui.height-26, 16, colorAccent)
	}
	if ui.acceptTimer > 0 {
		rl.DrawText("ORDER ACCEPTED", int32(panel.X+panel.Width/2)-90,
			int32(panel.Y+panel.Height/2), 24, colorCorrect)
	}
	if ui.engine.Shift().Paused {
		rl.DrawText("PAUSED", ui.width/2-40, 6, 20, colorWarnText())
	}
}

func colorWarnText() rl.Color {
	return rl.NewColor(255, 198, 96, 255)
}

func (ui *gameUI) drawShiftTimer(now time.Time, x, y int32) {
	shift := ui.engine.Shift()
	if shift.Duration <= 0 {
		return
	}
	fraction := float32(shift.Elapsed(now)) / float32(shift.Duration)
	if fraction > 1 {
		fraction = 1
	}
	const r = 12
	rl.DrawCircle(x, y, r, colorPanel)
	rl.DrawCircleLines(x, y, r, colorBorder)
	if fraction > 0 {
		rl.DrawCircleSector(rl.NewVector2(float32(x), float32(y)), r,
			-90, -90+360*fraction, 32, rl.Fade(colorCorrect, 0.85))
	}
}

func (ui *gameUI) drawTotals(x, y int32) {
	shift := ui.engine.Shift()
	size := int32(16)
	if ui.totalsPulse > 0 {
		size = 20
	}
	rl.DrawText("REV", x, y, 14, colorDim)
	rl.DrawText(fmt.Sprintf("Q%d", shift.Revenue), x+40, y, size, colorAccent)
	rl.DrawText("BONUS", x+130, y, 14, colorDim)
	rl.DrawText(fmt.Sprintf("Q%d", shift.Bonus), x+190, y, size, colorAccent)
}

func (ui *gameUI) drawRepairGrid(bounds game.Bounds) {
	items := ui.engine.RepairItems()
	grid := game.GridLayout(len(items), bounds)
	current, hasCurrent := ui.engine.CurrentRepair()

	for i, it := range items {
		if i >= len(grid.Cells) {
			break
		}
		cell := grid.Cells[i]
		radius := float32(grid.IconSize/2 + 2)
		center := rl.NewVector2(float32(cell.X), float32(cell.Y))

		ring := colorBorder
		if it.Solved {
			ring = colorCorrect
		} else if hasCurrent && it.IconKey == current.IconKey {
			ring = colorAccent
		}
		rl.DrawCircleLinesV(center, radius, ring)

		// Tick mark showing the icon's live angle.
		angle := float32(it.CurrentRotationDeg)
		tip := rl.Vector2Add(center, rl.Vector2Rotate(rl.NewVector2(0, -radius+3), angle*rl.Deg2rad))
		rl.DrawLineEx(center, tip, 2, ring)

		label := it.IconKey
		if len(label) > 8 {
			label = label[:8]
		}
		rl.DrawText(label, int32(cell.X)-int32(grid.CellSize/2)+4,
			int32(cell.Y)+int32(radius)+4, 10, colorDim)
	}
	ui.drawGridBrackets(bounds, grid)
}

// drawGridBrackets frames the arrangement with L-shaped corner marks.
func (ui *gameUI) drawGridBrackets(bounds game.Bounds, grid game.Grid) {
	const arm, pad = 14, 10
	left := float32(bounds.CX - grid.Width/2 - pad)
	right := float32(bounds.CX + grid.Width/2 + pad)
	top := float32(bounds.CY - grid.Height/2 - pad)
	bot := float32(bounds.CY + grid.Height/2 + pad)

	corners := [][4]float32{
		{left, top, 1, 1},
		{right, top, -1, 1},
		{left, bot, 1, -1},
		{right, bot, -1, -1},
	}
	for _, c := range corners {
		bx, by, dx, dy := c[0], c[1], c[2], c[3]
		rl.DrawLineEx(rl.NewVector2(bx+dx*arm, by), rl.NewVector2(bx, by), 2, colorCorrect)
		rl.DrawLineEx(rl.NewVector2(bx, by), rl.NewVector2(bx, by+dy*arm), 2, colorCorrect)
	}
}

func (ui *gameUI) drawOrderPanel(panel rl.Rectangle) {
	order := ui.engine.Order()
	y := int32(panel.Y) + 76
	rl.DrawText(fmt.Sprintf("ORDER — BUDGET Q%d", order.Budget), int32(panel.X)+12, y, 16, colorText)
	y += 24
	for i, req := range order.Requirements {
		rl.DrawText(fmt.Sprintf("%d. %s x%d", i+1, req.IconKey, req.Quantity),
			int32(panel.X)+16, y, 14, colorDim)
		y += 18
	}

	slots := ui.engine.Slots()
	const size, gap = 56, 10
	startX := int32(panel.X) + 16
	slotY := y + 16
	for i, slot := range slots {
		x := startX + int32(i%4)*(size+gap)
		sy := slotY + int32(i/4)*(size+gap)
		fill, stroke := slotColors(ui.engine.SlotStatus(i))
		if _, flashing := ui.flashSlots[i]; flashing {
			fill = rl.Fade(stroke, 0.35)
		}
		rl.DrawRectangle(x, sy, size, size, fill)
		rl.DrawRectangleLines(x, sy, size, size, stroke)
		if slot.IconKey == "" {
			continue
		}
		label := slot.IconKey
		if len(label) > 7 {
			label = label[:7]
		}
		rl.DrawText(label, x+4, sy+6, 10, colorText)
		rl.DrawText(fmt.Sprintf("x%d", slot.PlacedQty), x+4, sy+size-16, 12, stroke)
	}
}

func (ui *gameUI) drawDialColumn() {
	x := ui.width/2 + 20
	w := ui.width/2 - 40
	panel := rl.NewRectangle(float32(x), 30, float32(w), float32(ui.height-60))
	rl.DrawRectangleRec(panel, rl.Fade(colorPanel, 0.65))
	rl.DrawRectangleLinesEx(panel, 2, colorBorder)

	switch {
	case ui.searching:
		rl.DrawText("SEARCH: "+ui.searchQuery+"_", x+16, 44, 20, colorAccent)
		rl.DrawText("ENTER confirm best match, ESC cancel", x+16, 74, 14, colorDim)
	case ui.dial.RotationActive():
		rl.DrawText("ALIGN THE COMPONENT", x+16, 44, 20, colorText)
		rl.DrawText(fmt.Sprintf("ANGLE %d  TARGET %d", ui.dial.Rotation(), ui.dial.RotationTarget()),
			x+16, 74, 18, colorAccent)
		if ui.dial.Aligned() {
			rl.DrawText("LOCKED — ENTER to settle", x+16, 100, 16, colorCorrect)
		} else {
			rl.DrawText("wheel/arrows rotate, ENTER settles, BACKSPACE abandons", x+16, 100, 13, colorDim)
		}
	case ui.dial.QuantityActive():
		item := ui.dial.QuantityItem()
		rl.DrawText("QUANTITY: "+item.DisplayName(), x+16, 44, 20, colorText)
		rl.DrawText(fmt.Sprintf("x%d", ui.dial.Quantity()), x+16, 74, 26, colorAccent)
		rl.DrawText("0 removes the placement", x+16, 108, 13, colorDim)
	default:
		rl.DrawText(fmt.Sprintf("DIAL — LEVEL %d", ui.dial.Depth()), x+16, 44, 18, colorText)
		for i, item := range ui.dial.Page() {
			y := int32(76 + i*24)
			label := item.DisplayName()
			if i == ui.dial.Cursor() {
				rl.DrawText("> "+label, x+16, y, 18, colorAccent)
			} else {
				rl.DrawText("  "+label, x+16, y, 18, colorText)
			}
		}
		rl.DrawText("TAB mode, / search, P pause, ESC end shift", x+16, ui.height-50, 13, colorDim)
	}
}

func (ui *gameUI) drawEndShift() {
	rl.DrawText("SHIFT COMPLETE", 40, 60, 36, colorCorrect)
	rl.DrawText(fmt.Sprintf("REVENUE   Q%d", ui.summary.Revenue), 40, 130, 24, colorText)
	rl.DrawText(fmt.Sprintf("BONUS     Q%d", ui.summary.Bonus), 40, 164, 24, colorAccent)
	rl.DrawText(fmt.Sprintf("SHIFTS COMPLETED  %d", ui.summary.ShiftsCompleted), 40, 198, 24, colorText)
	rl.DrawText("ENTER — back to menu", 40, ui.height-50, 16, colorDim)
}

func (ui *gameUI) drawError() {
	rl.DrawText("ERROR LOADING GAME DATA", 40, 60, 28, colorWrong)
	if ui.loadErr != nil {
		rl.DrawText(ui.loadErr.Error(), 40, 110, 16, colorText)
	}
	rl.DrawText("ENTER/ESC — quit", 40, ui.height-50, 16, colorDim)
}
