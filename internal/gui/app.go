package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/bblue/clicker-shipper/internal/catalog"
	"github.com/bblue/clicker-shipper/internal/game"
	"github.com/bblue/clicker-shipper/internal/progression"
	"github.com/bblue/clicker-shipper/internal/settings"
)

type AppConfig struct {
	Version     string
	DataDir     string
	CatalogPath string
	Seed        int64
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

type screen int

const (
	screenMenu screen = iota
	screenShift
	screenEndShift
	screenError
)

type tab int

const (
	tabRepair tab = iota
	tabOrders
)

type gameUI struct {
	cfg AppConfig

	width  int32
	height int32
	quit   bool

	screen screen
	tab    tab

	items    []catalog.Item
	prefs    settings.Settings
	progress *progression.Store

	engine *game.Engine
	dial   *Dial

	status      string
	loadErr     error
	summary     game.ShiftSummary
	flashSlots  map[int]float32
	acceptTimer float32
	totalsPulse float32

	searching   bool
	searchQuery string

	menuCursor int
	lastTick   time.Time
}

func (a *App) Run() error {
	ui, err := newGameUI(a.cfg)
	if err != nil {
		return err
	}
	return ui.Run()
}

func newGameUI(cfg AppConfig) (*gameUI, error) {
	ui := &gameUI{
		cfg:        cfg,
		width:      1024,
		height:     640,
		screen:     screenMenu,
		flashSlots: map[int]float32{},
	}

	prefs, err := settings.Load(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	ui.prefs = prefs

	progress, err := progression.Open(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open progression: %w", err)
	}
	ui.progress = progress

	if cfg.CatalogPath != "" {
		items, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			// Catalog problems are a visible error state, not a crash.
			ui.screen = screenError
			ui.loadErr = err
			return ui, nil
		}
		ui.items = items
	} else {
		ui.items = catalog.Builtin()
	}
	return ui, nil
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "clicker-shipper")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	ui.lastTick = time.Now()
	for !ui.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := float32(now.Sub(ui.lastTick).Seconds())
		if delta < 0 {
			delta = 0
		}
		ui.lastTick = now

		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update(now, delta)

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw(now)
		rl.EndDrawing()
	}
	rl.CloseWindow()

	if err := ui.progress.Save(); err != nil {
		return fmt.Errorf("save progression: %w", err)
	}
	return settings.Save(ui.cfg.DataDir, ui.prefs)
}

func (ui *gameUI) update(now time.Time, delta float32) {
	for i, left := range ui.flashSlots {
		left -= delta
		if left <= 0 {
			delete(ui.flashSlots, i)
			continue
		}
		ui.flashSlots[i] = left
	}
	if ui.acceptTimer > 0 {
		ui.acceptTimer -= delta
	}
	if ui.totalsPulse > 0 {
		ui.totalsPulse -= delta
	}

	switch ui.screen {
	case screenMenu:
		ui.updateMenu()
	case screenShift:
		ui.engine.Tick(now)
		if !ui.engine.Ended() {
			ui.updateShift()
		}
	case screenEndShift:
		if rl.IsKeyPressed(rl.KeyEnter) {
			ui.screen = screenMenu
		}
	case screenError:
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyEscape) {
			ui.quit = true
		}
	}
}

// ── Menu ──

var menuLabels = []string{"START SHIFT", "QUIT"}

func (ui *gameUI) updateMenu() {
	if rl.IsKeyPressed(rl.KeyDown) {
		ui.menuCursor = (ui.menuCursor + 1) % len(menuLabels)
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.menuCursor = (ui.menuCursor + len(menuLabels) - 1) % len(menuLabels)
	}
	if !rl.IsKeyPressed(rl.KeyEnter) {
		return
	}
	switch ui.menuCursor {
	case 0:
		ui.startShift()
	case 1:
		ui.quit = true
	}
}

func (ui *gameUI) startShift() {
	pool := ui.repairPool()
	engine, err := game.NewEngine(game.EngineConfig{
		RepairPool:    pool,
		OrderPool:     pool,
		SlotCapacity:  ui.prefs.SlotCapacity,
		ShiftDuration: ui.prefs.ShiftDuration,
		Seed:          ui.cfg.Seed,
		Presenter:     ui,
		Progression:   ui.progress,
	})
	if err != nil {
		ui.screen = screenError
		ui.loadErr = err
		return
	}
	ui.engine = engine
	ui.dial = NewDial(ui.unlockedRoots())
	ui.tab = tabRepair
	ui.engine.SetMode(game.ModeReOrient)
	ui.status = ""
	ui.searching = false
	ui.screen = screenShift
}

// repairPool flattens the first unlocked category into puzzle candidates,
// falling back to every leaf in the catalog.
func (ui *gameUI) repairPool() []catalog.Item {
	unlocked := ui.progress.UnlockedCategories()
	if len(unlocked) > 0 {
		if root, ok := catalog.FindRoot(ui.items, unlocked[0]); ok {
			if leaves := catalog.Leaves(root.Children); len(leaves) > 0 {
				return leaves
			}
		}
	}
	return catalog.Leaves(ui.items)
}

func (ui *gameUI) unlockedRoots() []catalog.Item {
	var roots []catalog.Item
	for _, id := range ui.progress.UnlockedCategories() {
		if root, ok := catalog.FindRoot(ui.items, id); ok {
			roots = append(roots, root)
		}
	}
	if len(roots) == 0 {
		roots = ui.items
	}
	return roots
}

// ── Shift input ──

func (ui *gameUI) updateShift() {
	if ui.searching {
		ui.updateSearch()
		return
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		ui.switchTab()
		return
	}
	if rl.IsKeyPressed(rl.KeySlash) {
		ui.searching = true
		ui.searchQuery = ""
		return
	}
	if rl.IsKeyPressed(rl.KeyP) {
		if ui.engine.Shift().Paused {
			ui.engine.ResumeShift()
		} else {
			ui.engine.PauseShift()
		}
		return
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.engine.EndShift()
		return
	}

	switch {
	case ui.dial.RotationActive():
		ui.updateRotationRing()
	case ui.dial.QuantityActive():
		ui.updateQuantityRing()
	default:
		ui.updateNavigation()
	}
}

func (ui *gameUI) switchTab() {
	if ui.tab == tabRepair {
		ui.tab = tabOrders
		ui.engine.SetMode(game.ModeOrders)
	} else {
		ui.tab = tabRepair
		ui.engine.SetMode(game.ModeReOrient)
	}
	ui.dial.Reset()
}

func (ui *gameUI) updateNavigation() {
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyDown) {
		ui.dial.Move(1)
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyUp) {
		ui.dial.Move(-1)
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		if ui.dial.Back() {
			ui.engine.GoBack()
		}
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		if item, ok := ui.dial.Enter(); ok {
			ui.engine.ItemConfirmed(item)
		}
	}
}

func (ui *gameUI) updateQuantityRing() {
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyUp) {
		ui.dial.AdjustQuantity(1)
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyDown) {
		ui.dial.AdjustQuantity(-1)
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		ui.dial.Back()
		ui.engine.GoBack()
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		if item, qty, ok := ui.dial.ConfirmQuantity(); ok {
			ui.engine.QuantityConfirmed(item, qty)
		}
	}
}

func (ui *gameUI) updateRotationRing() {
	steps := int(rl.GetMouseWheelMove())
	if rl.IsKeyPressed(rl.KeyRight) {
		steps++
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		steps--
	}
	if steps != 0 {
		ui.dial.AdjustRotation(steps)
		ui.engine.RotationChanged(ui.dial.Rotation())
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		ui.dial.Back()
		ui.engine.GoBack()
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		if success, ok := ui.dial.SettleRotation(); ok {
			ui.engine.Settled(success)
		}
	}
}

func (ui *gameUI) updateSearch() {
	for r := rl.GetCharPressed(); r > 0; r = rl.GetCharPressed() {
		if r >= 32 && r < 127 {
			ui.searchQuery += string(rune(r))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(ui.searchQuery) > 0 {
		ui.searchQuery = ui.searchQuery[:len(ui.searchQuery)-1]
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.searching = false
		return
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		matches := catalog.Search(ui.items, ui.searchQuery, 1)
		ui.searching = false
		if len(matches) == 0 {
			ui.status = "NO MATCH: " + ui.searchQuery
			return
		}
		ui.engine.ItemConfirmed(matches[0].Item)
	}
}

// ── Presenter ──

func (ui *gameUI) RedrawSlots(indices []int) {
	for _, i := range indices {
		ui.flashSlots[i] = 0.5
	}
}

func (ui *gameUI) SlotsRebuilt(order game.Order) {
	ui.flashSlots = map[int]float32{}
	ui.dial.Reset()
}

func (ui *gameUI) ArrangementRebuilt(items []game.RepairItem) {
	ui.dial.Reset()
	ui.status = fmt.Sprintf("FRAME REPAIRED — %d NEW FAULTS", len(items))
}

func (ui *gameUI) ShowRepairDial(view game.RepairView) {
	ui.dial.BeginRotation(catalog.Item{ID: view.IconKey, Icon: view.IconKey},
		view.CurrentRotationDeg, view.TargetRotationDeg)
}

func (ui *gameUI) ResetDial() {
	ui.dial.Reset()
	ui.status = "NO MATCHING FAULT"
}

func (ui *gameUI) PromptQuantity(item catalog.Item, currentQty int) {
	ui.dial.BeginQuantity(item, currentQty)
}

func (ui *gameUI) OrderAccepted(revenue, bonus int) {
	ui.acceptTimer = 1.2
	if bonus > 0 {
		ui.status = fmt.Sprintf("ORDER ACCEPTED +Q%d (BONUS Q%d)", revenue, bonus)
	} else {
		ui.status = fmt.Sprintf("ORDER ACCEPTED +Q%d", revenue)
	}
}

func (ui *gameUI) TotalsChanged(revenue, bonus int) {
	ui.totalsPulse = 0.3
}

func (ui *gameUI) ShiftEnded(summary game.ShiftSummary) {
	ui.summary = summary
	ui.screen = screenEndShift
}
