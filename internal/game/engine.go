package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/bblue/clicker-shipper/internal/catalog"
)

// Mode selects which subsystem dial confirmations are routed to.
type Mode int

const (
	ModeOrders Mode = iota
	ModeReOrient
)

// Flat payout per repaired icon when an arrangement completes.
const perItemReward = 10

const defaultSlotCapacity = 6

// Presenter is the outbound surface to the rendering layer. The engine tells
// it what changed; it never reaches back into engine state except through
// the documented read accessors.
type Presenter interface {
	RedrawSlots(indices []int)
	SlotsRebuilt(order Order)
	ArrangementRebuilt(items []RepairItem)
	ShowRepairDial(view RepairView)
	ResetDial()
	PromptQuantity(item catalog.Item, currentQty int)
	OrderAccepted(revenue, bonus int)
	TotalsChanged(revenue, bonus int)
	ShiftEnded(summary ShiftSummary)
}

// Progression is the cross-shift collaborator that outlives the engine.
type Progression interface {
	AddQuanta(amount int)
	RecordShiftComplete()
	ShiftsCompleted() int
}

// EngineConfig wires one shift's collaborators and pools.
type EngineConfig struct {
	RepairPool    []catalog.Item
	OrderPool     []catalog.Item
	SlotCapacity  int
	ShiftDuration time.Duration
	Seed          int64
	Clock         Clock
	Presenter     Presenter
	Progression   Progression
	// OrderFunc overrides order generation; nil uses GenerateOrder.
	OrderFunc func(rng *rand.Rand, pool []catalog.Item) Order
}

// Engine routes dial signals to the re-orient set and the fulfillment
// tracker, owns the shift accumulators, and regenerates both subsystems on
// their completion events. All methods run synchronously on the caller's
// frame; nothing here is safe for concurrent use.
type Engine struct {
	clock       Clock
	rng         *rand.Rand
	presenter   Presenter
	progression Progression

	mode       Mode
	repair     *ReOrientSet
	repairPool []catalog.Item
	orderPool  []catalog.Item
	tracker    *FulfillmentTracker
	capacity   int
	shift      ShiftState
	ended      bool
	orderFunc  func(rng *rand.Rand, pool []catalog.Item) Order
}

// NewEngine starts a shift: zeroed accumulators, an armed countdown, a first
// order, and a first puzzle arrangement.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if cfg.Presenter == nil {
		return nil, fmt.Errorf("engine: presenter is required")
	}
	if cfg.Progression == nil {
		return nil, fmt.Errorf("engine: progression is required")
	}
	clock := cfg.Clock
	if clock == nil {
		clock = realClock{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = clock.Now().UnixNano()
	}
	capacity := cfg.SlotCapacity
	if capacity <= 0 {
		capacity = defaultSlotCapacity
	}

	rng := seededRNG(seed)
	e := &Engine{
		clock:       clock,
		rng:         rng,
		presenter:   cfg.Presenter,
		progression: cfg.Progression,
		repair:      NewReOrientSet(rng),
		repairPool:  cfg.RepairPool,
		orderPool:   cfg.OrderPool,
		capacity:    capacity,
		shift:       StartShift(clock.Now(), cfg.ShiftDuration),
		orderFunc:   cfg.OrderFunc,
	}
	if e.orderFunc == nil {
		e.orderFunc = GenerateOrder
	}
	e.tracker = NewFulfillmentTracker(e.orderFunc(rng, e.orderPool), capacity)
	e.repair.BuildArrangement(e.repairPool, e.nextArrangementCount())
	return e, nil
}

// SetMode switches the dial routing target. Leaving repair mode cancels any
// open puzzle interaction; placed and solved state is untouched.
func (e *Engine) SetMode(mode Mode) {
	if e.mode == ModeReOrient && mode != ModeReOrient {
		e.repair.ClearCurrent()
	}
	e.mode = mode
}

func (e *Engine) Mode() Mode {
	return e.mode
}

// ItemConfirmed handles a terminal dial selection. In repair mode it targets
// the matching unsolved puzzle; otherwise it asks the presenter to collect a
// quantity for an order placement.
func (e *Engine) ItemConfirmed(item catalog.Item) {
	if e.mode == ModeReOrient {
		view, ok := e.repair.Select(item.IconKey())
		if !ok {
			e.presenter.ResetDial()
			return
		}
		e.presenter.ShowRepairDial(view)
		return
	}
	e.presenter.PromptQuantity(item, e.tracker.PlacedQty(item.IconKey()))
}

// QuantityConfirmed places (or with qty 0 removes) an order line, then
// completes the order if it is now satisfied. Ignored once the shift is over.
func (e *Engine) QuantityConfirmed(item catalog.Item, qty int) {
	if e.shiftOver() {
		return
	}
	changed := e.tracker.Place(item.IconKey(), qty)
	if len(changed) > 0 {
		e.presenter.RedrawSlots(changed)
	}
	if e.tracker.Satisfied() {
		e.completeOrder()
	}
}

// RotationChanged forwards a live dial angle to the current puzzle item.
func (e *Engine) RotationChanged(deg int) {
	e.repair.Rotate(deg)
}

// Settled closes the current puzzle interaction. A fully solved batch pays a
// flat per-item reward and triggers a fresh arrangement. Ignored once the
// shift is over.
func (e *Engine) Settled(success bool) {
	if e.shiftOver() {
		e.repair.ClearCurrent()
		return
	}
	if !e.repair.Settle(success) {
		return
	}
	e.shift.Revenue += e.repair.Len() * perItemReward
	e.presenter.TotalsChanged(e.shift.Revenue, e.shift.Bonus)
	e.repair.BuildArrangement(e.repairPool, e.nextArrangementCount())
	e.presenter.ArrangementRebuilt(e.repair.Items())
}

// GoBack cancels the open interaction without side effects.
func (e *Engine) GoBack() {
	e.repair.ClearCurrent()
}

// Tick polls the shift countdown; called once per frame.
func (e *Engine) Tick(now time.Time) {
	if !e.ended && e.shift.Expired(now) {
		e.EndShift()
	}
}

func (e *Engine) PauseShift() {
	e.shift.Pause(e.clock.Now())
}

func (e *Engine) ResumeShift() {
	e.shift.Resume(e.clock.Now())
}

// EndShift closes out the shift: the bonus is banked as quanta, the shift is
// recorded, and the summary goes to the presenter. Idempotent.
func (e *Engine) EndShift() {
	if e.ended {
		return
	}
	e.ended = true
	e.repair.ClearCurrent()
	e.progression.AddQuanta(e.shift.Bonus)
	e.progression.RecordShiftComplete()
	e.presenter.ShiftEnded(ShiftSummary{
		Revenue:         e.shift.Revenue,
		Bonus:           e.shift.Bonus,
		ShiftsCompleted: e.progression.ShiftsCompleted(),
	})
}

func (e *Engine) Ended() bool {
	return e.ended
}

// Shift returns the current shift accumulators and timer state.
func (e *Engine) Shift() ShiftState {
	return e.shift
}

func (e *Engine) Order() Order {
	return e.tracker.Order()
}

func (e *Engine) Slots() []Slot {
	return e.tracker.Slots()
}

func (e *Engine) SlotStatus(i int) SlotStatus {
	return e.tracker.SlotStatus(i)
}

func (e *Engine) RepairItems() []RepairItem {
	return e.repair.Items()
}

func (e *Engine) CurrentRepair() (RepairView, bool) {
	return e.repair.Current()
}

func (e *Engine) completeOrder() {
	revenue, bonus := e.tracker.Complete()
	if revenue == 0 && bonus == 0 {
		return
	}
	e.shift.Revenue += revenue
	e.shift.Bonus += bonus
	e.presenter.OrderAccepted(revenue, bonus)
	e.presenter.TotalsChanged(e.shift.Revenue, e.shift.Bonus)
	e.tracker = NewFulfillmentTracker(e.orderFunc(e.rng, e.orderPool), e.capacity)
	e.presenter.SlotsRebuilt(e.tracker.Order())
}

func (e *Engine) shiftOver() bool {
	return e.ended || e.shift.Expired(e.clock.Now())
}

// nextArrangementCount picks how many puzzles the next arrangement holds.
func (e *Engine) nextArrangementCount() int {
	return minArrangement + e.rng.IntN(maxArrangement-minArrangement+1)
}
