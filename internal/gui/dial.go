package gui

import "github.com/bblue/clicker-shipper/internal/catalog"

// Dial is the navigation model behind the radial selector: a stack of item
// pages plus the terminal quantity and rotation interactions. It is pure
// state so the input handling can be tested without a window.
type Dial struct {
	roots  []catalog.Item
	stack  [][]catalog.Item
	cursor int

	qtyActive bool
	qtyItem   catalog.Item
	qty       int

	rotActive bool
	rotItem   catalog.Item
	rotation  int
	target    int
}

// Rotation interaction moves in fixed detents so the target is reachable.
const rotationStepDeg = 15

func NewDial(roots []catalog.Item) *Dial {
	return &Dial{
		roots: roots,
		stack: [][]catalog.Item{roots},
	}
}

// Page is the slice list at the current depth.
func (d *Dial) Page() []catalog.Item {
	return d.stack[len(d.stack)-1]
}

func (d *Dial) Depth() int {
	return len(d.stack) - 1
}

func (d *Dial) Cursor() int {
	return d.cursor
}

// Move steps the cursor around the current page, wrapping.
func (d *Dial) Move(delta int) {
	page := d.Page()
	if len(page) == 0 {
		return
	}
	d.cursor = ((d.cursor+delta)%len(page) + len(page)) % len(page)
}

// Enter descends into a branch, or returns the confirmed leaf.
func (d *Dial) Enter() (catalog.Item, bool) {
	page := d.Page()
	if len(page) == 0 {
		return catalog.Item{}, false
	}
	item := page[d.cursor]
	if !item.IsLeaf() {
		d.stack = append(d.stack, item.Children)
		d.cursor = 0
		return catalog.Item{}, false
	}
	return item, true
}

// Back pops one navigation level and cancels any terminal interaction.
// Returns false at the root.
func (d *Dial) Back() bool {
	if d.qtyActive || d.rotActive {
		d.qtyActive = false
		d.rotActive = false
		return true
	}
	if len(d.stack) <= 1 {
		return false
	}
	d.stack = d.stack[:len(d.stack)-1]
	d.cursor = 0
	return true
}

// Reset pops back to the root and clears terminal state.
func (d *Dial) Reset() {
	d.stack = d.stack[:1]
	d.cursor = 0
	d.qtyActive = false
	d.rotActive = false
}

// BeginQuantity opens the terminal quantity ring for an order placement.
func (d *Dial) BeginQuantity(item catalog.Item, current int) {
	d.qtyActive = true
	d.rotActive = false
	d.qtyItem = item
	d.qty = current
}

func (d *Dial) QuantityActive() bool {
	return d.qtyActive
}

func (d *Dial) Quantity() int {
	return d.qty
}

func (d *Dial) QuantityItem() catalog.Item {
	return d.qtyItem
}

// AdjustQuantity clamps at zero; zero confirms as a removal.
func (d *Dial) AdjustQuantity(delta int) {
	if !d.qtyActive {
		return
	}
	d.qty += delta
	if d.qty < 0 {
		d.qty = 0
	}
}

// ConfirmQuantity closes the ring and yields the placement.
func (d *Dial) ConfirmQuantity() (catalog.Item, int, bool) {
	if !d.qtyActive {
		return catalog.Item{}, 0, false
	}
	d.qtyActive = false
	return d.qtyItem, d.qty, true
}

// BeginRotation opens the repair ring at the puzzle's live angle.
func (d *Dial) BeginRotation(item catalog.Item, current, target int) {
	d.rotActive = true
	d.qtyActive = false
	d.rotItem = item
	d.rotation = current
	d.target = target
}

func (d *Dial) RotationActive() bool {
	return d.rotActive
}

func (d *Dial) Rotation() int {
	return d.rotation
}

func (d *Dial) RotationTarget() int {
	return d.target
}

// AdjustRotation turns the ring one detent, normalised to [0, 360).
func (d *Dial) AdjustRotation(steps int) {
	if !d.rotActive {
		return
	}
	d.rotation = ((d.rotation+steps*rotationStepDeg)%360 + 360) % 360
}

// Aligned reports whether the ring sits on the target detent.
func (d *Dial) Aligned() bool {
	return d.rotActive && d.rotation == d.target
}

// SettleRotation closes the ring, reporting whether it landed on target.
func (d *Dial) SettleRotation() (success bool, ok bool) {
	if !d.rotActive {
		return false, false
	}
	success = d.rotation == d.target
	d.rotActive = false
	return success, true
}
