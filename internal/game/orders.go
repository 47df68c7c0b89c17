package game

import "math"

// SlotStatus classifies one fulfillment slot against the active order.
type SlotStatus int

const (
	SlotEmpty SlotStatus = iota
	SlotCorrect
	SlotMisplaced
	SlotWrong
)

func (s SlotStatus) String() string {
	switch s {
	case SlotEmpty:
		return "empty"
	case SlotCorrect:
		return "correct"
	case SlotMisplaced:
		return "misplaced"
	case SlotWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// Requirement is one icon+quantity pair the order demands. Its index in the
// order fixes where a placement counts as correct.
type Requirement struct {
	IconKey  string
	Quantity int
}

// Order is the active requirement list and the reward for filling it.
type Order struct {
	Requirements []Requirement
	Budget       int
}

// Slot holds one placement. An empty icon key marks an empty slot, and empty
// slots always trail the filled ones.
type Slot struct {
	IconKey   string
	PlacedQty int
}

// FulfillmentTracker maintains the fixed-capacity slot sequence for one order.
type FulfillmentTracker struct {
	order Order
	slots []Slot
}

func NewFulfillmentTracker(order Order, capacity int) *FulfillmentTracker {
	if capacity < 0 {
		capacity = 0
	}
	return &FulfillmentTracker{
		order: order,
		slots: make([]Slot, capacity),
	}
}

func (t *FulfillmentTracker) Order() Order {
	return t.order
}

// Slots returns a copy of the slot sequence.
func (t *FulfillmentTracker) Slots() []Slot {
	out := make([]Slot, len(t.slots))
	copy(out, t.slots)
	return out
}

// SlotStatus classifies slot i. A filled slot is wrong when its icon is not
// in the order or its quantity differs; a matching pair is correct only at
// the requirement's own index, misplaced anywhere else.
func (t *FulfillmentTracker) SlotStatus(i int) SlotStatus {
	if i < 0 || i >= len(t.slots) || t.slots[i].IconKey == "" {
		return SlotEmpty
	}
	slot := t.slots[i]
	idx := -1
	for r, req := range t.order.Requirements {
		if req.IconKey == slot.IconKey {
			idx = r
			break
		}
	}
	if idx == -1 {
		return SlotWrong
	}
	if t.order.Requirements[idx].Quantity != slot.PlacedQty {
		return SlotWrong
	}
	if idx == i {
		return SlotCorrect
	}
	return SlotMisplaced
}

// Place applies one dial confirmation and returns the indices whose display
// changed. Quantity zero removes the icon's slot and left-compacts the rest;
// a known icon is overwritten in place; a new icon takes the first empty
// slot, or is silently rejected when the sequence is full.
func (t *FulfillmentTracker) Place(iconKey string, qty int) []int {
	if iconKey == "" {
		return nil
	}
	existing := t.indexOf(iconKey)

	if qty <= 0 {
		if existing == -1 {
			return nil
		}
		for i := existing; i < len(t.slots)-1; i++ {
			t.slots[i] = t.slots[i+1]
		}
		t.slots[len(t.slots)-1] = Slot{}
		changed := make([]int, 0, len(t.slots)-existing)
		for i := existing; i < len(t.slots); i++ {
			changed = append(changed, i)
		}
		return changed
	}

	if existing != -1 {
		t.slots[existing].PlacedQty = qty
		return []int{existing}
	}

	empty := t.firstEmpty()
	if empty == -1 {
		return nil
	}
	t.slots[empty] = Slot{IconKey: iconKey, PlacedQty: qty}
	return []int{empty}
}

// Satisfied reports whether the order can be handed over: no slot is wrong
// and every requirement is covered by some slot with the exact quantity.
// Slot order does not matter here.
func (t *FulfillmentTracker) Satisfied() bool {
	for i := range t.slots {
		if t.SlotStatus(i) == SlotWrong {
			return false
		}
	}
	for _, req := range t.order.Requirements {
		met := false
		for _, slot := range t.slots {
			if slot.IconKey == req.IconKey && slot.PlacedQty == req.Quantity {
				met = true
				break
			}
		}
		if !met {
			return false
		}
	}
	return true
}

// PerfectPlacement reports whether every filled slot classifies as correct,
// the stricter positional condition behind the completion bonus.
func (t *FulfillmentTracker) PerfectPlacement() bool {
	filled := 0
	for i := range t.slots {
		switch t.SlotStatus(i) {
		case SlotEmpty:
		case SlotCorrect:
			filled++
		default:
			return false
		}
	}
	return filled > 0
}

// Complete pays out a satisfied order: revenue is the full budget, and the
// bonus is half the budget when placement was positionally perfect. Returns
// zeros when the order is not satisfied. The caller discards this tracker
// and generates the next order.
func (t *FulfillmentTracker) Complete() (revenue, bonus int) {
	if !t.Satisfied() {
		return 0, 0
	}
	revenue = t.order.Budget
	if t.PerfectPlacement() {
		bonus = int(math.Round(float64(t.order.Budget) * 0.5))
	}
	return revenue, bonus
}

func (t *FulfillmentTracker) indexOf(iconKey string) int {
	for i, slot := range t.slots {
		if slot.IconKey == iconKey {
			return i
		}
	}
	return -1
}

func (t *FulfillmentTracker) firstEmpty() int {
	for i, slot := range t.slots {
		if slot.IconKey == "" {
			return i
		}
	}
	return -1
}

// PlacedQty returns the quantity currently placed for an icon, zero when the
// icon holds no slot.
func (t *FulfillmentTracker) PlacedQty(iconKey string) int {
	if i := t.indexOf(iconKey); i != -1 {
		return t.slots[i].PlacedQty
	}
	return 0
}
