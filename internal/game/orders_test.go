package game

import "testing"

func twoLineOrder() Order {
	return Order{
		Requirements: []Requirement{
			{IconKey: "A", Quantity: 2},
			{IconKey: "B", Quantity: 1},
		},
		Budget: 40,
	}
}

func TestSlotStatusClassification(t *testing.T) {
	tests := []struct {
		name   string
		places [][2]any // iconKey, qty — applied in order
		index  int
		want   SlotStatus
	}{
		{
			name:   "Empty Slot",
			places: nil,
			index:  0,
			want:   SlotEmpty,
		},
		{
			name:   "Correct At Requirement Index",
			places: [][2]any{{"A", 2}},
			index:  0,
			want:   SlotCorrect,
		},
		{
			name:   "Misplaced Pair At Other Index",
			places: [][2]any{{"B", 1}, {"A", 2}},
			index:  1,
			want:   SlotMisplaced,
		},
		{
			name:   "Unknown Icon Is Wrong",
			places: [][2]any{{"C", 1}},
			index:  0,
			want:   SlotWrong,
		},
		{
			name:   "Quantity Mismatch Is Wrong",
			places: [][2]any{{"A", 3}},
			index:  0,
			want:   SlotWrong,
		},
		{
			name:   "Misplaced Requirement At Slot Zero",
			places: [][2]any{{"B", 1}},
			index:  0,
			want:   SlotMisplaced,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewFulfillmentTracker(twoLineOrder(), 4)
			for _, p := range tc.places {
				tr.Place(p[0].(string), p[1].(int))
			}
			if got := tr.SlotStatus(tc.index); got != tc.want {
				t.Fatalf("SlotStatus(%d) = %v, want %v", tc.index, got, tc.want)
			}
		})
	}
}

func TestPlaceOverwritesInPlace(t *testing.T) {
	tr := NewFulfillmentTracker(twoLineOrder(), 4)
	tr.Place("A", 1)
	tr.Place("B", 1)

	changed := tr.Place("A", 2)
	if len(changed) != 1 || changed[0] != 0 {
		t.Fatalf("changed = %v, want [0]", changed)
	}
	slots := tr.Slots()
	if slots[0].IconKey != "A" || slots[0].PlacedQty != 2 {
		t.Errorf("slot 0 = %+v, want A qty 2", slots[0])
	}
	if slots[1].IconKey != "B" {
		t.Errorf("overwrite moved slot 1: %+v", slots[1])
	}
}

func TestPlaceRejectsWhenFull(t *testing.T) {
	tr := NewFulfillmentTracker(twoLineOrder(), 2)
	tr.Place("A", 2)
	tr.Place("B", 1)

	if changed := tr.Place("C", 1); changed != nil {
		t.Fatalf("placement into full sequence changed %v", changed)
	}
	slots := tr.Slots()
	if slots[0].IconKey != "A" || slots[1].IconKey != "B" {
		t.Errorf("full-sequence placement mutated slots: %+v", slots)
	}
}

func TestRemoveCompactsLeft(t *testing.T) {
	tr := NewFulfillmentTracker(twoLineOrder(), 4)
	tr.Place("A", 2)
	tr.Place("B", 1)
	tr.Place("C", 3)

	changed := tr.Place("A", 0)
	if len(changed) != 4 {
		t.Fatalf("removal redrew %v, want all of [0 1 2 3]", changed)
	}
	slots := tr.Slots()
	want := []Slot{{IconKey: "B", PlacedQty: 1}, {IconKey: "C", PlacedQty: 3}, {}, {}}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d = %+v, want %+v", i, slots[i], want[i])
		}
	}
}

func TestRemoveUnknownIconIsNoOp(t *testing.T) {
	tr := NewFulfillmentTracker(twoLineOrder(), 4)
	tr.Place("A", 2)
	if changed := tr.Place("Z", 0); changed != nil {
		t.Fatalf("removal of unknown icon changed %v", changed)
	}
}

func TestFilledPrefixInvariant(t *testing.T) {
	tr := NewFulfillmentTracker(twoLineOrder(), 5)
	ops := []struct {
		icon string
		qty  int
	}{
		{"A", 2}, {"B", 1}, {"C", 4}, {"B", 0}, {"D", 2},
		{"A", 0}, {"E", 1}, {"C", 2}, {"D", 0}, {"C", 0},
	}
	for _, op := range ops {
		tr.Place(op.icon, op.qty)
		slots := tr.Slots()
		seenEmpty := false
		for i, slot := range slots {
			if slot.IconKey == "" {
				if slot.PlacedQty != 0 {
					t.Fatalf("after (%s,%d): empty slot %d has qty %d", op.icon, op.qty, i, slot.PlacedQty)
				}
				seenEmpty = true
				continue
			}
			if seenEmpty {
				t.Fatalf("after (%s,%d): filled slot %d behind an empty slot: %+v", op.icon, op.qty, i, slots)
			}
		}
	}
}

func TestSatisfiedIgnoresSlotOrder(t *testing.T) {
	tr := NewFulfillmentTracker(twoLineOrder(), 4)
	tr.Place("B", 1)
	tr.Place("A", 2)

	if !tr.Satisfied() {
		t.Fatal("swapped but complete placement not satisfied")
	}
	if tr.PerfectPlacement() {
		t.Error("swapped placement reported positionally perfect")
	}
}

func TestSatisfiedBlockedByWrongSlot(t *testing.T) {
	tr := NewFulfillmentTracker(twoLineOrder(), 4)
	tr.Place("A", 2)
	tr.Place("B", 1)
	tr.Place("C", 1)

	if tr.Satisfied() {
		t.Error("order satisfied despite a wrong slot")
	}
}

func TestSatisfiedRequiresEveryRequirement(t *testing.T) {
	tr := NewFulfillmentTracker(twoLineOrder(), 4)
	tr.Place("A", 2)
	if tr.Satisfied() {
		t.Error("order satisfied with requirement B unmet")
	}
}

func TestCompleteBonusRules(t *testing.T) {
	tests := []struct {
		name        string
		places      [][2]any
		wantRevenue int
		wantBonus   int
	}{
		{
			name:        "Perfect Placement Earns Bonus",
			places:      [][2]any{{"A", 2}, {"B", 1}},
			wantRevenue: 40,
			wantBonus:   20,
		},
		{
			name:        "Swapped Placement Earns No Bonus",
			places:      [][2]any{{"B", 1}, {"A", 2}},
			wantRevenue: 40,
			wantBonus:   0,
		},
		{
			name:        "Unsatisfied Order Pays Nothing",
			places:      [][2]any{{"A", 2}},
			wantRevenue: 0,
			wantBonus:   0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewFulfillmentTracker(twoLineOrder(), 4)
			for _, p := range tc.places {
				tr.Place(p[0].(string), p[1].(int))
			}
			revenue, bonus := tr.Complete()
			if revenue != tc.wantRevenue || bonus != tc.wantBonus {
				t.Fatalf("Complete() = (%d, %d), want (%d, %d)", revenue, bonus, tc.wantRevenue, tc.wantBonus)
			}
		})
	}
}

func TestCompleteSingleLineOrder(t *testing.T) {
	order := Order{
		Requirements: []Requirement{{IconKey: "icon1", Quantity: 1}},
		Budget:       10,
	}
	tr := NewFulfillmentTracker(order, 4)
	tr.Place("icon1", 1)

	if got := tr.SlotStatus(0); got != SlotCorrect {
		t.Fatalf("SlotStatus(0) = %v, want correct", got)
	}
	if !tr.Satisfied() {
		t.Fatal("single-line order not satisfied")
	}
	revenue, bonus := tr.Complete()
	if revenue != 10 || bonus != 5 {
		t.Fatalf("Complete() = (%d, %d), want (10, 5)", revenue, bonus)
	}
}
