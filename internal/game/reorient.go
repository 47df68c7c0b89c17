package game

import (
	"math/rand/v2"
	"time"

	"github.com/bblue/clicker-shipper/internal/catalog"
)

// Guaranteed-wrong starting angles. Multiples of 30 plus 135, never 0/360,
// so a fresh puzzle is always visibly misaligned.
var rotationOptions = []int{30, 60, 90, 120, 135, 150, 180, 210, 240, 270, 300, 330}

const (
	minArrangement = 2
	maxArrangement = 8
	// Bound on rejection sampling before falling back to a complement draw.
	targetDrawRetries = 16
)

// RepairItem is one rotation puzzle: an icon that starts at a wrong angle and
// must be dialled to upright. Solved never reverts within one arrangement.
type RepairItem struct {
	IconKey            string
	StartRotationDeg   int
	TargetRotationDeg  int
	CurrentRotationDeg int
	Solved             bool
}

// RepairView is the read-only slice of a repair item handed to the dial while
// the player works on it.
type RepairView struct {
	IconKey            string
	CurrentRotationDeg int
	TargetRotationDeg  int
}

// ReOrientSet owns the current puzzle arrangement and the single "current"
// interaction target. All mutation goes through its methods.
type ReOrientSet struct {
	items   []RepairItem
	current int
	rng     *rand.Rand
}

// NewReOrientSet builds an empty set. A nil rng seeds from the wall clock.
func NewReOrientSet(rng *rand.Rand) *ReOrientSet {
	if rng == nil {
		rng = seededRNG(time.Now().UnixNano())
	}
	return &ReOrientSet{current: -1, rng: rng}
}

// BuildArrangement discards any prior batch and samples count items from the
// pool without replacement. Count is clamped to [2, 8] and then to the pool
// size; an empty pool yields an empty batch.
func (s *ReOrientSet) BuildArrangement(pool []catalog.Item, count int) {
	s.items = nil
	s.current = -1
	if len(pool) == 0 {
		return
	}

	n := count
	if n < minArrangement {
		n = minArrangement
	}
	if n > maxArrangement {
		n = maxArrangement
	}
	actual := min(n, len(pool))

	order := s.rng.Perm(len(pool))
	s.items = make([]RepairItem, 0, actual)
	for _, idx := range order[:actual] {
		start := rotationOptions[s.rng.IntN(len(rotationOptions))]
		target := s.drawTarget(start)
		s.items = append(s.items, RepairItem{
			IconKey:            pool[idx].IconKey(),
			StartRotationDeg:   start,
			TargetRotationDeg:  target,
			CurrentRotationDeg: start,
		})
	}
}

// drawTarget picks an angle distinct from start: bounded rejection sampling,
// then a direct draw from the complement if the bound is ever exhausted.
func (s *ReOrientSet) drawTarget(start int) int {
	for range targetDrawRetries {
		t := rotationOptions[s.rng.IntN(len(rotationOptions))]
		if t != start {
			return t
		}
	}
	complement := make([]int, 0, len(rotationOptions)-1)
	for _, opt := range rotationOptions {
		if opt != start {
			complement = append(complement, opt)
		}
	}
	return complement[s.rng.IntN(len(complement))]
}

// Items returns a copy of the current batch.
func (s *ReOrientSet) Items() []RepairItem {
	out := make([]RepairItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ReOrientSet) Len() int {
	return len(s.items)
}

// AllSolved reports whether a non-empty batch is fully repaired.
func (s *ReOrientSet) AllSolved() bool {
	if len(s.items) == 0 {
		return false
	}
	for _, it := range s.items {
		if !it.Solved {
			return false
		}
	}
	return true
}

// Select makes the first unsolved item with the given icon key the current
// interaction target, replacing any prior target. The second return is false
// when nothing matches; the caller should reset its open interaction.
func (s *ReOrientSet) Select(iconKey string) (RepairView, bool) {
	for i := range s.items {
		if s.items[i].IconKey != iconKey || s.items[i].Solved {
			continue
		}
		s.current = i
		return s.view(i), true
	}
	s.current = -1
	return RepairView{}, false
}

// Current returns the active interaction target, if any.
func (s *ReOrientSet) Current() (RepairView, bool) {
	if s.current < 0 || s.current >= len(s.items) {
		return RepairView{}, false
	}
	return s.view(s.current), true
}

// Rotate updates the current item's live angle. No-op without a current item.
func (s *ReOrientSet) Rotate(deg int) {
	if s.current < 0 || s.current >= len(s.items) {
		return
	}
	s.items[s.current].CurrentRotationDeg = deg
}

// Settle ends the current interaction. On success the item snaps upright and
// is marked solved; on failure it keeps its last angle for a retry. The
// current pointer clears either way. Returns whether the whole batch is now
// solved. No-op (returning false) without a current item.
func (s *ReOrientSet) Settle(success bool) bool {
	if s.current < 0 || s.current >= len(s.items) {
		return false
	}
	if success {
		s.items[s.current].CurrentRotationDeg = 0
		s.items[s.current].Solved = true
	}
	s.current = -1
	return s.AllSolved()
}

// ClearCurrent cancels the open interaction without touching item state.
func (s *ReOrientSet) ClearCurrent() {
	s.current = -1
}

func (s *ReOrientSet) view(i int) RepairView {
	return RepairView{
		IconKey:            s.items[i].IconKey,
		CurrentRotationDeg: s.items[i].CurrentRotationDeg,
		TargetRotationDeg:  s.items[i].TargetRotationDeg,
	}
}
