package game

import (
	"math/rand/v2"

	"github.com/bblue/clicker-shipper/internal/catalog"
)

const (
	minOrderLines = 2
	maxOrderLines = 4
	maxLineQty    = 5
	fallbackCost  = 10
)

// GenerateOrder draws a fresh requirement list from the leaf pool: two to
// four distinct icons, one to five units each, budget equal to the summed
// line cost. Requirement order is the draw order. An empty pool yields an
// empty order.
func GenerateOrder(rng *rand.Rand, leaves []catalog.Item) Order {
	if len(leaves) == 0 {
		return Order{}
	}

	lines := minOrderLines + rng.IntN(maxOrderLines-minOrderLines+1)
	if lines > len(leaves) {
		lines = len(leaves)
	}

	order := Order{Requirements: make([]Requirement, 0, lines)}
	for _, idx := range rng.Perm(len(leaves))[:lines] {
		leaf := leaves[idx]
		qty := 1 + rng.IntN(maxLineQty)
		cost := leaf.Cost
		if cost <= 0 {
			cost = fallbackCost
		}
		order.Requirements = append(order.Requirements, Requirement{
			IconKey:  leaf.IconKey(),
			Quantity: qty,
		})
		order.Budget += cost * qty
	}
	return order
}
