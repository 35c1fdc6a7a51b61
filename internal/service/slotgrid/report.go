package slotgrid

import (
	"github.com/samber/lo"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
)

type Report struct {
	Packs []Pack
	// Unresolved items were packed with fallback dimensions.
	Unresolved []Item
	// Rejected items were left out under PolicyReject.
	Rejected []Item
	// Oversized items got a dedicated locker per unit.
	Oversized []Item
}

func (r Report) UsedSlots() int {
	return lo.SumBy(r.Packs, func(p Pack) int { return p.TotalUsedSlots })
}

// Efficiency is the slot fill over all packs, in percent. Oversize packs
// count as full.
func (r Report) Efficiency() float64 {
	if len(r.Packs) == 0 {
		return 0
	}

	used := lo.SumBy(r.Packs, func(p Pack) int { return min(p.TotalUsedSlots, model.LockerSlots) })
	return float64(used) / float64(len(r.Packs)*model.LockerSlots) * 100
}

func (r Report) Degraded() bool {
	return len(r.Unresolved) > 0 || len(r.Oversized) > 0 || len(r.Rejected) > 0
}
