// Package slotgrid does capacity accounting on a locker discretized into
// 27 slots of 15 cm cubes. It never places items geometrically.
package slotgrid

import (
	"math"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
)

// maxAxisSlots bounds a single axis. Any axis past it already makes the
// unit oversize, and the product of three capped axes cannot overflow int.
const maxAxisSlots = model.LockerSlots + 1

// CalculateSlots is the per-axis ceiling division of d by the slot edge.
// Invalid dimensions cost one slot.
func CalculateSlots(d model.Dimensions) int {
	if !d.Valid() {
		return 1
	}

	return axisSlots(d.Length) * axisSlots(d.Width) * axisSlots(d.Height)
}

func axisSlots(v float64) int {
	cells := math.Ceil(v / model.SlotEdge)
	if cells > maxAxisSlots {
		return maxAxisSlots
	}
	return int(cells)
}

// Locker is one slot-grid locker with a running slot count.
type Locker struct {
	used int
}

func NewLocker(used int) *Locker { return &Locker{used: used} }

func (l *Locker) Free() int {
	return max(model.LockerSlots-l.used, 0)
}

func (l *Locker) Used() int { return l.used }

func (l *Locker) Fits(d model.Dimensions) bool {
	return CalculateSlots(d) <= l.Free()
}

// Take reserves room for d and reports whether it fitted.
func (l *Locker) Take(d model.Dimensions) bool {
	if !l.Fits(d) {
		return false
	}
	l.used += CalculateSlots(d)
	return true
}

var _ model.Fitter = (*Locker)(nil)
