package slotgrid

import (
	"math"

	"github.com/samber/lo"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
)

type OversizePolicy string

const (
	// PolicyDedicated gives each oversize unit a locker of its own.
	PolicyDedicated OversizePolicy = "dedicated"
	// PolicyReject leaves oversize units out and lists them as rejected.
	PolicyReject OversizePolicy = "reject"
)

func (p OversizePolicy) Valid() bool {
	return p == PolicyDedicated || p == PolicyReject
}

// Item is one appointment line with resolved dimensions.
type Item struct {
	ItemID     string
	ProductID  string
	Name       string
	Dimensions model.Dimensions
	Quantity   int
	// Unresolved marks dimensions that came from the fallback.
	Unresolved bool
}

type Pack struct {
	Products       []model.PackedProduct
	TotalUsedSlots int
	Oversize       bool
}

// Efficiency is used slots over locker capacity, in percent.
func (p Pack) Efficiency() float64 {
	return float64(p.TotalUsedSlots) / model.LockerSlots * 100
}

func (p Pack) Units() int {
	return lo.SumBy(p.Products, func(pp model.PackedProduct) int { return pp.Quantity })
}

type packer struct {
	policy OversizePolicy
}

func NewPacker(policy OversizePolicy) *packer {
	if !policy.Valid() {
		policy = PolicyDedicated
	}
	return &packer{policy: policy}
}

func (p *packer) Policy() OversizePolicy { return p.policy }

// SplitProductsIntoLockers splits items with the dedicated oversize policy.
func SplitProductsIntoLockers(items []Item) []Pack {
	return NewPacker(PolicyDedicated).Split(items).Packs
}

// Split fills lockers greedily in input order.
func (p *packer) Split(items []Item) Report {
	var (
		packs   []Pack
		current Pack
		report  Report
	)

	closeCurrent := func() {
		if len(current.Products) > 0 {
			packs = append(packs, current)
		}
		current = Pack{}
	}

	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		if it.Unresolved {
			report.Unresolved = append(report.Unresolved, it)
		}

		cost := CalculateSlots(it.Dimensions)
		oversize := cost > model.LockerSlots

		if oversize && p.policy == PolicyReject {
			report.Rejected = append(report.Rejected, it)
			continue
		}

		remaining := it.Quantity
		for remaining > 0 {
			fit := (model.LockerSlots - current.TotalUsedSlots) / cost

			if fit == 0 {
				if len(current.Products) > 0 {
					closeCurrent()
					continue
				}

				// Only an oversize unit reaches an empty locker without fitting.
				current.Products = append(current.Products, packed(it, cost, 1))
				current.TotalUsedSlots = cost
				current.Oversize = true
				report.Oversized = append(report.Oversized, it)
				closeCurrent()
				remaining--
				continue
			}

			n := min(fit, remaining)
			current.Products = append(current.Products, packed(it, cost, n))
			current.TotalUsedSlots += n * cost
			remaining -= n
		}
	}
	closeCurrent()

	report.Packs = packs
	return report
}

func packed(it Item, cost, qty int) model.PackedProduct {
	return model.PackedProduct{
		ProductID:       it.ProductID,
		ItemID:          it.ItemID,
		Name:            it.Name,
		Dimensions:      it.Dimensions,
		CalculatedSlots: cost,
		Quantity:        qty,
		Volume:          it.Dimensions.UnitsVolume(qty),
	}
}

// TotalSlots sums slot cost times quantity over products, saturating at
// math.MaxInt.
func TotalSlots(products []model.PackedProduct) int {
	var total int
	for _, pp := range products {
		if pp.CalculatedSlots <= 0 || pp.Quantity <= 0 {
			continue
		}
		if pp.Quantity > (math.MaxInt-total)/pp.CalculatedSlots {
			return math.MaxInt
		}
		total += pp.CalculatedSlots * pp.Quantity
	}
	return total
}
