package binpack

import (
	"cmp"
	"slices"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
)

const probeEdge = 5.0

type LockerStatus struct {
	LockerNumber    int
	Placed          []Placement
	Unplaced        []model.PackedProduct
	UsedVolume      float64
	TotalVolume     float64
	UsagePercentage float64
	CanFitMore      bool
}

type LockerScore struct {
	LockerNumber    int
	Score           float64
	UsagePercentage float64
	Placement       Placement
}

type packer struct {
	lockerCount int
}

// NewPacker builds a packer over lockers 1..lockerCount.
func NewPacker(lockerCount int) *packer {
	return &packer{lockerCount: lockerCount}
}

func (p *packer) LockerCount() int { return p.lockerCount }

// Replay places every unit ever assigned to lockerNumber, in the order given.
func (p *packer) Replay(lockerNumber int, history []model.LockerAssignment) (*Container, []model.PackedProduct) {
	c := NewLocker()

	var unplaced []model.PackedProduct
	for _, a := range history {
		if a.LockerNumber != lockerNumber {
			continue
		}
		for _, pp := range a.Products {
			for range pp.Quantity {
				if _, ok := c.Place(pp.ItemID, pp.ProductID, pp.Dimensions); !ok {
					miss := pp
					miss.Quantity = 1
					unplaced = append(unplaced, miss)
				}
			}
		}
	}

	return c, unplaced
}

func (p *packer) CalculateLockerStatus(lockerNumber int, history []model.LockerAssignment) LockerStatus {
	c, unplaced := p.Replay(lockerNumber, history)

	probe := model.Dimensions{Length: probeEdge, Width: probeEdge, Height: probeEdge}

	return LockerStatus{
		LockerNumber:    lockerNumber,
		Placed:          c.Placed(),
		Unplaced:        unplaced,
		UsedVolume:      c.UsedVolume(),
		TotalVolume:     c.Size().Volume(),
		UsagePercentage: c.UsagePercentage(),
		CanFitMore:      c.Fits(probe),
	}
}

// FindBestLockerForProduct ranks the lockers that can still take d,
// emptiest first. Equal scores keep the lower locker number first.
func (p *packer) FindBestLockerForProduct(history []model.LockerAssignment, d model.Dimensions) []LockerScore {
	var out []LockerScore

	for n := 1; n <= p.lockerCount; n++ {
		c, _ := p.Replay(n, history)

		placement, ok := c.FindBestPosition(d)
		if !ok {
			continue
		}

		usage := c.UsagePercentage()
		out = append(out, LockerScore{
			LockerNumber:    n,
			Score:           100 - usage,
			UsagePercentage: usage,
			Placement:       placement,
		})
	}

	slices.SortStableFunc(out, func(a, b LockerScore) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return out
}
