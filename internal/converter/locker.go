package converter

import (
	"github.com/samber/lo"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
	"github.com/ANGELZzz6/Hako-sub000/internal/service/binpack"
	"github.com/ANGELZzz6/Hako-sub000/internal/service/slotgrid"
	lockerv1 "github.com/ANGELZzz6/Hako-sub000/pkg/api/locker/v1"
)

func DimensionsToAPI(d model.Dimensions) lockerv1.Dimensions {
	return lockerv1.Dimensions{Length: d.Length, Width: d.Width, Height: d.Height, Weight: d.Weight}
}

func DimensionsToModel(d lockerv1.Dimensions) model.Dimensions {
	return model.Dimensions{Length: d.Length, Width: d.Width, Height: d.Height, Weight: d.Weight}
}

func PackedProductToAPI(p model.PackedProduct) lockerv1.PackedProduct {
	return lockerv1.PackedProduct{
		ProductID:       p.ProductID,
		ItemID:          p.ItemID,
		Name:            p.Name,
		Dimensions:      DimensionsToAPI(p.Dimensions),
		CalculatedSlots: p.CalculatedSlots,
		Quantity:        p.Quantity,
		Volume:          p.Volume,
	}
}

// PackedProductToModel drops client supplied slots and volume, the service
// recomputes both.
func PackedProductToModel(p lockerv1.PackedProduct) model.PackedProduct {
	return model.PackedProduct{
		ProductID:  p.ProductID,
		ItemID:     p.ItemID,
		Name:       p.Name,
		Dimensions: DimensionsToModel(p.Dimensions),
		Quantity:   p.Quantity,
	}
}

func packedToAPI(list []model.PackedProduct) []lockerv1.PackedProduct {
	return lo.Map(list, func(p model.PackedProduct, _ int) lockerv1.PackedProduct { return PackedProductToAPI(p) })
}

func AssignmentToAPI(a model.LockerAssignment) lockerv1.LockerAssignment {
	return lockerv1.LockerAssignment{
		ID:               a.ID.String(),
		AppointmentID:    a.AppointmentID,
		LockerNumber:     a.LockerNumber,
		ScheduledDate:    a.ScheduledDate,
		TimeSlot:         a.TimeSlot,
		Products:         packedToAPI(a.Products),
		TotalSlotsUsed:   a.TotalSlotsUsed,
		Status:           string(a.Status),
		CapacityExceeded: a.CapacityExceeded,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func AssignmentsToAPI(list []model.LockerAssignment) []lockerv1.LockerAssignment {
	return lo.Map(list, func(a model.LockerAssignment, _ int) lockerv1.LockerAssignment { return AssignmentToAPI(a) })
}

func CreateAssignmentRequestToParams(req lockerv1.CreateAssignmentRequest) model.CreateAssignmentParams {
	return model.CreateAssignmentParams{
		AppointmentID: req.AppointmentID,
		LockerNumber:  req.LockerNumber,
		ScheduledDate: req.ScheduledDate,
		TimeSlot:      req.TimeSlot,
		Products: lo.Map(req.Products, func(p lockerv1.PackedProduct, _ int) model.PackedProduct {
			return PackedProductToModel(p)
		}),
	}
}

func SyncResultToAPI(r model.SyncResult) lockerv1.SyncResponse {
	return lockerv1.SyncResponse{
		Created: AssignmentsToAPI(r.Created),
		Updated: AssignmentsToAPI(r.Updated),
		Errors: lo.Map(r.Errors, func(e model.SyncError, _ int) lockerv1.SyncError {
			return lockerv1.SyncError{AppointmentID: e.AppointmentID, Reason: e.Reason}
		}),
		Summary: lockerv1.SyncSummary{
			Processed:   r.Summary.Processed,
			Created:     r.Summary.Created,
			Updated:     r.Summary.Updated,
			Failed:      r.Summary.Failed,
			LockersUsed: r.Summary.LockersUsed,
		},
	}
}

func UsageStatsToAPI(s model.UsageStats) lockerv1.UsageStats {
	return lockerv1.UsageStats{
		ScheduledDate:    s.ScheduledDate,
		TimeSlot:         s.TimeSlot,
		TotalLockers:     s.TotalLockers,
		UsedLockers:      s.UsedLockers,
		AvailableLockers: s.AvailableLockers,
		OccupiedLockers:  s.OccupiedLockers,
		UsedSlots:        s.UsedSlots,
		SlotEfficiency:   s.SlotEfficiency,
		OccupancyRate:    s.OccupancyRate,
	}
}

func PlacementToAPI(p binpack.Placement) lockerv1.Placement {
	return lockerv1.Placement{
		ItemID:    p.ItemID,
		ProductID: p.ProductID,
		Position:  lockerv1.Point{X: p.Origin.X, Y: p.Origin.Y, Z: p.Origin.Z},
		Size:      lockerv1.Dimensions{Length: p.Size.Length, Width: p.Size.Width, Height: p.Size.Height},
		Rotation:  p.Rotation,
	}
}

func LockerStatusToAPI(s binpack.LockerStatus) lockerv1.LockerOccupancy {
	return lockerv1.LockerOccupancy{
		LockerNumber:    s.LockerNumber,
		Placed:          lo.Map(s.Placed, func(p binpack.Placement, _ int) lockerv1.Placement { return PlacementToAPI(p) }),
		Unplaced:        packedToAPI(s.Unplaced),
		UsedVolume:      s.UsedVolume,
		TotalVolume:     s.TotalVolume,
		UsagePercentage: s.UsagePercentage,
		CanFitMore:      s.CanFitMore,
	}
}

func LockerScoresToAPI(scores []binpack.LockerScore) []lockerv1.LockerScore {
	return lo.Map(scores, func(s binpack.LockerScore, _ int) lockerv1.LockerScore {
		return lockerv1.LockerScore{
			LockerNumber:    s.LockerNumber,
			Score:           s.Score,
			UsagePercentage: s.UsagePercentage,
			Placement:       PlacementToAPI(s.Placement),
		}
	})
}

func SplitItemToModel(it lockerv1.SplitItem) slotgrid.Item {
	return slotgrid.Item{
		ItemID:     it.ItemID,
		ProductID:  it.ProductID,
		Name:       it.Name,
		Dimensions: DimensionsToModel(it.Dimensions),
		Quantity:   it.Quantity,
	}
}

func splitItemsToAPI(items []slotgrid.Item) []lockerv1.SplitItem {
	return lo.Map(items, func(it slotgrid.Item, _ int) lockerv1.SplitItem {
		return lockerv1.SplitItem{
			ItemID:     it.ItemID,
			ProductID:  it.ProductID,
			Name:       it.Name,
			Dimensions: DimensionsToAPI(it.Dimensions),
			Quantity:   it.Quantity,
		}
	})
}

func SplitReportToAPI(r slotgrid.Report) lockerv1.SplitResponse {
	return lockerv1.SplitResponse{
		Lockers: lo.Map(r.Packs, func(p slotgrid.Pack, _ int) lockerv1.Pack {
			return lockerv1.Pack{
				Products:       packedToAPI(p.Products),
				TotalUsedSlots: p.TotalUsedSlots,
				Efficiency:     p.Efficiency(),
				Oversize:       p.Oversize,
			}
		}),
		Efficiency: r.Efficiency(),
		Unresolved: splitItemsToAPI(r.Unresolved),
		Rejected:   splitItemsToAPI(r.Rejected),
		Oversized:  splitItemsToAPI(r.Oversized),
	}
}

func VoxelGridToAPI(a model.LockerAssignment, g slotgrid.VoxelGrid) lockerv1.VoxelView {
	return lockerv1.VoxelView{
		AssignmentID: a.ID.String(),
		LockerNumber: a.LockerNumber,
		GridSize:     3,
		Voxels: lo.Map(g.Voxels, func(v slotgrid.Voxel, _ int) lockerv1.Voxel {
			return lockerv1.Voxel{X: v.X, Y: v.Y, Z: v.Z, ProductID: v.ProductID, ItemID: v.ItemID, Unit: v.Unit}
		}),
		Filled:   g.Filled,
		Overflow: g.Overflow,
	}
}
