package repository

import (
	"github.com/samber/lo"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
)

func EntityToModel(e *AssignmentEntity) *model.LockerAssignment {
	if e == nil {
		return nil
	}

	return &model.LockerAssignment{
		ID:               e.ID,
		AppointmentID:    e.AppointmentID,
		LockerNumber:     e.LockerNumber,
		ScheduledDate:    e.ScheduledDate,
		TimeSlot:         e.TimeSlot,
		Products:         lo.Map(e.Products, func(p ProductEntity, _ int) model.PackedProduct { return productToModel(p) }),
		TotalSlotsUsed:   e.TotalSlotsUsed,
		Status:           model.AssignmentStatus(e.Status),
		CapacityExceeded: e.CapacityExceeded,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ProductsFromModel(in []model.PackedProduct) []ProductEntity {
	out := make([]ProductEntity, 0, len(in))
	for _, p := range in {
		out = append(out, ProductEntity{
			ProductID: p.ProductID,
			ItemID:    p.ItemID,
			Name:      p.Name,
			Dimensions: DimensionsEntity{
				Length: p.Dimensions.Length,
				Width:  p.Dimensions.Width,
				Height: p.Dimensions.Height,
				Weight: p.Dimensions.Weight,
			},
			CalculatedSlots: p.CalculatedSlots,
			Quantity:        p.Quantity,
			Volume:          p.Volume,
		})
	}
	return out
}

func productToModel(p ProductEntity) model.PackedProduct {
	return model.PackedProduct{
		ProductID: p.ProductID,
		ItemID:    p.ItemID,
		Name:      p.Name,
		Dimensions: model.Dimensions{
			Length: p.Dimensions.Length,
			Width:  p.Dimensions.Width,
			Height: p.Dimensions.Height,
			Weight: p.Dimensions.Weight,
		},
		CalculatedSlots: p.CalculatedSlots,
		Quantity:        p.Quantity,
		Volume:          p.Volume,
	}
}

// matches applies filter f to a in memory, with the same meaning as the SQL
// built by applyFilter.
func matches(a *model.LockerAssignment, f model.AssignmentFilter) bool {
	if f.AppointmentID != "" && a.AppointmentID != f.AppointmentID {
		return false
	}
	if f.LockerNumber != nil && a.LockerNumber != *f.LockerNumber {
		return false
	}
	if f.ScheduledDate != "" && a.ScheduledDate != f.ScheduledDate {
		return false
	}
	if f.TimeSlot != "" && a.TimeSlot != f.TimeSlot {
		return false
	}
	if len(f.Statuses) > 0 && !lo.Contains(f.Statuses, a.Status) {
		return false
	}
	return true
}
