package repository

import (
	"github.com/samber/lo"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
	catalog "github.com/ANGELZzz6/Hako-sub000/internal/repository/catalog"
)

func EntityToModel(e *AppointmentEntity) *model.Appointment {
	if e == nil {
		return nil
	}

	return &model.Appointment{
		ID:            e.ID,
		UserID:        e.UserID,
		ScheduledDate: e.ScheduledDate,
		TimeSlot:      e.TimeSlot,
		Status:        model.AppointmentStatus(e.Status),
		Items:         lo.Map(e.Items, func(it ItemEntity, _ int) model.AppointmentItem { return itemToModel(it) }),
	}
}

func itemToModel(e ItemEntity) model.AppointmentItem {
	item := model.AppointmentItem{
		ID:                 e.ID,
		ProductID:          e.ProductID,
		UnitID:             e.UnitID,
		Name:               e.Name,
		Quantity:           e.Quantity,
		Variants:           catalog.VariantsToModel(e.Variants),
		Dimensions:         catalog.DimensionsToModel(e.Dimensions),
		ComputedDimensions: catalog.DimensionsToModel(e.ComputedDimensions),
		OriginalProduct:    catalog.ProductToModel(e.OriginalProduct),
	}

	if e.Snapshot != nil {
		item.Snapshot = &model.ProductSnapshot{
			ProductID:  e.Snapshot.ProductID,
			Name:       e.Snapshot.Name,
			Dimensions: catalog.DimensionsToModel(e.Snapshot.Dimensions),
		}
	}

	return item
}
