package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
	"github.com/ANGELZzz6/Hako-sub000/internal/service/slotgrid"
)

func validationErr(detail string) error {
	return errors.Join(model.ErrValidation, errors.New(detail))
}

func (svc *service) validateTriple(lockerNumber int, date, timeSlot string) error {
	if lockerNumber < 1 || lockerNumber > svc.lockerCount {
		return validationErr(fmt.Sprintf("locker number must be between 1 and %d", svc.lockerCount))
	}
	if err := validateDate(date); err != nil {
		return err
	}
	return validateTimeSlot(timeSlot)
}

func validateDate(date string) error {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return validationErr("scheduled date must be YYYY-MM-DD")
	}
	return nil
}

func validateTimeSlot(slot string) error {
	if _, err := time.Parse(model.TimeSlotLayout, slot); err != nil || len(slot) != len(model.TimeSlotLayout) {
		return validationErr("time slot must be HH:MM")
	}
	return nil
}

func validateFilter(f model.AssignmentFilter) error {
	if f.ScheduledDate != "" {
		if err := validateDate(f.ScheduledDate); err != nil {
			return err
		}
	}
	if f.TimeSlot != "" {
		if err := validateTimeSlot(f.TimeSlot); err != nil {
			return err
		}
	}
	if f.LockerNumber != nil && *f.LockerNumber < 1 {
		return validationErr("locker number must be positive")
	}
	for _, s := range f.Statuses {
		if !s.Valid() {
			return validationErr(fmt.Sprintf("unknown status %q", s))
		}
	}
	return nil
}

// normalizeProducts recomputes slot cost and volume from dimensions.
func normalizeProducts(in []model.PackedProduct) ([]model.PackedProduct, error) {
	if len(in) == 0 {
		return nil, validationErr("at least one product is required")
	}

	out := make([]model.PackedProduct, len(in))
	for i, p := range in {
		if p.ProductID == "" {
			return nil, validationErr(fmt.Sprintf("product %d has no id", i))
		}
		if !p.Dimensions.Valid() {
			return nil, validationErr(fmt.Sprintf("product %s has invalid dimensions", p.ProductID))
		}
		if p.Quantity <= 0 {
			return nil, validationErr(fmt.Sprintf("product %s has non-positive quantity", p.ProductID))
		}

		p.CalculatedSlots = slotgrid.CalculateSlots(p.Dimensions)
		p.Volume = p.Dimensions.UnitsVolume(p.Quantity)
		out[i] = p
	}

	return out, nil
}
