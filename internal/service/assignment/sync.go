package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
	"github.com/ANGELZzz6/Hako-sub000/internal/service/dimension"
	"github.com/ANGELZzz6/Hako-sub000/internal/service/slotgrid"
	"github.com/ANGELZzz6/Hako-sub000/platform/logger"
)

var errNoFreeLocker = errors.New("no free locker left for this time slot")

// SyncFromAppointments rebuilds assignments for every syncable appointment
// of the given local day. Appointments are handled one by one and a failing
// appointment is reported in the result without stopping the others.
func (svc *service) SyncFromAppointments(ctx context.Context, date string) (*model.SyncResult, error) {
	const op string = "assignment.service.SyncFromAppointments"
	log := logger.With(logger.String("date", date))
	started := svc.now()

	day, err := time.ParseInLocation(model.DateLayout, date, svc.loc)
	if err != nil {
		log.Warn(ctx, "invalid sync date", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, validationErr("date must be YYYY-MM-DD"))
	}

	rctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	appts, err := svc.appointments.ListScheduled(rctx, day, day.AddDate(0, 0, 1))
	cancel()
	if err != nil {
		log.Error(ctx, "appointment repository list scheduled", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := &model.SyncResult{}
	for _, appt := range appts {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		}

		res.Summary.Processed++
		created, updated, err := svc.syncAppointment(ctx, appt)
		res.Created = append(res.Created, created...)
		res.Updated = append(res.Updated, updated...)
		if err != nil {
			res.Summary.Failed++
			res.Errors = append(res.Errors, model.SyncError{AppointmentID: appt.ID, Reason: err.Error()})
			log.Warn(ctx, "appointment not synced",
				logger.String("appointment_id", appt.ID),
				logger.ErrorF(err),
			)
		}
	}

	res.Summary.Created = len(res.Created)
	res.Summary.Updated = len(res.Updated)
	res.Summary.LockersUsed = len(lo.Uniq(lo.Map(
		append(append([]model.LockerAssignment{}, res.Created...), res.Updated...),
		func(a model.LockerAssignment, _ int) int { return a.LockerNumber },
	)))

	took := svc.now().Sub(started)
	svc.metrics.SyncCompleted(res.Summary.Created, res.Summary.Updated, res.Summary.Failed, took)
	log.Info(ctx, "sync finished",
		logger.Int("processed", res.Summary.Processed),
		logger.Int("created", res.Summary.Created),
		logger.Int("updated", res.Summary.Updated),
		logger.Int("failed", res.Summary.Failed),
		logger.Duration("took", took),
	)

	return res, nil
}

func (svc *service) syncAppointment(
	ctx context.Context,
	appt model.Appointment,
) (created, updated []model.LockerAssignment, err error) {
	date := appt.ScheduledDate.In(svc.loc).Format(model.DateLayout)
	if err := validateTimeSlot(appt.TimeSlot); err != nil {
		return nil, nil, err
	}

	rctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	existing, err := svc.repo.List(rctx, model.AssignmentFilter{AppointmentID: appt.ID})
	cancel()
	if err != nil {
		return nil, nil, fmt.Errorf("list existing assignments: %w", err)
	}

	// Cancelled assignments free the appointment for a new booking. Any other
	// assignment means it was already synced; only open ones move with it.
	existing = lo.Filter(existing, func(a model.LockerAssignment, _ int) bool {
		return a.Status != model.StatusCancelled
	})
	if len(existing) > 0 {
		open := lo.Filter(existing, func(a model.LockerAssignment, _ int) bool {
			return a.Status.Open()
		})
		updated, err = svc.refreshSchedule(ctx, open, date, appt.TimeSlot)
		return nil, updated, err
	}

	items, err := svc.packingItems(ctx, appt)
	if err != nil {
		return nil, nil, err
	}

	report := svc.splitter.Split(items)
	for _, it := range report.Rejected {
		svc.metrics.PackingDegraded("rejected")
		logger.Warn(ctx, "oversize unit rejected",
			logger.String("appointment_id", appt.ID),
			logger.String("item", it.ItemID),
			logger.String("product_id", it.ProductID),
			logger.Int("slots", slotgrid.CalculateSlots(it.Dimensions)),
		)
	}
	for _, it := range report.Oversized {
		svc.metrics.PackingDegraded("oversize")
		logger.Warn(ctx, "oversize unit given a dedicated locker",
			logger.String("appointment_id", appt.ID),
			logger.String("item", it.ItemID),
			logger.String("product_id", it.ProductID),
			logger.Int("slots", slotgrid.CalculateSlots(it.Dimensions)),
		)
	}

	for _, pack := range report.Packs {
		a, err := svc.placePack(ctx, appt.ID, date, appt.TimeSlot, pack)
		if err != nil {
			svc.rollback(ctx, created)
			return nil, nil, err
		}
		created = append(created, *a)
	}

	if len(report.Rejected) > 0 {
		ids := lo.Map(report.Rejected, func(it slotgrid.Item, _ int) string { return it.ItemID })
		return created, nil, fmt.Errorf("%w: oversize items rejected %v", model.ErrPackingDegraded, ids)
	}

	return created, nil, nil
}

func (svc *service) refreshSchedule(
	ctx context.Context,
	existing []model.LockerAssignment,
	date, timeSlot string,
) ([]model.LockerAssignment, error) {
	out := make([]model.LockerAssignment, 0, len(existing))
	for _, a := range existing {
		if a.ScheduledDate != date || a.TimeSlot != timeSlot {
			wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
			err := svc.repo.UpdateSchedule(wctx, a.ID, date, timeSlot)
			cancel()
			if err != nil {
				return out, fmt.Errorf("refresh assignment %s: %w", a.ID, err)
			}
			a.ScheduledDate = date
			a.TimeSlot = timeSlot
			a.UpdatedAt = svc.now().UTC()
		}
		out = append(out, a)
	}
	return out, nil
}

// packingItems hydrates catalog references and resolves every item's size.
func (svc *service) packingItems(ctx context.Context, appt model.Appointment) ([]slotgrid.Item, error) {
	productIDs := lo.Uniq(lo.FilterMap(appt.Items, func(it model.AppointmentItem, _ int) (string, bool) {
		return it.ProductID, it.Product == nil && it.ProductID != ""
	}))
	unitIDs := lo.Uniq(lo.FilterMap(appt.Items, func(it model.AppointmentItem, _ int) (string, bool) {
		return it.UnitID, it.Unit == nil && it.UnitID != ""
	}))

	var (
		products = map[string]*model.Product{}
		units    = map[string]*model.InventoryUnit{}
		err      error
	)

	rctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	if len(productIDs) > 0 {
		if products, err = svc.catalog.ProductsByIDs(rctx, productIDs); err != nil {
			return nil, fmt.Errorf("load products: %w", err)
		}
	}
	if len(unitIDs) > 0 {
		if units, err = svc.catalog.UnitsByIDs(rctx, unitIDs); err != nil {
			return nil, fmt.Errorf("load inventory units: %w", err)
		}
	}

	items := make([]slotgrid.Item, 0, len(appt.Items))
	for _, it := range appt.Items {
		if it.Product == nil {
			it.Product = products[it.ProductID]
		}
		if it.Unit == nil {
			it.Unit = units[it.UnitID]
		}

		res := dimension.Resolve(it)
		if res.Degraded() {
			svc.metrics.PackingDegraded("fallback_dimensions")
			logger.Warn(ctx, "no valid dimensions, using fallback",
				logger.String("appointment_id", appt.ID),
				logger.String("item", it.ID),
				logger.String("product_id", it.ProductID),
			)
		}

		productID := it.ProductID
		if productID == "" && it.Unit != nil {
			productID = it.Unit.ProductID
		}

		items = append(items, slotgrid.Item{
			ItemID:     it.ID,
			ProductID:  productID,
			Name:       it.Name,
			Dimensions: res.Dimensions,
			Quantity:   max(it.Quantity, 1),
			Unresolved: res.Degraded(),
		})
	}

	return items, nil
}

// placePack books the first free locker number for the pack. A lost race on
// a locker moves the scan on to the next number.
func (svc *service) placePack(
	ctx context.Context,
	appointmentID, date, timeSlot string,
	pack slotgrid.Pack,
) (*model.LockerAssignment, error) {
	for n := 1; n <= svc.lockerCount; n++ {
		available, err := svc.IsLockerAvailable(ctx, n, date, timeSlot)
		if err != nil {
			return nil, err
		}
		if !available {
			continue
		}

		a := &model.LockerAssignment{
			AppointmentID:    appointmentID,
			LockerNumber:     n,
			ScheduledDate:    date,
			TimeSlot:         timeSlot,
			Products:         pack.Products,
			TotalSlotsUsed:   pack.TotalUsedSlots,
			Status:           model.StatusReserved,
			CapacityExceeded: pack.Oversize,
		}

		err = svc.persist(ctx, a)
		if errors.Is(err, model.ErrLockerUnavailable) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create assignment: %w", err)
		}

		return a, nil
	}

	svc.metrics.AssignmentRejected("no_free_locker")
	return nil, errNoFreeLocker
}

func (svc *service) rollback(ctx context.Context, created []model.LockerAssignment) {
	for _, a := range created {
		wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
		err := svc.repo.Delete(wctx, a.ID)
		cancel()
		if err != nil {
			logger.Error(ctx, "rollback assignment",
				logger.String("assignment_id", a.ID.String()),
				logger.ErrorF(err),
			)
		}
	}
}
