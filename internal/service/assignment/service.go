package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
	"github.com/ANGELZzz6/Hako-sub000/internal/service/slotgrid"
	"github.com/ANGELZzz6/Hako-sub000/platform/logger"
)

type AssignmentRepository interface {
	// Create must fail with model.ErrLockerUnavailable when an open
	// assignment already holds the same locker, date and time slot.
	Create(ctx context.Context, a *model.LockerAssignment) error
	AssignmentByID(ctx context.Context, id uuid.UUID) (*model.LockerAssignment, error)
	List(ctx context.Context, filter model.AssignmentFilter) ([]model.LockerAssignment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.AssignmentStatus) error
	UpdateSchedule(ctx context.Context, id uuid.UUID, date, timeSlot string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AppointmentRepository interface {
	// ListScheduled returns syncable appointments with from <= date < to.
	ListScheduled(ctx context.Context, from, to time.Time) ([]model.Appointment, error)
}

type CatalogRepository interface {
	ProductsByIDs(ctx context.Context, ids []string) (map[string]*model.Product, error)
	UnitsByIDs(ctx context.Context, ids []string) (map[string]*model.InventoryUnit, error)
}

type AssignmentReservedSender interface {
	SendAssignmentReserved(ctx context.Context, event model.AssignmentReserved) error
}

type Splitter interface {
	Split(items []slotgrid.Item) slotgrid.Report
}

type Metrics interface {
	AssignmentCreated(oversize bool)
	AssignmentRejected(reason string)
	PackingDegraded(reason string)
	SyncCompleted(created, updated, failed int, took time.Duration)
}

type Config struct {
	LockerCount    int
	Location       *time.Location
	ReadDBTimeout  time.Duration
	WriteDBTimeout time.Duration
}

type service struct {
	repo         AssignmentRepository
	appointments AppointmentRepository
	catalog      CatalogRepository
	sender       AssignmentReservedSender
	splitter     Splitter
	metrics      Metrics

	lockerCount    int
	loc            *time.Location
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
	now            func() time.Time
}

func NewAssignmentService(
	repository AssignmentRepository,
	appointments AppointmentRepository,
	catalog CatalogRepository,
	sender AssignmentReservedSender,
	splitter Splitter,
	metrics Metrics,
	cfg Config,
) *service {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	return &service{
		repo:           repository,
		appointments:   appointments,
		catalog:        catalog,
		sender:         sender,
		splitter:       splitter,
		metrics:        metrics,
		lockerCount:    cfg.LockerCount,
		loc:            loc,
		readDBTimeout:  cfg.ReadDBTimeout,
		writeDBTimeout: cfg.WriteDBTimeout,
		now:            time.Now,
	}
}

func (svc *service) LockerCount() int { return svc.lockerCount }

func (svc *service) CreateAssignment(
	ctx context.Context,
	params model.CreateAssignmentParams,
) (*model.LockerAssignment, error) {
	const op string = "assignment.service.CreateAssignment"
	log := logger.With(
		logger.String("appointment_id", params.AppointmentID),
		logger.Int("locker_number", params.LockerNumber),
		logger.String("scheduled_date", params.ScheduledDate),
		logger.String("time_slot", params.TimeSlot),
	)

	if err := svc.validateTriple(params.LockerNumber, params.ScheduledDate, params.TimeSlot); err != nil {
		log.Warn(ctx, "invalid assignment params", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	products, err := normalizeProducts(params.Products)
	if err != nil {
		log.Warn(ctx, "invalid products", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	available, err := svc.IsLockerAvailable(ctx, params.LockerNumber, params.ScheduledDate, params.TimeSlot)
	if err != nil {
		log.Error(ctx, "check locker availability", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !available {
		log.Info(ctx, "locker already taken")
		svc.metrics.AssignmentRejected("unavailable")
		return nil, fmt.Errorf("%s: %w", op, model.ErrLockerUnavailable)
	}

	total := slotgrid.TotalSlots(products)
	if total > model.LockerSlots {
		log.Info(ctx, "capacity exceeded", logger.Int("total_slots", total))
		svc.metrics.AssignmentRejected("capacity")
		return nil, fmt.Errorf("%s: %w", op, model.ErrCapacityExceeded)
	}

	a := &model.LockerAssignment{
		AppointmentID:  params.AppointmentID,
		LockerNumber:   params.LockerNumber,
		ScheduledDate:  params.ScheduledDate,
		TimeSlot:       params.TimeSlot,
		Products:       products,
		TotalSlotsUsed: total,
		Status:         model.StatusReserved,
	}

	if err := svc.persist(ctx, a); err != nil {
		if errors.Is(err, model.ErrLockerUnavailable) {
			log.Info(ctx, "locker taken concurrently")
			svc.metrics.AssignmentRejected("unavailable")
		} else {
			log.Error(ctx, "repository create assignment", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

// persist stores a new reserved assignment and announces it.
func (svc *service) persist(ctx context.Context, a *model.LockerAssignment) error {
	now := svc.now().UTC()
	a.ID = uuid.New()
	a.CreatedAt = now
	a.UpdatedAt = now

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Create(wctx, a); err != nil {
		return err
	}

	svc.metrics.AssignmentCreated(a.CapacityExceeded)

	event := model.AssignmentReserved{
		EventID:       uuid.New(),
		AssignmentID:  a.ID,
		AppointmentID: a.AppointmentID,
		LockerNumber:  a.LockerNumber,
		ScheduledDate: a.ScheduledDate,
		TimeSlot:      a.TimeSlot,
		SlotsUsed:     a.TotalSlotsUsed,
		Oversize:      a.CapacityExceeded,
	}
	if err := svc.sender.SendAssignmentReserved(ctx, event); err != nil {
		logger.Warn(ctx, "publish assignment reserved",
			logger.String("assignment_id", a.ID.String()),
			logger.ErrorF(err),
		)
	}

	return nil
}

func (svc *service) IsLockerAvailable(ctx context.Context, lockerNumber int, date, timeSlot string) (bool, error) {
	const op string = "assignment.service.IsLockerAvailable"

	if err := svc.validateTriple(lockerNumber, date, timeSlot); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	rctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	taken, err := svc.repo.List(rctx, model.AssignmentFilter{
		LockerNumber:  &lockerNumber,
		ScheduledDate: date,
		TimeSlot:      timeSlot,
		Statuses:      model.OpenStatuses,
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return len(taken) == 0, nil
}

func (svc *service) AssignmentsByDateTime(ctx context.Context, date, timeSlot string) ([]model.LockerAssignment, error) {
	return svc.AllAssignments(ctx, model.AssignmentFilter{ScheduledDate: date, TimeSlot: timeSlot})
}

// AssignmentByLocker returns the open assignment holding the triple.
func (svc *service) AssignmentByLocker(
	ctx context.Context,
	lockerNumber int,
	date, timeSlot string,
) (*model.LockerAssignment, error) {
	const op string = "assignment.service.AssignmentByLocker"

	if err := svc.validateTriple(lockerNumber, date, timeSlot); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	list, err := svc.AllAssignments(ctx, model.AssignmentFilter{
		LockerNumber:  &lockerNumber,
		ScheduledDate: date,
		TimeSlot:      timeSlot,
		Statuses:      model.OpenStatuses,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: %w", op, model.ErrNotFound)
	}

	return &list[0], nil
}

func (svc *service) AllAssignments(ctx context.Context, filter model.AssignmentFilter) ([]model.LockerAssignment, error) {
	const op string = "assignment.service.AllAssignments"
	log := logger.With(
		logger.String("scheduled_date", filter.ScheduledDate),
		logger.String("time_slot", filter.TimeSlot),
	)

	if err := validateFilter(filter); err != nil {
		log.Warn(ctx, "invalid filter", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	list, err := svc.repo.List(ctx, filter)
	if err != nil {
		log.Error(ctx, "repository list assignments", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return list, nil
}

func (svc *service) AssignmentByID(ctx context.Context, id uuid.UUID) (*model.LockerAssignment, error) {
	const op string = "assignment.service.AssignmentByID"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	a, err := svc.repo.AssignmentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

func (svc *service) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status model.AssignmentStatus,
) (*model.LockerAssignment, error) {
	const op string = "assignment.service.UpdateStatus"
	log := logger.With(
		logger.String("assignment_id", id.String()),
		logger.String("status", string(status)),
	)

	if !status.Valid() {
		log.Warn(ctx, "invalid status")
		return nil, fmt.Errorf("%s: %w", op, validationErr("status must be one of reserved, active, completed, cancelled"))
	}

	wctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.UpdateStatus(wctx, id, status); err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			log.Error(ctx, "repository update status", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return svc.AssignmentByID(ctx, id)
}

func (svc *service) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	const op string = "assignment.service.DeleteAssignment"

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error(ctx, "repository delete assignment",
				logger.String("assignment_id", id.String()),
				logger.ErrorF(err),
			)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (svc *service) LockerUsageStats(ctx context.Context, date, timeSlot string) (*model.UsageStats, error) {
	const op string = "assignment.service.LockerUsageStats"

	list, err := svc.AllAssignments(ctx, model.AssignmentFilter{
		ScheduledDate: date,
		TimeSlot:      timeSlot,
		Statuses:      model.OpenStatuses,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	occupied := lo.Uniq(lo.Map(list, func(a model.LockerAssignment, _ int) int { return a.LockerNumber }))
	usedSlots := lo.SumBy(list, func(a model.LockerAssignment) int { return a.TotalSlotsUsed })

	stats := &model.UsageStats{
		ScheduledDate:    date,
		TimeSlot:         timeSlot,
		TotalLockers:     svc.lockerCount,
		UsedLockers:      len(occupied),
		AvailableLockers: max(svc.lockerCount-len(occupied), 0),
		OccupiedLockers:  occupied,
		UsedSlots:        usedSlots,
	}
	if len(occupied) > 0 {
		stats.SlotEfficiency = float64(usedSlots) / float64(len(occupied)*model.LockerSlots) * 100
	}
	if svc.lockerCount > 0 {
		stats.OccupancyRate = float64(len(occupied)) / float64(svc.lockerCount) * 100
	}

	return stats, nil
}
