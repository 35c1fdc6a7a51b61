package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
)

// MemoryRepository keeps assignments in process. It enforces the same
// one-open-assignment-per-slot rule as the Postgres unique index.
type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*model.LockerAssignment
	order []uuid.UUID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[uuid.UUID]*model.LockerAssignment)}
}

func (m *MemoryRepository) Create(ctx context.Context, a *model.LockerAssignment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if a.Status.Open() && m.slotTaken(uuid.Nil, a.LockerNumber, a.ScheduledDate, a.TimeSlot) {
		return model.ErrLockerUnavailable
	}

	cp := clone(a)
	m.byID[cp.ID] = cp
	m.order = append(m.order, cp.ID)
	return nil
}

func (m *MemoryRepository) AssignmentByID(ctx context.Context, id uuid.UUID) (*model.LockerAssignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.byID[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return clone(a), nil
}

func (m *MemoryRepository) List(ctx context.Context, filter model.AssignmentFilter) ([]model.LockerAssignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []model.LockerAssignment
	for _, id := range m.order {
		if a := m.byID[id]; matches(a, filter) {
			out = append(out, *clone(a))
		}
	}
	return out, nil
}

func (m *MemoryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AssignmentStatus) error {
	return m.update(ctx, id, func(a *model.LockerAssignment) error {
		if status.Open() && !a.Status.Open() && m.slotTaken(id, a.LockerNumber, a.ScheduledDate, a.TimeSlot) {
			return model.ErrLockerUnavailable
		}
		a.Status = status
		return nil
	})
}

func (m *MemoryRepository) UpdateSchedule(ctx context.Context, id uuid.UUID, date, timeSlot string) error {
	return m.update(ctx, id, func(a *model.LockerAssignment) error {
		if a.Status.Open() && m.slotTaken(id, a.LockerNumber, date, timeSlot) {
			return model.ErrLockerUnavailable
		}
		a.ScheduledDate = date
		a.TimeSlot = timeSlot
		return nil
	})
}

func (m *MemoryRepository) update(ctx context.Context, id uuid.UUID, fn func(a *model.LockerAssignment) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.byID[id]
	if !ok {
		return model.ErrNotFound
	}

	if err := fn(a); err != nil {
		return err
	}
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return model.ErrNotFound
	}
	delete(m.byID, id)
	m.order = slices.DeleteFunc(m.order, func(x uuid.UUID) bool { return x == id })
	return nil
}

// slotTaken must be called with the lock held.
func (m *MemoryRepository) slotTaken(except uuid.UUID, locker int, date, timeSlot string) bool {
	for id, a := range m.byID {
		if id != except && a.Status.Open() &&
			a.LockerNumber == locker && a.ScheduledDate == date && a.TimeSlot == timeSlot {
			return true
		}
	}
	return false
}

func clone(a *model.LockerAssignment) *model.LockerAssignment {
	cp := *a
	cp.Products = slices.Clone(a.Products)
	return &cp
}
