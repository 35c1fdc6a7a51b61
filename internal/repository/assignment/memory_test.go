package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
)

func newAssignment(locker int, date, slot string, status model.AssignmentStatus) *model.LockerAssignment {
	return &model.LockerAssignment{
		ID:            uuid.New(),
		AppointmentID: gofakeit.UUID(),
		LockerNumber:  locker,
		ScheduledDate: date,
		TimeSlot:      slot,
		Status:        status,
		Products: []model.PackedProduct{{
			ProductID:       gofakeit.UUID(),
			Dimensions:      model.Dimensions{Length: 10, Width: 10, Height: 10},
			CalculatedSlots: 1,
			Quantity:        1,
		}},
		TotalSlotsUsed: 1,
	}
}

func TestMemoryRepositoryCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("second open assignment on the same slot is refused", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepository()
		require.NoError(t, repo.Create(ctx, newAssignment(1, "2025-03-01", "10:00", model.StatusReserved)))

		err := repo.Create(ctx, newAssignment(1, "2025-03-01", "10:00", model.StatusActive))
		assert.ErrorIs(t, err, model.ErrLockerUnavailable)

		list, err := repo.List(ctx, model.AssignmentFilter{})
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("closed assignments do not hold the slot", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepository()
		require.NoError(t, repo.Create(ctx, newAssignment(1, "2025-03-01", "10:00", model.StatusCancelled)))
		require.NoError(t, repo.Create(ctx, newAssignment(1, "2025-03-01", "10:00", model.StatusCompleted)))
		require.NoError(t, repo.Create(ctx, newAssignment(1, "2025-03-01", "10:00", model.StatusReserved)))
	})

	t.Run("other locker, date or slot is free", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepository()
		require.NoError(t, repo.Create(ctx, newAssignment(1, "2025-03-01", "10:00", model.StatusReserved)))
		require.NoError(t, repo.Create(ctx, newAssignment(2, "2025-03-01", "10:00", model.StatusReserved)))
		require.NoError(t, repo.Create(ctx, newAssignment(1, "2025-03-02", "10:00", model.StatusReserved)))
		require.NoError(t, repo.Create(ctx, newAssignment(1, "2025-03-01", "11:00", model.StatusReserved)))
	})

	t.Run("concurrent creates on one slot admit exactly one", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepository()

		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			wins int
		)
		for range 32 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if repo.Create(ctx, newAssignment(5, "2025-03-01", "10:00", model.StatusReserved)) == nil {
					mu.Lock()
					wins++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, wins)
	})
}

func TestMemoryRepositoryUpdates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("status update and not found", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepository()
		a := newAssignment(3, "2025-03-01", "10:00", model.StatusReserved)
		require.NoError(t, repo.Create(ctx, a))

		require.NoError(t, repo.UpdateStatus(ctx, a.ID, model.StatusActive))
		got, err := repo.AssignmentByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusActive, got.Status)

		assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), model.StatusActive), model.ErrNotFound)
	})

	t.Run("reopening onto a taken slot is refused", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepository()
		old := newAssignment(3, "2025-03-01", "10:00", model.StatusCancelled)
		cur := newAssignment(3, "2025-03-01", "10:00", model.StatusReserved)
		require.NoError(t, repo.Create(ctx, old))
		require.NoError(t, repo.Create(ctx, cur))

		assert.ErrorIs(t, repo.UpdateStatus(ctx, old.ID, model.StatusReserved), model.ErrLockerUnavailable)
	})

	t.Run("schedule refresh respects the slot rule", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepository()
		a := newAssignment(4, "2025-03-01", "10:00", model.StatusReserved)
		b := newAssignment(4, "2025-03-01", "12:00", model.StatusReserved)
		require.NoError(t, repo.Create(ctx, a))
		require.NoError(t, repo.Create(ctx, b))

		assert.ErrorIs(t, repo.UpdateSchedule(ctx, a.ID, "2025-03-01", "12:00"), model.ErrLockerUnavailable)
		require.NoError(t, repo.UpdateSchedule(ctx, a.ID, "2025-03-02", "12:00"))

		got, err := repo.AssignmentByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "2025-03-02", got.ScheduledDate)
	})

	t.Run("delete keeps insertion order of the rest", func(t *testing.T) {
		t.Parallel()

		repo := NewMemoryRepository()
		a := newAssignment(1, "2025-03-01", "10:00", model.StatusReserved)
		b := newAssignment(2, "2025-03-01", "10:00", model.StatusReserved)
		c := newAssignment(3, "2025-03-01", "10:00", model.StatusReserved)
		for _, x := range []*model.LockerAssignment{a, b, c} {
			require.NoError(t, repo.Create(ctx, x))
		}

		require.NoError(t, repo.Delete(ctx, b.ID))
		assert.ErrorIs(t, repo.Delete(ctx, b.ID), model.ErrNotFound)

		list, err := repo.List(ctx, model.AssignmentFilter{ScheduledDate: "2025-03-01"})
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, a.ID, list[0].ID)
		assert.Equal(t, c.ID, list[1].ID)
	})
}

func TestMemoryRepositoryListFilter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepository()

	a := newAssignment(1, "2025-03-01", "10:00", model.StatusReserved)
	b := newAssignment(2, "2025-03-01", "10:00", model.StatusCompleted)
	c := newAssignment(1, "2025-03-02", "10:00", model.StatusActive)
	for _, x := range []*model.LockerAssignment{a, b, c} {
		require.NoError(t, repo.Create(ctx, x))
	}

	locker := 1
	tests := []struct {
		name   string
		filter model.AssignmentFilter
		want   []uuid.UUID
	}{
		{name: "empty filter", filter: model.AssignmentFilter{}, want: []uuid.UUID{a.ID, b.ID, c.ID}},
		{name: "by date", filter: model.AssignmentFilter{ScheduledDate: "2025-03-01"}, want: []uuid.UUID{a.ID, b.ID}},
		{name: "by locker", filter: model.AssignmentFilter{LockerNumber: &locker}, want: []uuid.UUID{a.ID, c.ID}},
		{name: "open only", filter: model.AssignmentFilter{Statuses: model.OpenStatuses}, want: []uuid.UUID{a.ID, c.ID}},
		{name: "by appointment", filter: model.AssignmentFilter{AppointmentID: b.AppointmentID}, want: []uuid.UUID{b.ID}},
		{name: "no match", filter: model.AssignmentFilter{TimeSlot: "18:00"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			list, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)

			var got []uuid.UUID
			for _, x := range list {
				got = append(got, x.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
