//go:build integration

package repository_test

import (
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ANGELZzz6/Hako-sub000/internal/model"
	repository "github.com/ANGELZzz6/Hako-sub000/internal/repository/assignment"
)

func fakeAssignment(locker int, date, slot string) *model.LockerAssignment {
	now := time.Now().UTC().Truncate(time.Microsecond)
	l, w, h := gofakeit.Float64Range(1, 15), gofakeit.Float64Range(1, 15), gofakeit.Float64Range(1, 15)

	return &model.LockerAssignment{
		ID:            uuid.New(),
		AppointmentID: gofakeit.UUID(),
		LockerNumber:  locker,
		ScheduledDate: date,
		TimeSlot:      slot,
		Products: []model.PackedProduct{{
			ProductID:       gofakeit.UUID(),
			ItemID:          gofakeit.UUID(),
			Name:            gofakeit.ProductName(),
			Dimensions:      model.Dimensions{Length: l, Width: w, Height: h, Weight: gofakeit.Float64Range(1, 900)},
			CalculatedSlots: 1,
			Quantity:        1,
			Volume:          l * w * h,
		}},
		TotalSlotsUsed: 1,
		Status:         model.StatusReserved,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

var _ = Describe("Postgres assignment repository", func() {
	BeforeEach(func() {
		By("truncating locker_assignments")
		_, err := pool.Exec(ctx, "TRUNCATE locker_assignments")
		Expect(err).NotTo(HaveOccurred())
	})

	It("round-trips an assignment with its products", func() {
		r := repository.NewAssignmentRepository(pool)
		a := fakeAssignment(1, "2025-06-01", "10:00")

		Expect(r.Create(ctx, a)).To(Succeed())

		got, err := r.AssignmentByID(ctx, a.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.ScheduledDate).To(Equal("2025-06-01"))
		Expect(got.TimeSlot).To(Equal("10:00"))
		Expect(got.Status).To(Equal(model.StatusReserved))
		Expect(got.Products).To(HaveLen(1))
		Expect(got.Products[0].ProductID).To(Equal(a.Products[0].ProductID))
		Expect(got.Products[0].Dimensions.Length).To(BeNumerically("~", a.Products[0].Dimensions.Length, 1e-9))
	})

	It("refuses a second open assignment on the same triple", func() {
		r := repository.NewAssignmentRepository(pool)

		Expect(r.Create(ctx, fakeAssignment(2, "2025-06-01", "10:00"))).To(Succeed())
		err := r.Create(ctx, fakeAssignment(2, "2025-06-01", "10:00"))
		Expect(err).To(MatchError(model.ErrLockerUnavailable))

		list, err := r.List(ctx, model.AssignmentFilter{ScheduledDate: "2025-06-01"})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
	})

	It("frees the triple once the assignment is cancelled", func() {
		r := repository.NewAssignmentRepository(pool)
		a := fakeAssignment(3, "2025-06-01", "10:00")

		Expect(r.Create(ctx, a)).To(Succeed())
		Expect(r.UpdateStatus(ctx, a.ID, model.StatusCancelled)).To(Succeed())
		Expect(r.Create(ctx, fakeAssignment(3, "2025-06-01", "10:00"))).To(Succeed())
	})

	It("admits exactly one of many concurrent bookings", func() {
		r := repository.NewAssignmentRepository(pool)

		var (
			wg          sync.WaitGroup
			mu          sync.Mutex
			wins, taken int
		)
		for range 16 {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()

				err := r.Create(ctx, fakeAssignment(4, "2025-06-01", "12:00"))
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					wins++
				default:
					Expect(err).To(MatchError(model.ErrLockerUnavailable))
					taken++
				}
			}()
		}
		wg.Wait()

		Expect(wins).To(Equal(1))
		Expect(taken).To(Equal(15))
	})

	It("filters and keeps insertion order", func() {
		r := repository.NewAssignmentRepository(pool)
		a := fakeAssignment(1, "2025-06-02", "09:00")
		b := fakeAssignment(2, "2025-06-02", "09:00")
		b.CreatedAt = a.CreatedAt.Add(time.Second)
		c := fakeAssignment(1, "2025-06-03", "09:00")

		for _, x := range []*model.LockerAssignment{a, b, c} {
			Expect(r.Create(ctx, x)).To(Succeed())
		}

		list, err := r.List(ctx, model.AssignmentFilter{
			ScheduledDate: "2025-06-02",
			TimeSlot:      "09:00",
			Statuses:      model.OpenStatuses,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(2))
		Expect(list[0].ID).To(Equal(a.ID))
		Expect(list[1].ID).To(Equal(b.ID))

		locker := 1
		list, err = r.List(ctx, model.AssignmentFilter{LockerNumber: &locker})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(2))
	})

	It("moves an assignment to another slot and deletes it", func() {
		r := repository.NewAssignmentRepository(pool)
		a := fakeAssignment(5, "2025-06-01", "10:00")
		Expect(r.Create(ctx, a)).To(Succeed())

		Expect(r.UpdateSchedule(ctx, a.ID, "2025-06-04", "15:30")).To(Succeed())
		got, err := r.AssignmentByID(ctx, a.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.ScheduledDate).To(Equal("2025-06-04"))
		Expect(got.TimeSlot).To(Equal("15:30"))

		Expect(r.Delete(ctx, a.ID)).To(Succeed())
		Expect(r.Delete(ctx, a.ID)).To(MatchError(model.ErrNotFound))

		_, err = r.AssignmentByID(ctx, a.ID)
		Expect(err).To(MatchError(model.ErrNotFound))
	})
})
