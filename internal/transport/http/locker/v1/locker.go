package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ANGELZzz6/Hako-sub000/internal/converter"
	"github.com/ANGELZzz6/Hako-sub000/internal/model"
	"github.com/ANGELZzz6/Hako-sub000/internal/service/binpack"
	"github.com/ANGELZzz6/Hako-sub000/internal/service/slotgrid"
	lockerv1 "github.com/ANGELZzz6/Hako-sub000/pkg/api/locker/v1"
)

type AssignmentService interface {
	LockerCount() int
	CreateAssignment(ctx context.Context, params model.CreateAssignmentParams) (*model.LockerAssignment, error)
	IsLockerAvailable(ctx context.Context, lockerNumber int, date, timeSlot string) (bool, error)
	AssignmentByLocker(ctx context.Context, lockerNumber int, date, timeSlot string) (*model.LockerAssignment, error)
	AllAssignments(ctx context.Context, filter model.AssignmentFilter) ([]model.LockerAssignment, error)
	AssignmentByID(ctx context.Context, id uuid.UUID) (*model.LockerAssignment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.AssignmentStatus) (*model.LockerAssignment, error)
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
	LockerUsageStats(ctx context.Context, date, timeSlot string) (*model.UsageStats, error)
	SyncFromAppointments(ctx context.Context, date string) (*model.SyncResult, error)
}

type Splitter interface {
	Split(items []slotgrid.Item) slotgrid.Report
}

type ContinuousPacker interface {
	CalculateLockerStatus(lockerNumber int, history []model.LockerAssignment) binpack.LockerStatus
	FindBestLockerForProduct(history []model.LockerAssignment, d model.Dimensions) []binpack.LockerScore
}

type handler struct {
	svc      AssignmentService
	splitter Splitter
	packer   ContinuousPacker
}

func NewLockerHandler(service AssignmentService, splitter Splitter, packer ContinuousPacker) *handler {
	return &handler{svc: service, splitter: splitter, packer: packer}
}

// Routes mounts the admin API under the caller's prefix.
func (h *handler) Routes(r chi.Router) {
	r.Route("/locker-assignments", func(r chi.Router) {
		r.Post("/", h.CreateAssignment)
		r.Get("/", h.ListAssignments)
		r.Post("/sync", h.Sync)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetAssignment)
			r.Delete("/", h.DeleteAssignment)
			r.Patch("/status", h.UpdateStatus)
			r.Get("/voxels", h.Voxels)
		})
	})

	r.Route("/lockers", func(r chi.Router) {
		r.Get("/usage", h.UsageStats)
		r.Post("/best-fit", h.BestFit)
		r.Route("/{number}", func(r chi.Router) {
			r.Get("/", h.AssignmentByLocker)
			r.Get("/availability", h.Availability)
			r.Get("/occupancy", h.Occupancy)
		})
	})

	r.Post("/packing/split", h.Split)
}

func (h *handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req lockerv1.CreateAssignmentRequest
	if !decode(w, r, &req) {
		return
	}

	a, err := h.svc.CreateAssignment(r.Context(), converter.CreateAssignmentRequestToParams(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.AssignmentToAPI(*a))
}

func (h *handler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.AssignmentFilter{
		AppointmentID: q.Get("appointmentId"),
		ScheduledDate: q.Get("date"),
		TimeSlot:      q.Get("timeSlot"),
	}
	if raw := q.Get("lockerNumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid lockerNumber")
			return
		}
		filter.LockerNumber = &n
	}
	for _, s := range q["status"] {
		filter.Statuses = append(filter.Statuses, model.AssignmentStatus(s))
	}

	list, err := h.svc.AllAssignments(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.AssignmentsToAPI(list))
}

func (h *handler) GetAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := assignmentID(w, r)
	if !ok {
		return
	}

	a, err := h.svc.AssignmentByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.AssignmentToAPI(*a))
}

func (h *handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := assignmentID(w, r)
	if !ok {
		return
	}

	var req lockerv1.UpdateStatusRequest
	if !decode(w, r, &req) {
		return
	}

	a, err := h.svc.UpdateStatus(r.Context(), id, model.AssignmentStatus(req.Status))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.AssignmentToAPI(*a))
}

func (h *handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := assignmentID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteAssignment(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) Voxels(w http.ResponseWriter, r *http.Request) {
	id, ok := assignmentID(w, r)
	if !ok {
		return
	}

	a, err := h.svc.AssignmentByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.VoxelGridToAPI(*a, slotgrid.Voxelize(a.Products)))
}

func (h *handler) Sync(w http.ResponseWriter, r *http.Request) {
	var req lockerv1.SyncRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := h.svc.SyncFromAppointments(r.Context(), req.Date)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.SyncResultToAPI(*res))
}

func (h *handler) AssignmentByLocker(w http.ResponseWriter, r *http.Request) {
	number, ok := lockerNumber(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	a, err := h.svc.AssignmentByLocker(r.Context(), number, q.Get("date"), q.Get("timeSlot"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.AssignmentToAPI(*a))
}

func (h *handler) Availability(w http.ResponseWriter, r *http.Request) {
	number, ok := lockerNumber(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	date, slot := q.Get("date"), q.Get("timeSlot")

	available, err := h.svc.IsLockerAvailable(r.Context(), number, date, slot)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, lockerv1.Availability{
		LockerNumber:  number,
		ScheduledDate: date,
		TimeSlot:      slot,
		Available:     available,
	})
}

func (h *handler) Occupancy(w http.ResponseWriter, r *http.Request) {
	number, ok := lockerNumber(w, r)
	if !ok {
		return
	}
	if number > h.svc.LockerCount() {
		writeError(w, r, http.StatusBadRequest, "locker number out of range")
		return
	}

	history, ok := h.openAssignments(w, r, r.URL.Query().Get("date"), r.URL.Query().Get("timeSlot"))
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, converter.LockerStatusToAPI(h.packer.CalculateLockerStatus(number, history)))
}

func (h *handler) BestFit(w http.ResponseWriter, r *http.Request) {
	var req lockerv1.BestFitRequest
	if !decode(w, r, &req) {
		return
	}

	d := converter.DimensionsToModel(req.Dimensions)
	if !d.Valid() {
		writeError(w, r, http.StatusBadRequest, "dimensions must be positive")
		return
	}

	history, ok := h.openAssignments(w, r, req.ScheduledDate, req.TimeSlot)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, converter.LockerScoresToAPI(h.packer.FindBestLockerForProduct(history, d)))
}

func (h *handler) UsageStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("date") == "" || q.Get("timeSlot") == "" {
		writeError(w, r, http.StatusBadRequest, "date and timeSlot are required")
		return
	}

	stats, err := h.svc.LockerUsageStats(r.Context(), q.Get("date"), q.Get("timeSlot"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.UsageStatsToAPI(*stats))
}

func (h *handler) Split(w http.ResponseWriter, r *http.Request) {
	var req lockerv1.SplitRequest
	if !decode(w, r, &req) {
		return
	}

	items := make([]slotgrid.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, converter.SplitItemToModel(it))
	}

	writeJSON(w, r, http.StatusOK, converter.SplitReportToAPI(h.splitter.Split(items)))
}

func (h *handler) openAssignments(
	w http.ResponseWriter,
	r *http.Request,
	date, timeSlot string,
) ([]model.LockerAssignment, bool) {
	if date == "" || timeSlot == "" {
		writeError(w, r, http.StatusBadRequest, "date and timeSlot are required")
		return nil, false
	}

	history, err := h.svc.AllAssignments(r.Context(), model.AssignmentFilter{
		ScheduledDate: date,
		TimeSlot:      timeSlot,
		Statuses:      model.OpenStatuses,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return nil, false
	}

	return history, true
}

func assignmentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid assignment id")
		return uuid.Nil, false
	}
	return id, true
}

func lockerNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || n < 1 {
		writeError(w, r, http.StatusBadRequest, "invalid locker number")
		return 0, false
	}
	return n, true
}
