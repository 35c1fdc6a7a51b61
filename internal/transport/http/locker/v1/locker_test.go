package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ANGELZzz6/Hako-sub000/internal/metrics"
	assignmentRepository "github.com/ANGELZzz6/Hako-sub000/internal/repository/assignment"
	service "github.com/ANGELZzz6/Hako-sub000/internal/service/assignment"
	"github.com/ANGELZzz6/Hako-sub000/internal/service/binpack"
	"github.com/ANGELZzz6/Hako-sub000/internal/service/mocks"
	"github.com/ANGELZzz6/Hako-sub000/internal/service/slotgrid"
	lockerv1 "github.com/ANGELZzz6/Hako-sub000/pkg/api/locker/v1"
	"github.com/ANGELZzz6/Hako-sub000/platform/logger"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger.SetNopLogger()

	sender := mocks.NewMockAssignmentReservedSender(t)
	sender.On("SendAssignmentReserved", mock.Anything, mock.Anything).Return(nil).Maybe()

	packer := slotgrid.NewPacker(slotgrid.PolicyDedicated)
	svc := service.NewAssignmentService(
		assignmentRepository.NewMemoryRepository(),
		mocks.NewMockAppointmentRepository(t),
		mocks.NewMockCatalogRepository(t),
		sender,
		packer,
		metrics.NewNop(),
		service.Config{LockerCount: 4, Location: time.UTC, ReadDBTimeout: time.Second, WriteDBTimeout: time.Second},
	)

	r := chi.NewRouter()
	r.Route("/api/v1", NewLockerHandler(svc, packer, binpack.NewPacker(4)).Routes)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, srv.URL+"/api/v1"+path, &buf)
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func read[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createReq(locker int, edge float64, qty int) lockerv1.CreateAssignmentRequest {
	return lockerv1.CreateAssignmentRequest{
		AppointmentID: "a-1",
		LockerNumber:  locker,
		ScheduledDate: "2025-01-15",
		TimeSlot:      "10:00",
		Products: []lockerv1.PackedProduct{{
			ProductID:  "p-1",
			Dimensions: lockerv1.Dimensions{Length: edge, Width: edge, Height: edge},
			Quantity:   qty,
		}},
	}
}

func TestLockerHandlerAssignmentLifecycle(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	resp := do(t, srv, http.MethodPost, "/locker-assignments", createReq(2, 20, 1))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := read[lockerv1.LockerAssignment](t, resp)
	assert.Equal(t, "reserved", created.Status)
	assert.Equal(t, 8, created.TotalSlotsUsed)

	resp = do(t, srv, http.MethodPost, "/locker-assignments", createReq(2, 10, 1))
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, msgLockerUnavailable, read[lockerv1.Error](t, resp).Message)

	resp = do(t, srv, http.MethodGet, "/lockers/2/availability?date=2025-01-15&timeSlot=10:00", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, read[lockerv1.Availability](t, resp).Available)

	resp = do(t, srv, http.MethodGet, "/lockers/2?date=2025-01-15&timeSlot=10:00", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created.ID, read[lockerv1.LockerAssignment](t, resp).ID)

	resp = do(t, srv, http.MethodGet, "/lockers/2/occupancy?date=2025-01-15&timeSlot=10:00", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	occ := read[lockerv1.LockerOccupancy](t, resp)
	require.Len(t, occ.Placed, 1)
	assert.InDelta(t, 6.4, occ.UsagePercentage, 1e-9)
	assert.True(t, occ.CanFitMore)

	resp = do(t, srv, http.MethodGet, "/locker-assignments/"+created.ID+"/voxels", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 8, read[lockerv1.VoxelView](t, resp).Filled)

	resp = do(t, srv, http.MethodPatch, "/locker-assignments/"+created.ID+"/status", lockerv1.UpdateStatusRequest{Status: "lost"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, srv, http.MethodPatch, "/locker-assignments/"+created.ID+"/status", lockerv1.UpdateStatusRequest{Status: "completed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "completed", read[lockerv1.LockerAssignment](t, resp).Status)

	// A completed assignment frees the triple.
	resp = do(t, srv, http.MethodPost, "/locker-assignments", createReq(2, 10, 1))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, srv, http.MethodGet, "/lockers/usage?date=2025-01-15&timeSlot=10:00", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := read[lockerv1.UsageStats](t, resp)
	assert.Equal(t, 1, stats.UsedLockers)
	assert.Equal(t, 3, stats.AvailableLockers)

	resp = do(t, srv, http.MethodDelete, "/locker-assignments/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, srv, http.MethodDelete, "/locker-assignments/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLockerHandlerErrors(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{name: "capacity exceeded", method: http.MethodPost, path: "/locker-assignments", body: createReq(1, 30, 4), want: http.StatusUnprocessableEntity},
		{name: "locker out of range", method: http.MethodPost, path: "/locker-assignments", body: createReq(5, 10, 1), want: http.StatusBadRequest},
		{name: "unknown field", method: http.MethodPost, path: "/locker-assignments", body: map[string]any{"foo": 1}, want: http.StatusBadRequest},
		{name: "bad id", method: http.MethodGet, path: "/locker-assignments/not-a-uuid", want: http.StatusBadRequest},
		{name: "missing by locker", method: http.MethodGet, path: "/lockers/1?date=2025-01-15&timeSlot=10:00", want: http.StatusNotFound},
		{name: "usage without slot", method: http.MethodGet, path: "/lockers/usage?date=2025-01-15", want: http.StatusBadRequest},
		{name: "bad list date", method: http.MethodGet, path: "/locker-assignments?date=tomorrow", want: http.StatusBadRequest},
		{name: "occupancy beyond count", method: http.MethodGet, path: "/lockers/9/occupancy?date=2025-01-15&timeSlot=10:00", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, srv, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestLockerHandlerPacking(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	resp := do(t, srv, http.MethodPost, "/packing/split", lockerv1.SplitRequest{Items: []lockerv1.SplitItem{
		{ItemID: "i-1", ProductID: "p-1", Dimensions: lockerv1.Dimensions{Length: 30, Width: 30, Height: 30}, Quantity: 4},
	}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	split := read[lockerv1.SplitResponse](t, resp)
	require.Len(t, split.Lockers, 2)
	assert.Equal(t, 24, split.Lockers[0].TotalUsedSlots)
	assert.Equal(t, 8, split.Lockers[1].TotalUsedSlots)

	require.Equal(t, http.StatusCreated, do(t, srv, http.MethodPost, "/locker-assignments", createReq(1, 45, 1)).StatusCode)

	resp = do(t, srv, http.MethodPost, "/lockers/best-fit", lockerv1.BestFitRequest{
		ScheduledDate: "2025-01-15",
		TimeSlot:      "10:00",
		Dimensions:    lockerv1.Dimensions{Length: 20, Width: 20, Height: 20},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	scores := read[[]lockerv1.LockerScore](t, resp)
	require.Len(t, scores, 3)
	assert.Equal(t, 2, scores[0].LockerNumber)
}
