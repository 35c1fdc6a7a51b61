package model

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentStatus string

const (
	StatusReserved  AssignmentStatus = "reserved"
	StatusActive    AssignmentStatus = "active"
	StatusCompleted AssignmentStatus = "completed"
	StatusCancelled AssignmentStatus = "cancelled"
)

// OpenStatuses hold a (locker, date, time slot) triple.
var OpenStatuses = []AssignmentStatus{StatusReserved, StatusActive}

func (s AssignmentStatus) Valid() bool {
	switch s {
	case StatusReserved, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s AssignmentStatus) Open() bool {
	return s == StatusReserved || s == StatusActive
}

type PackedProduct struct {
	ProductID       string
	ItemID          string
	Name            string
	Dimensions      Dimensions
	CalculatedSlots int
	Quantity        int
	Volume          float64
}

type LockerAssignment struct {
	ID               uuid.UUID
	AppointmentID    string
	LockerNumber     int
	ScheduledDate    string
	TimeSlot         string
	Products         []PackedProduct
	TotalSlotsUsed   int
	Status           AssignmentStatus
	CapacityExceeded bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CreateAssignmentParams struct {
	AppointmentID string
	LockerNumber  int
	ScheduledDate string
	TimeSlot      string
	Products      []PackedProduct
}

type AssignmentFilter struct {
	AppointmentID string
	LockerNumber  *int
	ScheduledDate string
	TimeSlot      string
	Statuses      []AssignmentStatus
}

type AssignmentReserved struct {
	EventID       uuid.UUID
	AssignmentID  uuid.UUID
	AppointmentID string
	LockerNumber  int
	ScheduledDate string
	TimeSlot      string
	SlotsUsed     int
	Oversize      bool
}

type SyncError struct {
	AppointmentID string
	Reason        string
}

type SyncSummary struct {
	Processed   int
	Created     int
	Updated     int
	Failed      int
	LockersUsed int
}

type SyncResult struct {
	Created []LockerAssignment
	Updated []LockerAssignment
	Errors  []SyncError
	Summary SyncSummary
}

type UsageStats struct {
	ScheduledDate    string
	TimeSlot         string
	TotalLockers     int
	UsedLockers      int
	AvailableLockers int
	OccupiedLockers  []int
	UsedSlots        int
	SlotEfficiency   float64
	OccupancyRate    float64
}
