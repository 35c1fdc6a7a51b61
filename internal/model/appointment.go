package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// SyncableAppointmentStatuses are the statuses that hold lockers.
var SyncableAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusConfirmed,
}

type AppointmentItem struct {
	ID        string
	ProductID string
	UnitID    string
	Name      string
	Quantity  int
	Variants  map[string]string

	Dimensions         *Dimensions
	ComputedDimensions *Dimensions

	Unit            *InventoryUnit
	Snapshot        *ProductSnapshot
	Product         *Product
	OriginalProduct *Product
}

type Appointment struct {
	ID            string
	UserID        string
	ScheduledDate time.Time
	TimeSlot      string
	Status        AppointmentStatus
	Items         []AppointmentItem
}

// AppointmentConfirmed is the event that triggers a sync of the appointment day.
type AppointmentConfirmed struct {
	EventID       string
	AppointmentID string
	ScheduledDate string
	TimeSlot      string
}
