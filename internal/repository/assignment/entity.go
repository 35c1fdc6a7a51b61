package repository

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentEntity struct {
	ID               uuid.UUID
	AppointmentID    string
	LockerNumber     int
	ScheduledDate    string
	TimeSlot         string
	Products         []ProductEntity
	TotalSlotsUsed   int
	Status           string
	CapacityExceeded bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProductEntity is stored in the products jsonb column. Field names are
// shared with existing readers of that column.
type ProductEntity struct {
	ProductID       string           `json:"productId"`
	ItemID          string           `json:"itemId,omitempty"`
	Name            string           `json:"name,omitempty"`
	Dimensions      DimensionsEntity `json:"dimensions"`
	CalculatedSlots int              `json:"calculatedSlots"`
	Quantity        int              `json:"quantity"`
	Volume          float64          `json:"volume"`
}

type DimensionsEntity struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}
