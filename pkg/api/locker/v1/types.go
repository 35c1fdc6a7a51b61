// Package lockerv1 holds the JSON wire types of the locker admin API and of
// the locker events.
package lockerv1

import "time"

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

type PackedProduct struct {
	ProductID       string     `json:"productId"`
	ItemID          string     `json:"itemId,omitempty"`
	Name            string     `json:"name,omitempty"`
	Dimensions      Dimensions `json:"dimensions"`
	CalculatedSlots int        `json:"calculatedSlots"`
	Quantity        int        `json:"quantity"`
	Volume          float64    `json:"volume"`
}

type LockerAssignment struct {
	ID               string          `json:"id"`
	AppointmentID    string          `json:"appointmentId"`
	LockerNumber     int             `json:"lockerNumber"`
	ScheduledDate    string          `json:"scheduledDate"`
	TimeSlot         string          `json:"timeSlot"`
	Products         []PackedProduct `json:"products"`
	TotalSlotsUsed   int             `json:"totalSlotsUsed"`
	Status           string          `json:"status"`
	CapacityExceeded bool            `json:"capacityExceeded"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type CreateAssignmentRequest struct {
	AppointmentID string          `json:"appointmentId"`
	LockerNumber  int             `json:"lockerNumber"`
	ScheduledDate string          `json:"scheduledDate"`
	TimeSlot      string          `json:"timeSlot"`
	Products      []PackedProduct `json:"products"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type SyncRequest struct {
	Date string `json:"date"`
}

type SyncError struct {
	AppointmentID string `json:"appointmentId"`
	Reason        string `json:"reason"`
}

type SyncSummary struct {
	Processed   int `json:"processed"`
	Created     int `json:"created"`
	Updated     int `json:"updated"`
	Failed      int `json:"failed"`
	LockersUsed int `json:"lockersUsed"`
}

type SyncResponse struct {
	Created []LockerAssignment `json:"created"`
	Updated []LockerAssignment `json:"updated"`
	Errors  []SyncError        `json:"errors"`
	Summary SyncSummary        `json:"summary"`
}

type UsageStats struct {
	ScheduledDate    string  `json:"scheduledDate"`
	TimeSlot         string  `json:"timeSlot"`
	TotalLockers     int     `json:"totalLockers"`
	UsedLockers      int     `json:"usedLockers"`
	AvailableLockers int     `json:"availableLockers"`
	OccupiedLockers  []int   `json:"occupiedLockers"`
	UsedSlots        int     `json:"usedSlots"`
	SlotEfficiency   float64 `json:"slotEfficiency"`
	OccupancyRate    float64 `json:"occupancyRate"`
}

type Availability struct {
	LockerNumber  int    `json:"lockerNumber"`
	ScheduledDate string `json:"scheduledDate"`
	TimeSlot      string `json:"timeSlot"`
	Available     bool   `json:"available"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Placement struct {
	ItemID    string     `json:"itemId,omitempty"`
	ProductID string     `json:"productId,omitempty"`
	Position  Point      `json:"position"`
	Size      Dimensions `json:"size"`
	Rotation  int        `json:"rotation"`
}

type LockerOccupancy struct {
	LockerNumber    int             `json:"lockerNumber"`
	Placed          []Placement     `json:"placed"`
	Unplaced        []PackedProduct `json:"unplaced"`
	UsedVolume      float64         `json:"usedVolume"`
	TotalVolume     float64         `json:"totalVolume"`
	UsagePercentage float64         `json:"usagePercentage"`
	CanFitMore      bool            `json:"canFitMore"`
}

type BestFitRequest struct {
	ScheduledDate string     `json:"scheduledDate"`
	TimeSlot      string     `json:"timeSlot"`
	Dimensions    Dimensions `json:"dimensions"`
}

type LockerScore struct {
	LockerNumber    int       `json:"lockerNumber"`
	Score           float64   `json:"score"`
	UsagePercentage float64   `json:"usagePercentage"`
	Placement       Placement `json:"placement"`
}

type SplitItem struct {
	ItemID     string     `json:"itemId,omitempty"`
	ProductID  string     `json:"productId"`
	Name       string     `json:"name,omitempty"`
	Dimensions Dimensions `json:"dimensions"`
	Quantity   int        `json:"quantity"`
}

type SplitRequest struct {
	Items []SplitItem `json:"items"`
}

type Pack struct {
	Products       []PackedProduct `json:"products"`
	TotalUsedSlots int             `json:"totalUsedSlots"`
	Efficiency     float64         `json:"efficiency"`
	Oversize       bool            `json:"capacityExceeded"`
}

type SplitResponse struct {
	Lockers    []Pack      `json:"lockers"`
	Efficiency float64     `json:"efficiency"`
	Unresolved []SplitItem `json:"unresolved"`
	Rejected   []SplitItem `json:"rejected"`
	Oversized  []SplitItem `json:"oversized"`
}

type Voxel struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Z         int    `json:"z"`
	ProductID string `json:"productId"`
	ItemID    string `json:"itemId,omitempty"`
	Unit      int    `json:"unit"`
}

type VoxelView struct {
	AssignmentID string  `json:"assignmentId"`
	LockerNumber int     `json:"lockerNumber"`
	GridSize     int     `json:"gridSize"`
	Voxels       []Voxel `json:"voxels"`
	Filled       int     `json:"filled"`
	Overflow     int     `json:"overflow"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AssignmentReservedEvent is published for every new reserved assignment.
type AssignmentReservedEvent struct {
	EventID       string `json:"eventId"`
	AssignmentID  string `json:"assignmentId"`
	AppointmentID string `json:"appointmentId"`
	LockerNumber  int    `json:"lockerNumber"`
	ScheduledDate string `json:"scheduledDate"`
	TimeSlot      string `json:"timeSlot"`
	SlotsUsed     int    `json:"slotsUsed"`
	Oversize      bool   `json:"capacityExceeded"`
}

// AppointmentConfirmedEvent is consumed to trigger a sync of its day.
type AppointmentConfirmedEvent struct {
	EventID       string `json:"eventId"`
	AppointmentID string `json:"appointmentId"`
	ScheduledDate string `json:"scheduledDate"`
	TimeSlot      string `json:"timeSlot"`
}
