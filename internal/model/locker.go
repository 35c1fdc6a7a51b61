package model

const (
	// LockerSlots is the discrete capacity of one locker: a 3x3x3 grid.
	LockerSlots = 27
	// SlotEdge is the side of one slot cube in centimetres.
	SlotEdge = 15.0
	// LockerEdge is the side of the continuous locker box in centimetres.
	LockerEdge = 50.0

	DateLayout     = "2006-01-02"
	TimeSlotLayout = "15:04"
)
