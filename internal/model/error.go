package model

import "errors"

var (
	ErrValidation        = errors.New("validation error")         // 400
	ErrNotFound          = errors.New("assignment not found")     // 404
	ErrLockerUnavailable = errors.New("locker unavailable")       // 409
	ErrCapacityExceeded  = errors.New("locker capacity exceeded") // 422

	// ErrPackingDegraded tags a result that was produced from fallback data
	// or that formally exceeds locker capacity. It is reported, never returned.
	ErrPackingDegraded = errors.New("packing degraded")
)
