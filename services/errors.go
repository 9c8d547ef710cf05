package services

import "errors"

// Sentinel errors for the order/session core. Controllers translate these
// into HTTP status codes with errors.Is; anything else is treated as a
// persistence failure (500, transaction already rolled back).
var (
	ErrNotFound          = errors.New("record not found")
	ErrAlreadyPaid       = errors.New("session is already paid")
	ErrTableOccupied     = errors.New("table already has an active session")
	ErrSessionNotActive  = errors.New("session is not active")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidInput      = errors.New("invalid request data")
)
