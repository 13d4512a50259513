package models

import "errors"

var (
	ErrTravelOptionNotFound = errors.New("travel option not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrTravelOptionExists   = errors.New("travel option already exists")
	ErrInvalidTravelOption  = errors.New("invalid travel option")
	ErrSeatsUnavailable     = errors.New("not enough seats available")
	ErrNotCancellable       = errors.New("booking cannot be cancelled")
	ErrForbidden            = errors.New("operation not permitted")
	ErrDuplicateBookingRef  = errors.New("booking reference already exists")
	ErrInvalidCursor        = errors.New("invalid cursor")
	ErrInvalidUUID          = errors.New("invalid uuid")
)
