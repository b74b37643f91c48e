package store

import "errors"

var (
	// ErrNotFound is returned by id-based mutators when no record matches; nothing is changed
	ErrNotFound = errors.New("not found")
	// ErrDuplicateID is returned by Add* when the caller-supplied id is already taken
	ErrDuplicateID = errors.New("duplicate id")
	// ErrUnknownFlight is returned when a shipment would reference a flight that does not exist
	ErrUnknownFlight = errors.New("unknown flight")
	// ErrInvalid is returned for out-of-set enum values, negative quantities and missing ids
	ErrInvalid = errors.New("invalid value")
)
