package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Scope / date validation errors
	ErrInvalidScope = errors.New("invalid scope")
	ErrInvalidDay   = errors.New("invalid day")
	ErrInvalidSpan  = errors.New("invalid date span")

	// Inventory errors
	ErrInvalidRange      = errors.New("invalid range parameters")
	ErrInvalidOverride   = errors.New("invalid override parameters")
	ErrActorRequired     = errors.New("acting operator required")
	ErrCapacityExhausted = errors.New("insufficient remaining capacity")
	ErrRangeConflict     = errors.New("range conflicts with existing active range")

	// Payment errors
	ErrInvalidPaymentInput = errors.New("invalid payment input")

	// Store errors: always fatal to the call, never degraded to an empty result
	ErrStoreUnavailable = errors.New("data store unavailable")
)
