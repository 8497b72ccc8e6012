package inventory

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice      = errors.New("price must not be negative")
	ErrInvalidCapacity    = errors.New("total capacity must be at least 1")
	ErrActorRequired      = errors.New("blocking requires an attributable actor")
	ErrNegativeOverride   = errors.New("override capacity fields must not be negative")
	ErrInvalidTriggerType = errors.New("invalid trigger type")
)

// DateRange is a contiguous span of days sharing one base price and capacity
// for a scope. Active ranges for the same scope must not overlap; the range
// mutator enforces this with delete-then-insert replacement and the schema
// backs it with an exclusion constraint.
type DateRange struct {
	ID              uuid.UUID
	Scope           Scope
	Span            DaySpan
	BasePricePerDay int64
	TotalCapacity   int32
	Active          bool
}

func NewDateRange(scope Scope, span DaySpan, basePricePerDay int64, totalCapacity int32) (DateRange, error) {
	if basePricePerDay < 0 {
		return DateRange{}, ErrNegativePrice
	}
	if totalCapacity < 1 {
		return DateRange{}, ErrInvalidCapacity
	}
	return DateRange{
		Scope:           scope,
		Span:            span,
		BasePricePerDay: basePricePerDay,
		TotalCapacity:   totalCapacity,
		Active:          true,
	}, nil
}

// DailyOverride is a single day's exception to its covering range. Nil
// fields inherit from the range; capacity fields only exist on override
// rows, which makes them the sole input to booked-state inference.
type DailyOverride struct {
	ID             uuid.UUID
	Scope          Scope
	Day            Day
	Price          *int64
	TotalCapacity  *int32
	AvailableCount *int32
	Trigger        TriggerType
}

func NewDailyOverride(scope Scope, day Day, price *int64, totalCapacity, availableCount *int32, trigger TriggerType) (DailyOverride, error) {
	if price != nil && *price < 0 {
		return DailyOverride{}, ErrNegativePrice
	}
	if (totalCapacity != nil && *totalCapacity < 0) || (availableCount != nil && *availableCount < 0) {
		return DailyOverride{}, ErrNegativeOverride
	}
	if !trigger.IsValid() {
		return DailyOverride{}, ErrInvalidTriggerType
	}
	return DailyOverride{
		Scope:          scope,
		Day:            day,
		Price:          price,
		TotalCapacity:  totalCapacity,
		AvailableCount: availableCount,
		Trigger:        trigger,
	}, nil
}

// BlockedDate unconditionally excludes a day from bookability.
type BlockedDate struct {
	ID        uuid.UUID
	Scope     Scope
	Day       Day
	Reason    *string
	CreatedBy uuid.UUID
}

func NewBlockedDate(scope Scope, day Day, reason *string, createdBy uuid.UUID) (BlockedDate, error) {
	if createdBy == uuid.Nil {
		return BlockedDate{}, ErrActorRequired
	}
	return BlockedDate{
		Scope:     scope,
		Day:       day,
		Reason:    reason,
		CreatedBy: createdBy,
	}, nil
}
