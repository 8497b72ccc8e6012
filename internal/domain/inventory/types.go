package inventory

// TriggerType records what caused an override row to change, so audit
// trails can distinguish human edits from system-driven decrements.
type TriggerType string

const (
	TriggerSellerUpdate       TriggerType = "seller_update"
	TriggerBookingConsumption TriggerType = "booking_consumption"
	TriggerSystem             TriggerType = "system"
)

func (t TriggerType) String() string {
	return string(t)
}

func (t TriggerType) IsValid() bool {
	switch t {
	case TriggerSellerUpdate, TriggerBookingConsumption, TriggerSystem:
		return true
	default:
		return false
	}
}

// EntrySource names the highest-precedence data source that decided a
// calendar entry's final state.
type EntrySource string

const (
	SourceRange    EntrySource = "range"
	SourceOverride EntrySource = "override"
	SourceBooked   EntrySource = "booked"
	SourceBlocked  EntrySource = "blocked"
)

func (s EntrySource) String() string {
	return string(s)
}
