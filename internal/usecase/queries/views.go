package queries

import "github.com/google/uuid"

// Read models returned by inventory commands after a successful write.

type RangeView struct {
	ID              uuid.UUID  `json:"id"`
	ListingID       uuid.UUID  `json:"listing_id"`
	VariantID       *uuid.UUID `json:"variant_id,omitempty"`
	SlotID          *uuid.UUID `json:"slot_id,omitempty"`
	FromDate        string     `json:"from_date"`
	ToDate          string     `json:"to_date"`
	BasePricePerDay int64      `json:"base_price_per_day"`
	TotalCapacity   int32      `json:"total_capacity"`
	Active          bool       `json:"active"`
}

type OverrideView struct {
	ID             uuid.UUID  `json:"id"`
	ListingID      uuid.UUID  `json:"listing_id"`
	VariantID      *uuid.UUID `json:"variant_id,omitempty"`
	SlotID         *uuid.UUID `json:"slot_id,omitempty"`
	Date           string     `json:"date"`
	Price          *int64     `json:"price,omitempty"`
	TotalCapacity  *int32     `json:"total_capacity,omitempty"`
	AvailableCount *int32     `json:"available_count,omitempty"`
	TriggerType    string     `json:"trigger_type"`
}

type BlockView struct {
	ID        uuid.UUID  `json:"id"`
	ListingID uuid.UUID  `json:"listing_id"`
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	SlotID    *uuid.UUID `json:"slot_id,omitempty"`
	Date      string     `json:"date"`
	Reason    *string    `json:"reason,omitempty"`
	CreatedBy uuid.UUID  `json:"created_by"`
}
