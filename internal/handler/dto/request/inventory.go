package request

import (
	"strings"

	"github.com/google/uuid"
)

type UpsertRangeRequest struct {
	VariantID       *uuid.UUID `json:"variant_id,omitempty"`
	SlotID          *uuid.UUID `json:"slot_id,omitempty"`
	FromDate        string     `json:"from_date" binding:"required"`
	ToDate          string     `json:"to_date" binding:"required"`
	BasePricePerDay int64      `json:"base_price_per_day" binding:"min=0"`
	TotalCapacity   int32      `json:"total_capacity" binding:"required,min=1"`
}

type BlockDateRequest struct {
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	SlotID    *uuid.UUID `json:"slot_id,omitempty"`
	Date      string     `json:"date" binding:"required"`
	Reason    *string    `json:"reason,omitempty"`
}

func (r BlockDateRequest) GetReason() *string {
	if r.Reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type UpsertOverrideRequest struct {
	VariantID      *uuid.UUID `json:"variant_id,omitempty"`
	SlotID         *uuid.UUID `json:"slot_id,omitempty"`
	Date           string     `json:"date" binding:"required"`
	Price          *int64     `json:"price,omitempty"`
	TotalCapacity  *int32     `json:"total_capacity,omitempty"`
	AvailableCount *int32     `json:"available_count,omitempty"`
}

type ConsumeCapacityRequest struct {
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	SlotID    *uuid.UUID `json:"slot_id,omitempty"`
	Date      string     `json:"date" binding:"required"`
	Quantity  int32      `json:"quantity" binding:"required,min=1"`
}
