package response

import (
	"bookstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type RangeResponse struct {
	ID              uuid.UUID  `json:"id"`
	ListingID       uuid.UUID  `json:"listingId"`
	VariantID       *uuid.UUID `json:"variantId,omitempty"`
	SlotID          *uuid.UUID `json:"slotId,omitempty"`
	FromDate        string     `json:"fromDate"`
	ToDate          string     `json:"toDate"`
	BasePricePerDay int64      `json:"basePricePerDay"`
	TotalCapacity   int32      `json:"totalCapacity"`
	Active          bool       `json:"active"`
}

type OverrideResponse struct {
	ID             uuid.UUID  `json:"id"`
	ListingID      uuid.UUID  `json:"listingId"`
	VariantID      *uuid.UUID `json:"variantId,omitempty"`
	SlotID         *uuid.UUID `json:"slotId,omitempty"`
	Date           string     `json:"date"`
	Price          *int64     `json:"price,omitempty"`
	TotalCapacity  *int32     `json:"totalCapacity,omitempty"`
	AvailableCount *int32     `json:"availableCount,omitempty"`
	TriggerType    string     `json:"triggerType"`
}

type BlockResponse struct {
	ID        uuid.UUID  `json:"id"`
	ListingID uuid.UUID  `json:"listingId"`
	VariantID *uuid.UUID `json:"variantId,omitempty"`
	SlotID    *uuid.UUID `json:"slotId,omitempty"`
	Date      string     `json:"date"`
	Reason    *string    `json:"reason,omitempty"`
	CreatedBy uuid.UUID  `json:"createdBy"`
}

func FromRangeView(rm *queries.RangeView) *RangeResponse {
	return &RangeResponse{
		ID:              rm.ID,
		ListingID:       rm.ListingID,
		VariantID:       rm.VariantID,
		SlotID:          rm.SlotID,
		FromDate:        rm.FromDate,
		ToDate:          rm.ToDate,
		BasePricePerDay: rm.BasePricePerDay,
		TotalCapacity:   rm.TotalCapacity,
		Active:          rm.Active,
	}
}

func FromOverrideView(rm *queries.OverrideView) *OverrideResponse {
	return &OverrideResponse{
		ID:             rm.ID,
		ListingID:      rm.ListingID,
		VariantID:      rm.VariantID,
		SlotID:         rm.SlotID,
		Date:           rm.Date,
		Price:          rm.Price,
		TotalCapacity:  rm.TotalCapacity,
		AvailableCount: rm.AvailableCount,
		TriggerType:    rm.TriggerType,
	}
}

func FromBlockView(rm *queries.BlockView) *BlockResponse {
	return &BlockResponse{
		ID:        rm.ID,
		ListingID: rm.ListingID,
		VariantID: rm.VariantID,
		SlotID:    rm.SlotID,
		Date:      rm.Date,
		Reason:    rm.Reason,
		CreatedBy: rm.CreatedBy,
	}
}
