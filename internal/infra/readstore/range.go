package readstore

import (
	"context"
	"time"

	"bookstay/internal/domain/inventory"
	"bookstay/internal/infra"
	"bookstay/internal/infra/db"

	"github.com/google/uuid"
)

type RangeReadStore struct {
	db db.DBTX
}

func NewRangeReadStore(dbtx db.DBTX) *RangeReadStore {
	return &RangeReadStore{db: dbtx}
}

// ListActiveByScope returns active ranges in insertion order. The exclusion
// constraint keeps active spans disjoint per scope, so order only matters
// for the resolver's defensive last-wins handling of corrupt data.
func (r *RangeReadStore) ListActiveByScope(ctx context.Context, scope inventory.Scope) ([]inventory.DateRange, error) {
	const query = `
SELECT id, listing_id, variant_id, slot_id, from_day, to_day, base_price_per_day, total_capacity, is_active
FROM availability_ranges
WHERE listing_id = $1 AND variant_id = $2 AND slot_id = $3 AND is_active
ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, scope.ListingID(), scope.VariantID(), scope.SlotID())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active ranges", err)
	}
	defer rows.Close()

	var ranges []inventory.DateRange
	for rows.Next() {
		var (
			rec                          inventory.DateRange
			listingID, variantID, slotID uuid.UUID
			fromT, toT                   time.Time
		)
		if err := rows.Scan(&rec.ID, &listingID, &variantID, &slotID, &fromT, &toT, &rec.BasePricePerDay, &rec.TotalCapacity, &rec.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan range row", err)
		}
		rec.Scope = inventory.ScopeFrom(listingID, variantID, slotID)
		span, err := inventory.NewDaySpan(inventory.NewDay(fromT), inventory.NewDay(toT))
		if err != nil {
			return nil, infra.WrapRepoErr("stored range has invalid span", err)
		}
		rec.Span = span
		ranges = append(ranges, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate range rows", err)
	}
	return ranges, nil
}
