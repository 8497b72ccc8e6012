package readstore

import (
	"context"
	"time"

	"bookstay/internal/domain/inventory"
	"bookstay/internal/infra"
	"bookstay/internal/infra/db"
	"bookstay/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BlockReadStore struct {
	db db.DBTX
}

func NewBlockReadStore(dbtx db.DBTX) *BlockReadStore {
	return &BlockReadStore{db: dbtx}
}

func (r *BlockReadStore) ListByScope(ctx context.Context, scope inventory.Scope) ([]inventory.BlockedDate, error) {
	const query = `
SELECT id, listing_id, variant_id, slot_id, day, reason, created_by
FROM blocked_dates
WHERE listing_id = $1 AND variant_id = $2 AND slot_id = $3
ORDER BY day`

	rows, err := r.db.Query(ctx, query, scope.ListingID(), scope.VariantID(), scope.SlotID())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked dates", err)
	}
	defer rows.Close()

	var blocks []inventory.BlockedDate
	for rows.Next() {
		var (
			b                            inventory.BlockedDate
			listingID, variantID, slotID uuid.UUID
			day                          time.Time
			reason                       pgtype.Text
		)
		if err := rows.Scan(&b.ID, &listingID, &variantID, &slotID, &day, &reason, &b.CreatedBy); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocked date row", err)
		}
		b.Scope = inventory.ScopeFrom(listingID, variantID, slotID)
		b.Day = inventory.NewDay(day)
		b.Reason = pgconv.StringPtrFromPgtype(reason)
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocked date rows", err)
	}
	return blocks, nil
}
