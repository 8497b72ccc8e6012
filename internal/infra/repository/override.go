package repository

import (
	"context"

	"bookstay/internal/domain/inventory"
	"bookstay/internal/infra"
	"bookstay/internal/infra/db"
	"bookstay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OverrideRepository struct {
	db db.DBTX
}

func NewOverrideRepository(dbtx db.DBTX) *OverrideRepository {
	return &OverrideRepository{db: dbtx}
}

// Upsert writes the full override row keyed by (scope, day). Field-level
// patch semantics live in the command layer, which reads the existing row
// inside the same transaction before calling this.
func (r *OverrideRepository) Upsert(ctx context.Context, o inventory.DailyOverride) (uuid.UUID, error) {
	const stmt = `
INSERT INTO daily_overrides (listing_id, variant_id, slot_id, day, price, total_capacity, available_count, trigger_type)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (listing_id, variant_id, slot_id, day) DO UPDATE SET
    price = EXCLUDED.price,
    total_capacity = EXCLUDED.total_capacity,
    available_count = EXCLUDED.available_count,
    trigger_type = EXCLUDED.trigger_type,
    updated_at = now()
RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, stmt,
		o.Scope.ListingID(), o.Scope.VariantID(), o.Scope.SlotID(), o.Day.Time(),
		pgconv.Int64PtrToPgtype(o.Price),
		pgconv.Int32PtrToPgtype(o.TotalCapacity),
		pgconv.Int32PtrToPgtype(o.AvailableCount),
		o.Trigger.String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert override", err)
	}
	return id, nil
}

func (r *OverrideRepository) DeleteByKey(ctx context.Context, scope inventory.Scope, day inventory.Day) (int64, error) {
	const stmt = `
DELETE FROM daily_overrides
WHERE listing_id = $1 AND variant_id = $2 AND slot_id = $3 AND day = $4`

	tag, err := r.db.Exec(ctx, stmt, scope.ListingID(), scope.VariantID(), scope.SlotID(), day.Time())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete override", err)
	}
	return tag.RowsAffected(), nil
}

// ConsumeCapacity is an atomic compare-and-decrement: the predicate on
// available_count guarantees at most total_capacity units are ever sold
// for a day even under concurrent bookings.
func (r *OverrideRepository) ConsumeCapacity(ctx context.Context, scope inventory.Scope, day inventory.Day, quantity int32) error {
	const stmt = `
UPDATE daily_overrides
SET available_count = available_count - $5,
    trigger_type = $6,
    updated_at = now()
WHERE listing_id = $1 AND variant_id = $2 AND slot_id = $3 AND day = $4
  AND available_count >= $5`

	tag, err := r.db.Exec(ctx, stmt,
		scope.ListingID(), scope.VariantID(), scope.SlotID(), day.Time(),
		quantity, inventory.TriggerBookingConsumption.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to consume capacity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("insufficient remaining capacity", nil, infra.KindConflict)
	}
	return nil
}
