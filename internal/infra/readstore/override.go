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

type OverrideReadStore struct {
	db db.DBTX
}

func NewOverrideReadStore(dbtx db.DBTX) *OverrideReadStore {
	return &OverrideReadStore{db: dbtx}
}

const overrideColumns = `id, listing_id, variant_id, slot_id, day, price, total_capacity, available_count, trigger_type`

func (r *OverrideReadStore) ListByScope(ctx context.Context, scope inventory.Scope) ([]inventory.DailyOverride, error) {
	const query = `
SELECT ` + overrideColumns + `
FROM daily_overrides
WHERE listing_id = $1 AND variant_id = $2 AND slot_id = $3
ORDER BY day`

	rows, err := r.db.Query(ctx, query, scope.ListingID(), scope.VariantID(), scope.SlotID())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overrides", err)
	}
	defer rows.Close()

	var overrides []inventory.DailyOverride
	for rows.Next() {
		o, err := scanOverride(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan override row", err)
		}
		overrides = append(overrides, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate override rows", err)
	}
	return overrides, nil
}

// FindByKey returns nil without error when no override exists for the day;
// the upsert path treats absence as "create".
func (r *OverrideReadStore) FindByKey(ctx context.Context, scope inventory.Scope, day inventory.Day) (*inventory.DailyOverride, error) {
	const query = `
SELECT ` + overrideColumns + `
FROM daily_overrides
WHERE listing_id = $1 AND variant_id = $2 AND slot_id = $3 AND day = $4`

	row := r.db.QueryRow(ctx, query, scope.ListingID(), scope.VariantID(), scope.SlotID(), day.Time())
	o, err := scanOverride(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find override by key", err)
	}
	return &o, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOverride(row rowScanner) (inventory.DailyOverride, error) {
	var (
		o                            inventory.DailyOverride
		listingID, variantID, slotID uuid.UUID
		day                          time.Time
		price                        pgtype.Int8
		totalCapacity                pgtype.Int4
		availableCount               pgtype.Int4
		trigger                      string
	)
	if err := row.Scan(&o.ID, &listingID, &variantID, &slotID, &day, &price, &totalCapacity, &availableCount, &trigger); err != nil {
		return inventory.DailyOverride{}, err
	}
	o.Scope = inventory.ScopeFrom(listingID, variantID, slotID)
	o.Day = inventory.NewDay(day)
	o.Price = pgconv.Int64PtrFromPgtype(price)
	o.TotalCapacity = pgconv.Int32PtrFromPgtype(totalCapacity)
	o.AvailableCount = pgconv.Int32PtrFromPgtype(availableCount)
	o.Trigger = inventory.TriggerType(trigger)
	return o, nil
}
