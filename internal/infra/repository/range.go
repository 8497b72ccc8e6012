package repository

import (
	"context"
	"errors"

	"bookstay/internal/domain/inventory"
	"bookstay/internal/infra"
	"bookstay/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeExclusionViolation = "23P01"

type RangeRepository struct {
	db db.DBTX
}

func NewRangeRepository(dbtx db.DBTX) *RangeRepository {
	return &RangeRepository{db: dbtx}
}

// DeleteOverlapping removes every active range for the scope whose span
// intersects the given span. Always paired with an Insert inside one
// transaction; running it alone would leave a coverage gap.
func (r *RangeRepository) DeleteOverlapping(ctx context.Context, scope inventory.Scope, span inventory.DaySpan) (int64, error) {
	const stmt = `
DELETE FROM availability_ranges
WHERE listing_id = $1 AND variant_id = $2 AND slot_id = $3 AND is_active
  AND from_day <= $5 AND to_day >= $4`

	tag, err := r.db.Exec(ctx, stmt,
		scope.ListingID(), scope.VariantID(), scope.SlotID(),
		span.From().Time(), span.To().Time(),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete overlapping ranges", err)
	}
	return tag.RowsAffected(), nil
}

func (r *RangeRepository) Insert(ctx context.Context, rng inventory.DateRange) (uuid.UUID, error) {
	const stmt = `
INSERT INTO availability_ranges (listing_id, variant_id, slot_id, from_day, to_day, base_price_per_day, total_capacity, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, stmt,
		rng.Scope.ListingID(), rng.Scope.VariantID(), rng.Scope.SlotID(),
		rng.Span.From().Time(), rng.Span.To().Time(),
		rng.BasePricePerDay, rng.TotalCapacity, rng.Active,
	).Scan(&id)
	if err != nil {
		if isExclusionViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("range overlaps an existing active range", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert range", err)
	}
	return id, nil
}

func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeExclusionViolation
}
