package repository

import (
	"context"

	"bookstay/internal/domain/inventory"
	"bookstay/internal/infra"
	"bookstay/internal/infra/db"
	"bookstay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BlockRepository struct {
	db db.DBTX
}

func NewBlockRepository(dbtx db.DBTX) *BlockRepository {
	return &BlockRepository{db: dbtx}
}

func (r *BlockRepository) Insert(ctx context.Context, b inventory.BlockedDate) (uuid.UUID, error) {
	const stmt = `
INSERT INTO blocked_dates (listing_id, variant_id, slot_id, day, reason, created_by)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, stmt,
		b.Scope.ListingID(), b.Scope.VariantID(), b.Scope.SlotID(), b.Day.Time(),
		pgconv.StringPtrToPgtype(b.Reason), b.CreatedBy,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert blocked date", err)
	}
	return id, nil
}

// DeleteByKey removes every matching block row. Zero rows affected is a
// successful no-op: unblocking a never-blocked day is not an error.
func (r *BlockRepository) DeleteByKey(ctx context.Context, scope inventory.Scope, day inventory.Day) (int64, error) {
	const stmt = `
DELETE FROM blocked_dates
WHERE listing_id = $1 AND variant_id = $2 AND slot_id = $3 AND day = $4`

	tag, err := r.db.Exec(ctx, stmt, scope.ListingID(), scope.VariantID(), scope.SlotID(), day.Time())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete blocked date", err)
	}
	return tag.RowsAffected(), nil
}
