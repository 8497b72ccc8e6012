package shared

import (
	"context"

	"bookstay/internal/domain/inventory"
	"bookstay/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Ranges() RangeRepository
	Overrides() OverrideRepository
	Blocks() BlockRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the lookups command handlers need inside a transaction.
type CommandReads interface {
	OverrideByKey(ctx context.Context, scope inventory.Scope, day inventory.Day) (*inventory.DailyOverride, error)
}

type RangeRepository interface {
	DeleteOverlapping(ctx context.Context, scope inventory.Scope, span inventory.DaySpan) (int64, error)
	Insert(ctx context.Context, rng inventory.DateRange) (uuid.UUID, error)
}

type OverrideRepository interface {
	Upsert(ctx context.Context, o inventory.DailyOverride) (uuid.UUID, error)
	DeleteByKey(ctx context.Context, scope inventory.Scope, day inventory.Day) (int64, error)
	ConsumeCapacity(ctx context.Context, scope inventory.Scope, day inventory.Day, quantity int32) error
}

type BlockRepository interface {
	Insert(ctx context.Context, b inventory.BlockedDate) (uuid.UUID, error)
	DeleteByKey(ctx context.Context, scope inventory.Scope, day inventory.Day) (int64, error)
}
