package commands

import (
	"context"

	"bookstay/internal/domain/inventory"
	"bookstay/internal/infra"
	"bookstay/internal/pkg/errs"
	"bookstay/internal/pkg/patch"
	"bookstay/internal/usecase/queries"
	"bookstay/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpsertRangeParams struct {
	ListingID       uuid.UUID
	VariantID       *uuid.UUID
	SlotID          *uuid.UUID
	FromDate        string
	ToDate          string
	BasePricePerDay int64
	TotalCapacity   int32
}

type BlockParams struct {
	ListingID uuid.UUID
	VariantID *uuid.UUID
	SlotID    *uuid.UUID
	Date      string
	Reason    *string
	CreatedBy uuid.UUID
}

type UnblockParams struct {
	ListingID uuid.UUID
	VariantID *uuid.UUID
	SlotID    *uuid.UUID
	Date      string
}

type UpsertOverrideParams struct {
	ListingID      uuid.UUID
	VariantID      *uuid.UUID
	SlotID         *uuid.UUID
	Date           string
	Price          *int64
	TotalCapacity  *int32
	AvailableCount *int32
}

type RemoveOverrideParams struct {
	ListingID uuid.UUID
	VariantID *uuid.UUID
	SlotID    *uuid.UUID
	Date      string
}

type ConsumeCapacityParams struct {
	ListingID uuid.UUID
	VariantID *uuid.UUID
	SlotID    *uuid.UUID
	Date      string
	Quantity  int32
}

type InventoryCommands interface {
	UpsertRange(ctx context.Context, p UpsertRangeParams) (*queries.RangeView, error)
	Block(ctx context.Context, p BlockParams) (*queries.BlockView, error)
	Unblock(ctx context.Context, p UnblockParams) error
	UpsertOverride(ctx context.Context, p UpsertOverrideParams) (*queries.OverrideView, error)
	RemoveOverride(ctx context.Context, p RemoveOverrideParams) error
	ConsumeCapacity(ctx context.Context, p ConsumeCapacityParams) error
}

type inventoryCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewInventoryCommands(uow shared.UnitOfWork) InventoryCommands {
	return &inventoryCommandsImpl{uow: uow}
}

// UpsertRange is a destructive replace: every active range intersecting the
// new span is deleted before the insert, all inside one transaction so a
// partial failure rolls back rather than leaving a coverage gap.
func (c *inventoryCommandsImpl) UpsertRange(ctx context.Context, p UpsertRangeParams) (*queries.RangeView, error) {
	scope, err := inventory.NewScope(p.ListingID, p.VariantID, p.SlotID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidScope)
	}
	span, err := parseSpan(p.FromDate, p.ToDate)
	if err != nil {
		return nil, err
	}
	rng, err := inventory.NewDateRange(scope, span, p.BasePricePerDay, p.TotalCapacity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRange)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Ranges().DeleteOverlapping(ctx, scope, span); err != nil {
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		id, err := tx.Ranges().Insert(ctx, rng)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrRangeConflict)
			}
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		rng.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rangeToView(rng), nil
}

func (c *inventoryCommandsImpl) Block(ctx context.Context, p BlockParams) (*queries.BlockView, error) {
	scope, err := inventory.NewScope(p.ListingID, p.VariantID, p.SlotID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidScope)
	}
	day, err := parseDay(p.Date)
	if err != nil {
		return nil, err
	}
	block, err := inventory.NewBlockedDate(scope, day, p.Reason, p.CreatedBy)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrActorRequired)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Blocks().Insert(ctx, block)
		if err != nil {
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		block.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return blockToView(block), nil
}

// Unblock deletes all matching rows. Deleting nothing is a success, not an
// error.
func (c *inventoryCommandsImpl) Unblock(ctx context.Context, p UnblockParams) error {
	scope, err := inventory.NewScope(p.ListingID, p.VariantID, p.SlotID)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidScope)
	}
	day, err := parseDay(p.Date)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Blocks().DeleteByKey(ctx, scope, day); err != nil {
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		return nil
	})
}

// UpsertOverride patches only the supplied fields on an existing row;
// omitting a field keeps its stored value, it never resets to null. A new
// row defaults unsupplied capacity fields to 0. Manual calls always stamp
// seller_update so audit trails can tell human edits from booking-driven
// decrements.
func (c *inventoryCommandsImpl) UpsertOverride(ctx context.Context, p UpsertOverrideParams) (*queries.OverrideView, error) {
	scope, err := inventory.NewScope(p.ListingID, p.VariantID, p.SlotID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidScope)
	}
	day, err := parseDay(p.Date)
	if err != nil {
		return nil, err
	}

	var result inventory.DailyOverride
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Reads().OverrideByKey(ctx, scope, day)
		if err != nil {
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}

		var price *int64
		var total, avail *int32
		if existing != nil {
			price = patch.Keep(p.Price, existing.Price)
			total = patch.Keep(p.TotalCapacity, existing.TotalCapacity)
			avail = patch.Keep(p.AvailableCount, existing.AvailableCount)
		} else {
			price = p.Price
			totalV := patch.Coalesce(p.TotalCapacity, 0)
			availV := patch.Coalesce(p.AvailableCount, 0)
			total, avail = &totalV, &availV
		}

		merged, err := inventory.NewDailyOverride(scope, day, price, total, avail, inventory.TriggerSellerUpdate)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidOverride)
		}

		id, err := tx.Overrides().Upsert(ctx, merged)
		if err != nil {
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		merged.ID = id
		result = merged
		return nil
	})
	if err != nil {
		return nil, err
	}

	return overrideToView(result), nil
}

func (c *inventoryCommandsImpl) RemoveOverride(ctx context.Context, p RemoveOverrideParams) error {
	scope, err := inventory.NewScope(p.ListingID, p.VariantID, p.SlotID)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidScope)
	}
	day, err := parseDay(p.Date)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Overrides().DeleteByKey(ctx, scope, day); err != nil {
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		return nil
	})
}

// ConsumeCapacity is the booking flow's compare-and-decrement; it fails
// with ErrCapacityExhausted when fewer units remain than requested.
func (c *inventoryCommandsImpl) ConsumeCapacity(ctx context.Context, p ConsumeCapacityParams) error {
	scope, err := inventory.NewScope(p.ListingID, p.VariantID, p.SlotID)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidScope)
	}
	day, err := parseDay(p.Date)
	if err != nil {
		return err
	}
	if p.Quantity < 1 {
		return errs.Mark(errs.New("quantity must be at least 1"), errs.ErrInvalidOverride)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Overrides().ConsumeCapacity(ctx, scope, day, p.Quantity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrCapacityExhausted)
			}
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		return nil
	})
}

func parseDay(value string) (inventory.Day, error) {
	day, err := inventory.ParseDay(value)
	if err != nil {
		return inventory.Day{}, errs.Mark(err, errs.ErrInvalidDay)
	}
	return day, nil
}

func parseSpan(from, to string) (inventory.DaySpan, error) {
	fromDay, err := parseDay(from)
	if err != nil {
		return inventory.DaySpan{}, err
	}
	toDay, err := parseDay(to)
	if err != nil {
		return inventory.DaySpan{}, err
	}
	span, err := inventory.NewDaySpan(fromDay, toDay)
	if err != nil {
		return inventory.DaySpan{}, errs.Mark(err, errs.ErrInvalidSpan)
	}
	return span, nil
}

func rangeToView(rng inventory.DateRange) *queries.RangeView {
	return &queries.RangeView{
		ID:              rng.ID,
		ListingID:       rng.Scope.ListingID(),
		VariantID:       rng.Scope.VariantIDPtr(),
		SlotID:          rng.Scope.SlotIDPtr(),
		FromDate:        rng.Span.From().String(),
		ToDate:          rng.Span.To().String(),
		BasePricePerDay: rng.BasePricePerDay,
		TotalCapacity:   rng.TotalCapacity,
		Active:          rng.Active,
	}
}

func overrideToView(o inventory.DailyOverride) *queries.OverrideView {
	return &queries.OverrideView{
		ID:             o.ID,
		ListingID:      o.Scope.ListingID(),
		VariantID:      o.Scope.VariantIDPtr(),
		SlotID:         o.Scope.SlotIDPtr(),
		Date:           o.Day.String(),
		Price:          o.Price,
		TotalCapacity:  o.TotalCapacity,
		AvailableCount: o.AvailableCount,
		TriggerType:    o.Trigger.String(),
	}
}

func blockToView(b inventory.BlockedDate) *queries.BlockView {
	return &queries.BlockView{
		ID:        b.ID,
		ListingID: b.Scope.ListingID(),
		VariantID: b.Scope.VariantIDPtr(),
		SlotID:    b.Scope.SlotIDPtr(),
		Date:      b.Day.String(),
		Reason:    b.Reason,
		CreatedBy: b.CreatedBy,
	}
}
