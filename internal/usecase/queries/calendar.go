package queries

import (
	"context"

	"bookstay/internal/domain/inventory"
	"bookstay/internal/infra/db"
	"bookstay/internal/infra/readstore"
	"bookstay/internal/pkg/errs"
	"bookstay/internal/usecase/shared"

	"github.com/google/uuid"
)

// CalendarDayView is the read model for one resolved calendar day.
type CalendarDayView struct {
	Date           string `json:"date"`
	Price          int64  `json:"price"`
	Available      bool   `json:"available"`
	Source         string `json:"source"`
	TotalCapacity  *int32 `json:"total_capacity,omitempty"`
	AvailableCount *int32 `json:"available_count,omitempty"`
	RemainingCount *int32 `json:"remaining_count,omitempty"`
}

type CalendarQueries interface {
	Resolve(ctx context.Context, listingID uuid.UUID, variantID, slotID *uuid.UUID) ([]*CalendarDayView, error)
}

type calendarQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewCalendarQueries(uow shared.UnitOfWork) CalendarQueries {
	return &calendarQueriesImpl{uow: uow}
}

// Resolve fetches ranges, overrides and blocks from one read-only snapshot
// and merges them. A store failure propagates as ErrStoreUnavailable; it is
// never flattened into an empty calendar, since callers must be able to tell
// "nothing bookable" from "fetch failed".
func (q *calendarQueriesImpl) Resolve(ctx context.Context, listingID uuid.UUID, variantID, slotID *uuid.UUID) ([]*CalendarDayView, error) {
	scope, err := inventory.NewScope(listingID, variantID, slotID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidScope)
	}

	var entries []inventory.CalendarEntry
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		ranges, err := readstore.NewRangeReadStore(dbtx).ListActiveByScope(ctx, scope)
		if err != nil {
			return err
		}
		overrides, err := readstore.NewOverrideReadStore(dbtx).ListByScope(ctx, scope)
		if err != nil {
			return err
		}
		blocks, err := readstore.NewBlockReadStore(dbtx).ListByScope(ctx, scope)
		if err != nil {
			return err
		}

		entries = inventory.ResolveCalendar(ranges, overrides, blocks)
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	views := make([]*CalendarDayView, len(entries))
	for i, e := range entries {
		views[i] = &CalendarDayView{
			Date:           e.Day.String(),
			Price:          e.Price,
			Available:      e.Available,
			Source:         e.Source.String(),
			TotalCapacity:  e.TotalCapacity,
			AvailableCount: e.AvailableCount,
			RemainingCount: e.RemainingCount,
		}
	}
	return views, nil
}
