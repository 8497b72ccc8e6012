//go:build unit

package inventory_test

import (
	"testing"

	"bookstay/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScope(t *testing.T) inventory.Scope {
	t.Helper()
	scope, err := inventory.NewScope(uuid.New(), nil, nil)
	require.NoError(t, err)
	return scope
}

func int64Ptr(v int64) *int64 { return &v }
func int32Ptr(v int32) *int32 { return &v }

func TestNewDateRange(t *testing.T) {
	scope := testScope(t)
	span := mustSpan(t, "2026-03-10", "2026-03-20")

	t.Run("valid range is active by default", func(t *testing.T) {
		rng, err := inventory.NewDateRange(scope, span, 5000, 3)
		require.NoError(t, err)

		assert.True(t, rng.Active)
		assert.Equal(t, int64(5000), rng.BasePricePerDay)
		assert.Equal(t, int32(3), rng.TotalCapacity)
	})

	t.Run("zero price is valid", func(t *testing.T) {
		_, err := inventory.NewDateRange(scope, span, 0, 1)
		assert.NoError(t, err)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := inventory.NewDateRange(scope, span, -1, 1)
		assert.ErrorIs(t, err, inventory.ErrNegativePrice)
	})

	t.Run("capacity below one is rejected", func(t *testing.T) {
		_, err := inventory.NewDateRange(scope, span, 5000, 0)
		assert.ErrorIs(t, err, inventory.ErrInvalidCapacity)

		_, err = inventory.NewDateRange(scope, span, 5000, -2)
		assert.ErrorIs(t, err, inventory.ErrInvalidCapacity)
	})
}

func TestNewDailyOverride(t *testing.T) {
	scope := testScope(t)
	day := mustDay(t, "2026-03-15")

	t.Run("all-nil fields are a valid override", func(t *testing.T) {
		o, err := inventory.NewDailyOverride(scope, day, nil, nil, nil, inventory.TriggerSellerUpdate)
		require.NoError(t, err)

		assert.Nil(t, o.Price)
		assert.Nil(t, o.TotalCapacity)
		assert.Nil(t, o.AvailableCount)
	})

	t.Run("zero capacity is valid", func(t *testing.T) {
		_, err := inventory.NewDailyOverride(scope, day, nil, int32Ptr(0), int32Ptr(0), inventory.TriggerBookingConsumption)
		assert.NoError(t, err)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := inventory.NewDailyOverride(scope, day, int64Ptr(-100), nil, nil, inventory.TriggerSellerUpdate)
		assert.ErrorIs(t, err, inventory.ErrNegativePrice)
	})

	t.Run("negative capacity fields are rejected", func(t *testing.T) {
		_, err := inventory.NewDailyOverride(scope, day, nil, int32Ptr(-1), nil, inventory.TriggerSellerUpdate)
		assert.ErrorIs(t, err, inventory.ErrNegativeOverride)

		_, err = inventory.NewDailyOverride(scope, day, nil, nil, int32Ptr(-1), inventory.TriggerSellerUpdate)
		assert.ErrorIs(t, err, inventory.ErrNegativeOverride)
	})

	t.Run("unknown trigger is rejected", func(t *testing.T) {
		_, err := inventory.NewDailyOverride(scope, day, nil, nil, nil, inventory.TriggerType("manual"))
		assert.ErrorIs(t, err, inventory.ErrInvalidTriggerType)
	})
}

func TestNewBlockedDate(t *testing.T) {
	scope := testScope(t)
	day := mustDay(t, "2026-03-15")

	t.Run("nil actor is rejected", func(t *testing.T) {
		_, err := inventory.NewBlockedDate(scope, day, nil, uuid.Nil)
		assert.ErrorIs(t, err, inventory.ErrActorRequired)
	})

	t.Run("reason is optional", func(t *testing.T) {
		block, err := inventory.NewBlockedDate(scope, day, nil, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, block.Reason)
	})
}

func TestTriggerType(t *testing.T) {
	assert.True(t, inventory.TriggerSellerUpdate.IsValid())
	assert.True(t, inventory.TriggerBookingConsumption.IsValid())
	assert.True(t, inventory.TriggerSystem.IsValid())
	assert.False(t, inventory.TriggerType("").IsValid())
	assert.False(t, inventory.TriggerType("SELLER_UPDATE").IsValid())
}
