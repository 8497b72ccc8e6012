//go:build e2e

package inventory_test

import (
	"net/http"
	"testing"

	resdto "bookstay/internal/handler/dto/response"
	"bookstay/internal/pkg/clock"
	"bookstay/internal/pkg/jwt"
	"bookstay/tests/common/httptest"
	"bookstay/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type InventoryE2ETestSuite struct {
	e2e.SharedSuite
	operatorID uuid.UUID
	token      string
}

func (s *InventoryE2ETestSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())

	s.operatorID = uuid.New()
	manager := jwt.NewManager(s.Config.JWT, clock.NewRealClock())
	token, err := manager.Issue(s.operatorID)
	s.Require().NoError(err)
	s.token = token
}

func TestInventoryE2ESuite(t *testing.T) {
	suite.Run(t, new(InventoryE2ETestSuite))
}

func (s *InventoryE2ETestSuite) getCalendar(listingID uuid.UUID) []*resdto.CalendarDayResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/listings/"+listingID.String()+"/calendar", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var days []*resdto.CalendarDayResponse
	_ = httptest.DecodeResponseBody(s.T(), rec.Body, &days)
	return days
}

func (s *InventoryE2ETestSuite) TestCalendarLifecycle() {
	s.Run("range, override, consumption and block resolve with correct precedence", func() {
		listingID := uuid.New()
		base := "/api/listings/" + listingID.String()

		// Seed a 5-day range.
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, base+"/ranges", map[string]any{
			"from_date":          "2026-03-10",
			"to_date":            "2026-03-14",
			"base_price_per_day": 5000,
			"total_capacity":     2,
		}, s.token)
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		days := s.getCalendar(listingID)
		s.Require().Len(days, 5)
		for _, d := range days {
			s.True(d.Available)
			s.Equal(int64(5000), d.Price)
			s.Equal("range", d.Source)
		}

		// Override one day's price and capacity.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, base+"/overrides", map[string]any{
			"date":            "2026-03-12",
			"price":           8000,
			"total_capacity":  2,
			"available_count": 2,
		}, s.token)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

		days = s.getCalendar(listingID)
		s.Require().Len(days, 5)
		s.Equal("override", days[2].Source)
		s.Equal(int64(8000), days[2].Price)
		s.True(days[2].Available)

		// Consume one unit; partial consumption flips the day to booked.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, base+"/capacity/consume", map[string]any{
			"date":     "2026-03-12",
			"quantity": 1,
		}, s.token)
		s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

		days = s.getCalendar(listingID)
		s.Equal("booked", days[2].Source)
		s.False(days[2].Available)
		s.Require().NotNil(days[2].RemainingCount)
		s.Equal(int32(1), *days[2].RemainingCount)

		// Block a different day; blocks outrank everything.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, base+"/blocks", map[string]any{
			"date":   "2026-03-13",
			"reason": "maintenance",
		}, s.token)
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		days = s.getCalendar(listingID)
		s.Equal("blocked", days[3].Source)
		s.False(days[3].Available)

		// Unblock restores the range state.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, base+"/blocks/2026-03-13", nil, s.token)
		s.Require().Equal(http.StatusNoContent, rec.Code)

		days = s.getCalendar(listingID)
		s.Equal("range", days[3].Source)
		s.True(days[3].Available)
	})

	s.Run("upserting an overlapping range replaces the old one", func() {
		listingID := uuid.New()
		base := "/api/listings/" + listingID.String()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, base+"/ranges", map[string]any{
			"from_date":          "2026-04-01",
			"to_date":            "2026-04-10",
			"base_price_per_day": 5000,
			"total_capacity":     1,
		}, s.token)
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, base+"/ranges", map[string]any{
			"from_date":          "2026-04-05",
			"to_date":            "2026-04-15",
			"base_price_per_day": 9000,
			"total_capacity":     1,
		}, s.token)
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		days := s.getCalendar(listingID)
		// Old coverage for 04-01..04-04 is gone with the replaced range.
		s.Require().Len(days, 11)
		s.Equal("2026-04-05", days[0].Date)
		for _, d := range days {
			s.Equal(int64(9000), d.Price)
		}
	})

	s.Run("consuming more than remaining returns conflict", func() {
		listingID := uuid.New()
		base := "/api/listings/" + listingID.String()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, base+"/overrides", map[string]any{
			"date":            "2026-05-01",
			"total_capacity":  1,
			"available_count": 1,
		}, s.token)
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, base+"/capacity/consume", map[string]any{
			"date":     "2026-05-01",
			"quantity": 2,
		}, s.token)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("variant scope is isolated from the listing scope", func() {
		listingID := uuid.New()
		variantID := uuid.New()
		base := "/api/listings/" + listingID.String()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, base+"/ranges", map[string]any{
			"variant_id":         variantID.String(),
			"from_date":          "2026-06-01",
			"to_date":            "2026-06-03",
			"base_price_per_day": 4000,
			"total_capacity":     1,
		}, s.token)
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		// Unscoped calendar sees nothing.
		s.Empty(s.getCalendar(listingID))

		// Variant-scoped calendar sees the range.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			base+"/calendar?variant_id="+variantID.String(), nil, "")
		s.Require().Equal(http.StatusOK, rec.Code)

		var days []*resdto.CalendarDayResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &days)
		s.Len(days, 3)
	})

	s.Run("mutations without a token are rejected", func() {
		listingID := uuid.New()
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/listings/"+listingID.String()+"/ranges", map[string]any{
			"from_date":          "2026-03-10",
			"to_date":            "2026-03-14",
			"base_price_per_day": 5000,
			"total_capacity":     2,
		}, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *InventoryE2ETestSuite) TestPaymentBreakdown() {
	s.Run("worked example end to end", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/payments/breakdown", map[string]any{
			"total_base_price":       100000,
			"addons_amount":          5000,
			"discount_amount":        2000,
			"advance_payment_amount": 50000,
		}, "")
		s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

		var body resdto.PaymentBreakdownResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &body)

		s.Equal(int64(18000), body.Tax)
		s.Equal(int64(121000), body.TotalAmount)
		s.Equal(int64(71000), body.AmountToCollectOffline)
		s.Equal(int64(12100), body.PlatformCommission)
		s.Equal(int64(121), body.Withholding)
		s.Equal(int64(37779), body.NetPayToSeller)
		s.Equal(int64(108779), body.TotalEarnings)
	})
}
