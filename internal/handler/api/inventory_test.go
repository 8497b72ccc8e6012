//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"bookstay/internal/handler/api"
	"bookstay/internal/pkg/errs"
	"bookstay/internal/usecase/commands"
	"bookstay/internal/usecase/queries"
	"bookstay/tests/common/httptest"
	"bookstay/tests/common/testutil"
	commandsmock "bookstay/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InventoryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockInventoryCommands
	handler      *api.InventoryHandler
	listingID    uuid.UUID
	operatorID   uuid.UUID
}

func (s *InventoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.handler = api.NewInventoryHandler(s.mockCommands)
	s.listingID = uuid.New()
	s.operatorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("operator_id", s.operatorID)
		c.Next()
	}

	s.router.PUT("/listings/:listing_id/ranges", authMiddleware, s.handler.UpsertRange)
	s.router.POST("/listings/:listing_id/blocks", authMiddleware, s.handler.BlockDate)
	s.router.DELETE("/listings/:listing_id/blocks/:date", authMiddleware, s.handler.UnblockDate)
	s.router.PUT("/listings/:listing_id/overrides", authMiddleware, s.handler.UpsertOverride)
	s.router.DELETE("/listings/:listing_id/overrides/:date", authMiddleware, s.handler.RemoveOverride)
	s.router.POST("/listings/:listing_id/capacity/consume", authMiddleware, s.handler.ConsumeCapacity)
}

func (s *InventoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInventoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}

// ================================================================================
// TestUpsertRange
// ================================================================================

func (s *InventoryHandlerTestSuite) TestUpsertRange() {
	url := "/listings/" + s.listingID.String() + "/ranges"
	validBody := map[string]any{
		"from_date":          "2026-03-10",
		"to_date":            "2026-03-20",
		"base_price_per_day": 5000,
		"total_capacity":     3,
	}

	s.Run("success: returns 201 with the stored range", func() {
		view := &queries.RangeView{
			ID:              uuid.New(),
			ListingID:       s.listingID,
			FromDate:        "2026-03-10",
			ToDate:          "2026-03-20",
			BasePricePerDay: 5000,
			TotalCapacity:   3,
			Active:          true,
		}
		s.mockCommands.EXPECT().UpsertRange(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, validBody, "token")
		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), view.ID.String())
	})

	s.Run("passes listing id from path and body fields through", func() {
		s.mockCommands.EXPECT().UpsertRange(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p commands.UpsertRangeParams) (*queries.RangeView, error) {
				s.Equal(s.listingID, p.ListingID)
				s.Equal("2026-03-10", p.FromDate)
				s.Equal(int64(5000), p.BasePricePerDay)
				s.Equal(int32(3), p.TotalCapacity)
				return &queries.RangeView{ListingID: p.ListingID}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, validBody, "token")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("validation: missing required fields return 400", func() {
		for _, field := range []string{"from_date", "to_date", "total_capacity"} {
			body := testutil.DtoMap(s.T(), validBody, testutil.Field(field, nil))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "token")
			s.Equal(http.StatusBadRequest, rec.Code, "missing %s", field)
		}
	})

	s.Run("unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, validBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("invalid listing id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/listings/not-a-uuid/ranges", validBody, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error mapping", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"invalid day", errs.ErrInvalidDay, http.StatusBadRequest},
			{"invalid span", errs.ErrInvalidSpan, http.StatusBadRequest},
			{"invalid range", errs.ErrInvalidRange, http.StatusBadRequest},
			{"range conflict", errs.ErrRangeConflict, http.StatusConflict},
			{"store unavailable", errs.ErrStoreUnavailable, http.StatusServiceUnavailable},
			{"unknown error", errs.New("boom"), http.StatusInternalServerError},
		}
		for _, c := range cases {
			s.Run(c.name, func() {
				s.mockCommands.EXPECT().UpsertRange(gomock.Any(), gomock.Any()).Return(nil, c.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, validBody, "token")
				s.Equal(c.expectCode, rec.Code)
			})
		}
	})
}

// ================================================================================
// TestBlockDate
// ================================================================================

func (s *InventoryHandlerTestSuite) TestBlockDate() {
	url := "/listings/" + s.listingID.String() + "/blocks"
	validBody := map[string]any{
		"date":   "2026-03-15",
		"reason": "maintenance",
	}

	s.Run("success: returns 201 and attributes the operator", func() {
		s.mockCommands.EXPECT().Block(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p commands.BlockParams) (*queries.BlockView, error) {
				s.Equal(s.operatorID, p.CreatedBy)
				s.Equal("2026-03-15", p.Date)
				s.Require().NotNil(p.Reason)
				s.Equal("maintenance", *p.Reason)
				return &queries.BlockView{ID: uuid.New(), ListingID: p.ListingID, Date: p.Date, CreatedBy: p.CreatedBy}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "token")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("blank reason is normalized to nil", func() {
		body := testutil.DtoMap(s.T(), validBody, testutil.Field("reason", "   "))
		s.mockCommands.EXPECT().Block(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p commands.BlockParams) (*queries.BlockView, error) {
				s.Nil(p.Reason)
				return &queries.BlockView{CreatedBy: p.CreatedBy}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("missing date returns 400", func() {
		body := testutil.DtoMap(s.T(), validBody, testutil.Field("date", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestUnblockDate
// ================================================================================

func (s *InventoryHandlerTestSuite) TestUnblockDate() {
	url := "/listings/" + s.listingID.String() + "/blocks/2026-03-15"

	s.Run("success: returns 204 even when nothing was blocked", func() {
		s.mockCommands.EXPECT().Unblock(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("scope narrows via query params", func() {
		variantID := uuid.New()
		s.mockCommands.EXPECT().Unblock(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p commands.UnblockParams) error {
				s.Require().NotNil(p.VariantID)
				s.Equal(variantID, *p.VariantID)
				s.Nil(p.SlotID)
				return nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url+"?variant_id="+variantID.String(), nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("malformed variant id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url+"?variant_id=zzz", nil, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("invalid date maps to 400", func() {
		s.mockCommands.EXPECT().Unblock(gomock.Any(), gomock.Any()).Return(errs.ErrInvalidDay).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/listings/"+s.listingID.String()+"/blocks/bad-date", nil, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestUpsertOverride
// ================================================================================

func (s *InventoryHandlerTestSuite) TestUpsertOverride() {
	url := "/listings/" + s.listingID.String() + "/overrides"
	validBody := map[string]any{
		"date":            "2026-03-15",
		"price":           7500,
		"total_capacity":  3,
		"available_count": 2,
	}

	s.Run("success: returns 200 with the merged override", func() {
		view := &queries.OverrideView{ID: uuid.New(), ListingID: s.listingID, Date: "2026-03-15", TriggerType: "seller_update"}
		s.mockCommands.EXPECT().UpsertOverride(gomock.Any(), gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, validBody, "token")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "seller_update")
	})

	s.Run("omitted fields arrive as nil pointers", func() {
		body := map[string]any{"date": "2026-03-15", "price": 7500}
		s.mockCommands.EXPECT().UpsertOverride(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, p commands.UpsertOverrideParams) (*queries.OverrideView, error) {
				s.Require().NotNil(p.Price)
				s.Equal(int64(7500), *p.Price)
				s.Nil(p.TotalCapacity)
				s.Nil(p.AvailableCount)
				return &queries.OverrideView{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("invalid override maps to 400", func() {
		s.mockCommands.EXPECT().UpsertOverride(gomock.Any(), gomock.Any()).Return(nil, errs.ErrInvalidOverride).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, validBody, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestRemoveOverride
// ================================================================================

func (s *InventoryHandlerTestSuite) TestRemoveOverride() {
	url := "/listings/" + s.listingID.String() + "/overrides/2026-03-15"

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().RemoveOverride(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("store failure maps to 503", func() {
		s.mockCommands.EXPECT().RemoveOverride(gomock.Any(), gomock.Any()).Return(errs.ErrStoreUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "token")
		s.Equal(http.StatusServiceUnavailable, rec.Code)
	})
}

// ================================================================================
// TestConsumeCapacity
// ================================================================================

func (s *InventoryHandlerTestSuite) TestConsumeCapacity() {
	url := "/listings/" + s.listingID.String() + "/capacity/consume"
	validBody := map[string]any{
		"date":     "2026-03-15",
		"quantity": 2,
	}

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().ConsumeCapacity(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("exhausted capacity maps to 409", func() {
		s.mockCommands.EXPECT().ConsumeCapacity(gomock.Any(), gomock.Any()).Return(errs.ErrCapacityExhausted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody, "token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("zero quantity fails binding", func() {
		body := testutil.DtoMap(s.T(), validBody, testutil.Field("quantity", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
