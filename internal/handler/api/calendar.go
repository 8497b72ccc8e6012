package api

import (
	"errors"
	"net/http"

	resdto "bookstay/internal/handler/dto/response"
	"bookstay/internal/pkg/errs"
	"bookstay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CalendarHandler struct {
	calendarQueries queries.CalendarQueries
}

func NewCalendarHandler(calendarQueries queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{
		calendarQueries: calendarQueries,
	}
}

// @Summary Resolve availability calendar
// @Description Resolve the per-day availability calendar for a listing scope
// @Tags calendar
// @Produce json
// @Param listing_id path string true "Listing ID"
// @Param variant_id query string false "Variant ID"
// @Param slot_id query string false "Slot ID"
// @Success 200 {array} resdto.CalendarDayResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /listings/{listing_id}/calendar [get]
func (h *CalendarHandler) GetCalendar(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("listing_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	variantID, ok := optionalUUIDQuery(c, "variant_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid variant ID format",
		})
		return
	}
	slotID, ok := optionalUUIDQuery(c, "slot_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	views, err := h.calendarQueries.Resolve(c.Request.Context(), listingID, variantID, slotID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidScope):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid scope",
			})
		case errors.Is(err, errs.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Availability data temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCalendarDayViews(views))
}

// optionalUUIDQuery parses an optional query parameter. An absent or empty
// value is valid and yields nil.
func optionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}
