package api

import (
	"errors"
	"net/http"

	reqdto "bookstay/internal/handler/dto/request"
	resdto "bookstay/internal/handler/dto/response"
	"bookstay/internal/handler/middleware"
	"bookstay/internal/pkg/errs"
	"bookstay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	inventoryCommands commands.InventoryCommands
}

func NewInventoryHandler(inventoryCommands commands.InventoryCommands) *InventoryHandler {
	return &InventoryHandler{
		inventoryCommands: inventoryCommands,
	}
}

// @Summary Upsert availability range
// @Description Replace all overlapping active ranges with a new availability range
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listing_id path string true "Listing ID"
// @Param request body reqdto.UpsertRangeRequest true "Range request"
// @Success 201 {object} resdto.RangeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /listings/{listing_id}/ranges [put]
func (h *InventoryHandler) UpsertRange(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("listing_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	var req reqdto.UpsertRangeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.UpsertRangeParams{
		ListingID:       listingID,
		VariantID:       req.VariantID,
		SlotID:          req.SlotID,
		FromDate:        req.FromDate,
		ToDate:          req.ToDate,
		BasePricePerDay: req.BasePricePerDay,
		TotalCapacity:   req.TotalCapacity,
	}

	view, err := h.inventoryCommands.UpsertRange(c.Request.Context(), params)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRangeView(view))
}

// @Summary Block a date
// @Description Mark a date as unavailable regardless of ranges and overrides
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listing_id path string true "Listing ID"
// @Param request body reqdto.BlockDateRequest true "Block request"
// @Success 201 {object} resdto.BlockResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /listings/{listing_id}/blocks [post]
func (h *InventoryHandler) BlockDate(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("listing_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.BlockDateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.BlockParams{
		ListingID: listingID,
		VariantID: req.VariantID,
		SlotID:    req.SlotID,
		Date:      req.Date,
		Reason:    req.GetReason(),
		CreatedBy: operatorID,
	}

	view, err := h.inventoryCommands.Block(c.Request.Context(), params)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBlockView(view))
}

// @Summary Unblock a date
// @Description Remove a block; removing a nonexistent block succeeds
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param listing_id path string true "Listing ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param variant_id query string false "Variant ID"
// @Param slot_id query string false "Slot ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /listings/{listing_id}/blocks/{date} [delete]
func (h *InventoryHandler) UnblockDate(c *gin.Context) {
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

	params := commands.UnblockParams{
		ListingID: listingID,
		VariantID: variantID,
		SlotID:    slotID,
		Date:      c.Param("date"),
	}

	if err := h.inventoryCommands.Unblock(c.Request.Context(), params); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Upsert daily override
// @Description Create or patch the override row for one date; omitted fields keep their stored values
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listing_id path string true "Listing ID"
// @Param request body reqdto.UpsertOverrideRequest true "Override request"
// @Success 200 {object} resdto.OverrideResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /listings/{listing_id}/overrides [put]
func (h *InventoryHandler) UpsertOverride(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("listing_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	var req reqdto.UpsertOverrideRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.UpsertOverrideParams{
		ListingID:      listingID,
		VariantID:      req.VariantID,
		SlotID:         req.SlotID,
		Date:           req.Date,
		Price:          req.Price,
		TotalCapacity:  req.TotalCapacity,
		AvailableCount: req.AvailableCount,
	}

	view, err := h.inventoryCommands.UpsertOverride(c.Request.Context(), params)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOverrideView(view))
}

// @Summary Remove daily override
// @Description Delete the override row for one date; removing a nonexistent override succeeds
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param listing_id path string true "Listing ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param variant_id query string false "Variant ID"
// @Param slot_id query string false "Slot ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /listings/{listing_id}/overrides/{date} [delete]
func (h *InventoryHandler) RemoveOverride(c *gin.Context) {
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

	params := commands.RemoveOverrideParams{
		ListingID: listingID,
		VariantID: variantID,
		SlotID:    slotID,
		Date:      c.Param("date"),
	}

	if err := h.inventoryCommands.RemoveOverride(c.Request.Context(), params); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Consume capacity
// @Description Atomically decrement remaining capacity for one date
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listing_id path string true "Listing ID"
// @Param request body reqdto.ConsumeCapacityRequest true "Consume request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /listings/{listing_id}/capacity/consume [post]
func (h *InventoryHandler) ConsumeCapacity(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("listing_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	var req reqdto.ConsumeCapacityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := commands.ConsumeCapacityParams{
		ListingID: listingID,
		VariantID: req.VariantID,
		SlotID:    req.SlotID,
		Date:      req.Date,
		Quantity:  req.Quantity,
	}

	if err := h.inventoryCommands.ConsumeCapacity(c.Request.Context(), params); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidScope):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid scope",
		})
	case errors.Is(err, errs.ErrInvalidDay):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
	case errors.Is(err, errs.ErrInvalidSpan):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "From date must not be after to date",
		})
	case errors.Is(err, errs.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid range parameters",
		})
	case errors.Is(err, errs.ErrInvalidOverride):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid override parameters",
		})
	case errors.Is(err, errs.ErrActorRequired):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Acting operator required",
		})
	case errors.Is(err, errs.ErrRangeConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Range conflicts with an existing active range",
		})
	case errors.Is(err, errs.ErrCapacityExhausted):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Insufficient remaining capacity",
		})
	case errors.Is(err, errs.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Inventory store temporarily unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
