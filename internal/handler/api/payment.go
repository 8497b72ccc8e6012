package api

import (
	"errors"
	"net/http"

	reqdto "bookstay/internal/handler/dto/request"
	resdto "bookstay/internal/handler/dto/response"
	"bookstay/internal/handler/httperr"
	"bookstay/internal/pkg/errs"
	"bookstay/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

// @Summary Calculate payment breakdown
// @Description Compute the deterministic fee and commission breakdown for a booking amount
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentBreakdownRequest true "Payment input"
// @Success 200 {object} resdto.PaymentBreakdownResponse
// @Failure 400 {object} map[string]string
// @Router /payments/breakdown [post]
func (h *PaymentHandler) CalculateBreakdown(c *gin.Context) {
	var req reqdto.PaymentBreakdownRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	params := usecase.CalculatePaymentParams{
		TotalBasePrice:       req.TotalBasePrice,
		AddonsAmount:         req.AddonsAmount,
		DiscountAmount:       req.DiscountAmount,
		AdvancePaymentAmount: req.AdvancePaymentAmount,
		TaxRateBps:           req.TaxRateBps,
		CommissionRateBps:    req.CommissionRateBps,
		WithholdingRateBps:   req.WithholdingRateBps,
	}

	breakdown, err := h.paymentUseCase.CalculateBreakdown(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidPaymentInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment input", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBreakdown(breakdown))
}
