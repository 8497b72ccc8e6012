package request

type PaymentBreakdownRequest struct {
	TotalBasePrice       int64  `json:"total_base_price" binding:"min=0"`
	AddonsAmount         int64  `json:"addons_amount" binding:"min=0"`
	DiscountAmount       int64  `json:"discount_amount" binding:"min=0"`
	AdvancePaymentAmount *int64 `json:"advance_payment_amount,omitempty"`
	TaxRateBps           *int64 `json:"tax_rate_bps,omitempty"`
	CommissionRateBps    *int64 `json:"commission_rate_bps,omitempty"`
	WithholdingRateBps   *int64 `json:"withholding_rate_bps,omitempty"`
}
