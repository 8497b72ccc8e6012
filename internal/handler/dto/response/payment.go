package response

import "bookstay/internal/domain/payment"

type PaymentBreakdownResponse struct {
	TotalBasePrice         int64 `json:"totalBasePrice"`
	Tax                    int64 `json:"tax"`
	SubtotalWithTax        int64 `json:"subtotalWithTax"`
	TotalBaseAmount        int64 `json:"totalBaseAmount"`
	AddonsAmount           int64 `json:"addonsAmount"`
	DiscountAmount         int64 `json:"discountAmount"`
	TotalAmount            int64 `json:"totalAmount"`
	AmountPaidOnline       int64 `json:"amountPaidOnline"`
	AmountToCollectOffline int64 `json:"amountToCollectOffline"`
	PlatformCommission     int64 `json:"platformCommission"`
	Withholding            int64 `json:"withholding"`
	NetPayToSeller         int64 `json:"netPayToSeller"`
	TotalEarnings          int64 `json:"totalEarnings"`
}

func FromBreakdown(b payment.Breakdown) *PaymentBreakdownResponse {
	return &PaymentBreakdownResponse{
		TotalBasePrice:         b.TotalBasePrice,
		Tax:                    b.Tax,
		SubtotalWithTax:        b.SubtotalWithTax,
		TotalBaseAmount:        b.TotalBaseAmount,
		AddonsAmount:           b.AddonsAmount,
		DiscountAmount:         b.DiscountAmount,
		TotalAmount:            b.TotalAmount,
		AmountPaidOnline:       b.AmountPaidOnline,
		AmountToCollectOffline: b.AmountToCollectOffline,
		PlatformCommission:     b.PlatformCommission,
		Withholding:            b.Withholding,
		NetPayToSeller:         b.NetPayToSeller,
		TotalEarnings:          b.TotalEarnings,
	}
}
