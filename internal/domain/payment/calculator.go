package payment

// All amounts are integers in the smallest currency unit. Rates are basis
// points (1/100 of a percent). The calculation is a fixed-point pipeline:
// each step feeds the next and each rounding point is load-bearing, so the
// order of operations must never be reordered or fused. Reordering here is
// a financial bug, not a refactor.

const (
	DefaultTaxRateBps         int64 = 1800 // 18%
	DefaultCommissionRateBps  int64 = 1000 // 10%
	DefaultWithholdingRateBps int64 = 100  // 1% of commission
)

type Rates struct {
	TaxBps         int64
	CommissionBps  int64
	WithholdingBps int64
}

func DefaultRates() Rates {
	return Rates{
		TaxBps:         DefaultTaxRateBps,
		CommissionBps:  DefaultCommissionRateBps,
		WithholdingBps: DefaultWithholdingRateBps,
	}
}

type Input struct {
	TotalBasePrice int64 // already price x quantity
	AddonsAmount   int64
	DiscountAmount int64
	// AdvancePaymentAmount nil means full payment online, which is the
	// default rather than an error.
	AdvancePaymentAmount *int64
	Rates                Rates
}

type Breakdown struct {
	TotalBasePrice         int64 `json:"total_base_price"`
	Tax                    int64 `json:"tax"`
	SubtotalWithTax        int64 `json:"subtotal_with_tax"`
	TotalBaseAmount        int64 `json:"total_base_amount"`
	AddonsAmount           int64 `json:"addons_amount"`
	DiscountAmount         int64 `json:"discount_amount"`
	TotalAmount            int64 `json:"total_amount"`
	AmountPaidOnline       int64 `json:"amount_paid_online"`
	AmountToCollectOffline int64 `json:"amount_to_collect_offline"`
	PlatformCommission     int64 `json:"platform_commission"`
	Withholding            int64 `json:"withholding"`
	NetPayToSeller         int64 `json:"net_pay_to_seller"`
	TotalEarnings          int64 `json:"total_earnings"`
}

// Calculate produces the full financial breakdown for a resolved price.
// Pure and deterministic: same input, same integers, on every platform.
func Calculate(in Input) Breakdown {
	tax := roundHalfUpBps(in.TotalBasePrice, in.Rates.TaxBps)
	subtotalWithTax := in.TotalBasePrice + tax

	// Discount applies after tax, not before.
	totalBaseAmount := subtotalWithTax - in.DiscountAmount
	totalAmount := totalBaseAmount + in.AddonsAmount

	amountPaidOnline := totalAmount
	if in.AdvancePaymentAmount != nil {
		amountPaidOnline = *in.AdvancePaymentAmount
	}
	amountToCollectOffline := totalAmount - amountPaidOnline

	// Commission is computed on the total, not on the paid-online amount,
	// but commission and withholding are deducted from the online portion
	// only, never from the offline balance.
	platformCommission := roundHalfUpBps(totalAmount, in.Rates.CommissionBps)
	withholding := roundHalfUpBps(platformCommission, in.Rates.WithholdingBps)
	netPayToSeller := amountPaidOnline - platformCommission - withholding
	totalEarnings := netPayToSeller + amountToCollectOffline

	return Breakdown{
		TotalBasePrice:         in.TotalBasePrice,
		Tax:                    tax,
		SubtotalWithTax:        subtotalWithTax,
		TotalBaseAmount:        totalBaseAmount,
		AddonsAmount:           in.AddonsAmount,
		DiscountAmount:         in.DiscountAmount,
		TotalAmount:            totalAmount,
		AmountPaidOnline:       amountPaidOnline,
		AmountToCollectOffline: amountToCollectOffline,
		PlatformCommission:     platformCommission,
		Withholding:            withholding,
		NetPayToSeller:         netPayToSeller,
		TotalEarnings:          totalEarnings,
	}
}

// roundHalfUpBps computes round(amount * bps / 10000) with half-up rounding
// in pure integer arithmetic. Inputs are validated non-negative upstream;
// integer truncation only equals half-up for non-negative products.
func roundHalfUpBps(amount, bps int64) int64 {
	return (amount*bps + 5000) / 10000
}
