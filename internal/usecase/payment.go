package usecase

import (
	"context"

	"bookstay/internal/domain/payment"
	"bookstay/internal/pkg/config"
	"bookstay/internal/pkg/errs"
	"bookstay/internal/pkg/patch"
)

type CalculatePaymentParams struct {
	TotalBasePrice       int64
	AddonsAmount         int64
	DiscountAmount       int64
	AdvancePaymentAmount *int64
	// Rate overrides in basis points; nil falls back to configured defaults.
	TaxRateBps         *int64
	CommissionRateBps  *int64
	WithholdingRateBps *int64
}

type PaymentUseCase interface {
	CalculateBreakdown(ctx context.Context, p CalculatePaymentParams) (payment.Breakdown, error)
}

type paymentUseCaseImpl struct {
	defaults payment.Rates
}

func NewPaymentUseCase(cfg config.PaymentConfig) PaymentUseCase {
	return &paymentUseCaseImpl{
		defaults: payment.Rates{
			TaxBps:         cfg.TaxRateBps,
			CommissionBps:  cfg.CommissionRateBps,
			WithholdingBps: cfg.WithholdingRateBps,
		},
	}
}

// CalculateBreakdown validates inputs and delegates to the pure calculator.
// The calculator itself never errors; negative amounts are rejected here so
// its half-up integer rounding stays well-defined.
func (u *paymentUseCaseImpl) CalculateBreakdown(_ context.Context, p CalculatePaymentParams) (payment.Breakdown, error) {
	if p.TotalBasePrice < 0 || p.AddonsAmount < 0 || p.DiscountAmount < 0 {
		return payment.Breakdown{}, errs.Mark(errs.New("amounts must not be negative"), errs.ErrInvalidPaymentInput)
	}
	if p.AdvancePaymentAmount != nil && *p.AdvancePaymentAmount < 0 {
		return payment.Breakdown{}, errs.Mark(errs.New("advance payment must not be negative"), errs.ErrInvalidPaymentInput)
	}

	rates := payment.Rates{
		TaxBps:         patch.Coalesce(p.TaxRateBps, u.defaults.TaxBps),
		CommissionBps:  patch.Coalesce(p.CommissionRateBps, u.defaults.CommissionBps),
		WithholdingBps: patch.Coalesce(p.WithholdingRateBps, u.defaults.WithholdingBps),
	}
	if rates.TaxBps < 0 || rates.CommissionBps < 0 || rates.WithholdingBps < 0 {
		return payment.Breakdown{}, errs.Mark(errs.New("rates must not be negative"), errs.ErrInvalidPaymentInput)
	}

	return payment.Calculate(payment.Input{
		TotalBasePrice:       p.TotalBasePrice,
		AddonsAmount:         p.AddonsAmount,
		DiscountAmount:       p.DiscountAmount,
		AdvancePaymentAmount: p.AdvancePaymentAmount,
		Rates:                rates,
	}), nil
}
