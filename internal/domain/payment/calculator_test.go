//go:build unit

package payment_test

import (
	"math/rand"
	"testing"

	"bookstay/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCalculate(t *testing.T) {
	t.Run("worked example with advance payment", func(t *testing.T) {
		got := payment.Calculate(payment.Input{
			TotalBasePrice:       100000,
			AddonsAmount:         5000,
			DiscountAmount:       2000,
			AdvancePaymentAmount: int64Ptr(50000),
			Rates:                payment.DefaultRates(),
		})

		expected := payment.Breakdown{
			TotalBasePrice:         100000,
			Tax:                    18000,
			SubtotalWithTax:        118000,
			TotalBaseAmount:        116000,
			AddonsAmount:           5000,
			DiscountAmount:         2000,
			TotalAmount:            121000,
			AmountPaidOnline:       50000,
			AmountToCollectOffline: 71000,
			PlatformCommission:     12100,
			Withholding:            121,
			NetPayToSeller:         37779,
			TotalEarnings:          108779,
		}
		assert.Equal(t, expected, got)
	})

	t.Run("nil advance means full payment online", func(t *testing.T) {
		got := payment.Calculate(payment.Input{
			TotalBasePrice: 100000,
			Rates:          payment.DefaultRates(),
		})

		assert.Equal(t, got.TotalAmount, got.AmountPaidOnline)
		assert.Equal(t, int64(0), got.AmountToCollectOffline)
		assert.Equal(t, got.NetPayToSeller, got.TotalEarnings)
	})

	t.Run("zero input yields all zeros", func(t *testing.T) {
		got := payment.Calculate(payment.Input{Rates: payment.DefaultRates()})
		assert.Equal(t, payment.Breakdown{}, got)
	})

	t.Run("tax rounds half up", func(t *testing.T) {
		// 3 * 18% = 0.54, rounds to 1
		got := payment.Calculate(payment.Input{TotalBasePrice: 3, Rates: payment.DefaultRates()})
		assert.Equal(t, int64(1), got.Tax)

		// 2 * 18% = 0.36, rounds to 0
		got = payment.Calculate(payment.Input{TotalBasePrice: 2, Rates: payment.DefaultRates()})
		assert.Equal(t, int64(0), got.Tax)

		// Exact half: 25 * 18% = 4.5, rounds up to 5
		got = payment.Calculate(payment.Input{TotalBasePrice: 25, Rates: payment.DefaultRates()})
		assert.Equal(t, int64(5), got.Tax)
	})

	t.Run("discount applies after tax", func(t *testing.T) {
		got := payment.Calculate(payment.Input{
			TotalBasePrice: 10000,
			DiscountAmount: 1800,
			Rates:          payment.DefaultRates(),
		})

		// Tax is on the undiscounted base: 10000 * 18% = 1800
		assert.Equal(t, int64(1800), got.Tax)
		assert.Equal(t, int64(11800), got.SubtotalWithTax)
		assert.Equal(t, int64(10000), got.TotalBaseAmount)
	})

	t.Run("commission is on total but deducted from online portion only", func(t *testing.T) {
		got := payment.Calculate(payment.Input{
			TotalBasePrice:       100000,
			AdvancePaymentAmount: int64Ptr(10000),
			Rates:                payment.DefaultRates(),
		})

		// Commission on 118000, not on 10000
		assert.Equal(t, int64(11800), got.PlatformCommission)
		assert.Equal(t, int64(10000-11800-118), got.NetPayToSeller)
		assert.Equal(t, int64(108000), got.AmountToCollectOffline)
	})

	t.Run("withholding is a fraction of commission, not of total", func(t *testing.T) {
		got := payment.Calculate(payment.Input{
			TotalBasePrice: 100000,
			Rates:          payment.DefaultRates(),
		})

		assert.Equal(t, int64(118), got.Withholding)
	})

	t.Run("zero rates pass amounts through untouched", func(t *testing.T) {
		got := payment.Calculate(payment.Input{
			TotalBasePrice: 100000,
			Rates:          payment.Rates{},
		})

		assert.Equal(t, int64(0), got.Tax)
		assert.Equal(t, int64(0), got.PlatformCommission)
		assert.Equal(t, int64(0), got.Withholding)
		assert.Equal(t, int64(100000), got.TotalEarnings)
	})

	t.Run("accounting identity holds for randomized inputs", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		for i := 0; i < 1000; i++ {
			base := rng.Int63n(10_000_000)
			addons := rng.Int63n(100_000)
			discount := rng.Int63n(base/10 + 1)
			in := payment.Input{
				TotalBasePrice: base,
				AddonsAmount:   addons,
				DiscountAmount: discount,
				Rates: payment.Rates{
					TaxBps:         rng.Int63n(5000),
					CommissionBps:  rng.Int63n(5000),
					WithholdingBps: rng.Int63n(1000),
				},
			}
			if rng.Intn(2) == 0 {
				in.AdvancePaymentAmount = int64Ptr(rng.Int63n(base + 1))
			}

			got := payment.Calculate(in)

			require.Equal(t, got.TotalEarnings, got.NetPayToSeller+got.AmountToCollectOffline,
				"identity violated for input %+v", in)
			require.Equal(t, got.TotalAmount, got.AmountPaidOnline+got.AmountToCollectOffline,
				"online/offline split violated for input %+v", in)
			require.Equal(t, got.SubtotalWithTax, got.TotalBasePrice+got.Tax)
			require.Equal(t, got.TotalAmount, got.TotalBaseAmount+got.AddonsAmount)
		}
	})

	t.Run("determinism: same input same output", func(t *testing.T) {
		in := payment.Input{
			TotalBasePrice:       123457,
			AddonsAmount:         991,
			DiscountAmount:       333,
			AdvancePaymentAmount: int64Ptr(60000),
			Rates:                payment.DefaultRates(),
		}

		first := payment.Calculate(in)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, payment.Calculate(in))
		}
	})
}

func TestDefaultRates(t *testing.T) {
	rates := payment.DefaultRates()

	assert.Equal(t, int64(1800), rates.TaxBps)
	assert.Equal(t, int64(1000), rates.CommissionBps)
	assert.Equal(t, int64(100), rates.WithholdingBps)
}
