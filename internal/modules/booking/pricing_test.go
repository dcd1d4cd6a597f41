package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestPriceStay_TwoNights(t *testing.T) {
	quote, err := PriceStay(24900, day("2026-03-10"), day("2026-03-12"))

	assert.NoError(t, err)
	assert.Equal(t, 2, quote.Nights)
	assert.Equal(t, 49800.0, quote.BaseTotal)
	assert.Equal(t, 996.0, quote.TransactionFee)
	assert.Equal(t, 50796.0, quote.TotalAmount)
}

func TestPriceStay_SingleNight(t *testing.T) {
	quote, err := PriceStay(30500, day("2026-03-10"), day("2026-03-11"))

	assert.NoError(t, err)
	assert.Equal(t, 1, quote.Nights)
	assert.Equal(t, 30500.0, quote.BaseTotal)
	assert.Equal(t, 610.0, quote.TransactionFee)
	assert.Equal(t, 31110.0, quote.TotalAmount)
}

func TestPriceStay_FeeRoundedIndependently(t *testing.T) {
	// 3 nights at 1234.56: base 3703.68, 2% = 74.0736 -> 74.07
	quote, err := PriceStay(1234.56, day("2026-01-01"), day("2026-01-04"))

	assert.NoError(t, err)
	assert.Equal(t, 3703.68, quote.BaseTotal)
	assert.Equal(t, 74.07, quote.TransactionFee)
	assert.Equal(t, 3703.68+74.07, quote.TotalAmount)
}

func TestPriceStay_SameDayRejected(t *testing.T) {
	_, err := PriceStay(24900, day("2026-03-10"), day("2026-03-10"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestPriceStay_ReversedRangeRejected(t *testing.T) {
	_, err := PriceStay(24900, day("2026-03-12"), day("2026-03-10"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
