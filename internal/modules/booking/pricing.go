package booking

import (
	"math"
	"time"
)

// transactionFeeRate is the fixed surcharge applied on top of the base total.
const transactionFeeRate = 0.02

// Quote is the monetary breakdown for a stay. BaseTotal and TransactionFee
// are rounded independently before summing; the gateway reconciles against
// these exact figures, so the ordering is load-bearing.
type Quote struct {
	Nights         int     `json:"nights"`
	BaseTotal      float64 `json:"base_total"`
	TransactionFee float64 `json:"transaction_fee"`
	TotalAmount    float64 `json:"total_amount"`
}

// PriceStay computes nights x nightly rate plus the transaction fee.
// Returns ErrInvalidDateRange when the range spans no nights.
func PriceStay(nightlyRate float64, checkIn, checkOut time.Time) (*Quote, error) {
	nights := nightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return nil, ErrInvalidDateRange
	}

	base := round2(nightlyRate * float64(nights))
	fee := round2(base * transactionFeeRate)

	return &Quote{
		Nights:         nights,
		BaseTotal:      base,
		TransactionFee: fee,
		TotalAmount:    base + fee,
	}, nil
}

func nightsBetween(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// round2 rounds half-up to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
