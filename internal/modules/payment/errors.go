package payment

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrAlreadyPaid     = errors.New("booking already paid")
	ErrGateway         = errors.New("payment gateway error")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrNotSuccessful   = errors.New("payment not successful")
	ErrAmountMismatch  = errors.New("gateway amount does not match booking total")
)
