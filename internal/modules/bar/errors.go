package bar

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrDrinkNotFound     = errors.New("drink not found")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrDuplicateDrink    = errors.New("drink already exists")
)
