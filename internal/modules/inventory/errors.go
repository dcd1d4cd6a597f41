package inventory

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrUnknownRoomType    = errors.New("unknown room type")
	ErrDuplicateInventory = errors.New("inventory already exists for room type")
	ErrNotFound           = errors.New("inventory record not found")
)
