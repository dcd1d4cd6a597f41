package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrInvalidDateRange  = errors.New("check-out must be after check-in")
	ErrUnknownRoomType   = errors.New("unknown room type")
	ErrRoomTypeNotFound  = errors.New("no active inventory for room type")
	ErrNoRoomsAvailable  = errors.New("no rooms available")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrForbidden         = errors.New("forbidden")
	ErrCannotDeleteFreed = errors.New("cannot delete a booking that already freed its room")
)
