package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// AvailabilityResult carries the diagnostic counts operators need when a
// request is rejected for capacity.
type AvailabilityResult struct {
	Available  bool `json:"available"`
	FreeRooms  int  `json:"free_room_count"`
	TotalRooms int  `json:"total_rooms"`
	Booked     int  `json:"booked"`
}

// CapacityError reports a rejected booking together with the counts an
// operator needs to debug it. It unwraps to ErrNoRoomsAvailable.
type CapacityError struct {
	Result   AvailabilityResult
	CheckIn  string
	CheckOut string
}

func (e *CapacityError) Error() string {
	return "no rooms available for " + e.CheckIn + ".." + e.CheckOut
}

func (e *CapacityError) Unwrap() error { return ErrNoRoomsAvailable }

// Calculator derives free capacity for a room type and date range. This is a
// counting model over the booking ledger, not a per-room assignment: the
// inventory row supplies total capacity, overlapping non-freed bookings are
// subtracted, and the cached available counter is never consulted.
type Calculator struct {
	bookings  BookingRepository
	inventory InventoryStore
}

func NewCalculator(bookings BookingRepository, inventory InventoryStore) *Calculator {
	return &Calculator{bookings: bookings, inventory: inventory}
}

// Check reports free capacity for [checkIn, checkOut). A missing or inactive
// inventory row means the room type is not sellable at all.
func (c *Calculator) Check(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (*AvailabilityResult, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	inv, err := c.inventory.GetByRoomType(ctx, roomTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}

	booked, err := c.bookings.CountOverlapping(ctx, roomTypeID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	free := inv.TotalRooms - booked
	if free < 0 {
		free = 0
	}
	return &AvailabilityResult{
		Available:  free >= 1,
		FreeRooms:  free,
		TotalRooms: inv.TotalRooms,
		Booked:     booked,
	}, nil
}
