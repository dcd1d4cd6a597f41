package domain

import "time"

// InventoryRecord tracks physical capacity per room type. AvailableRooms is a
// denormalized hint updated by lifecycle side effects; the availability
// calculator recomputes truth from the booking ledger and never trusts it for
// capacity decisions.
type InventoryRecord struct {
	ID             int64     `json:"id"`
	RoomTypeID     string    `json:"room_type_id"`
	TotalRooms     int       `json:"total_rooms"`
	AvailableRooms int       `json:"available_rooms"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
