package domain

// RoomType is static reference data: one nightly rate and one capacity pool
// per category. The set of valid ids is fixed at deploy time; inventory rows
// and bookings reference these ids and never redefine the mapping.
type RoomType struct {
	ID           string   `json:"id"`
	DisplayName  string   `json:"display_name"`
	NightlyRate  float64  `json:"nightly_rate"`
	MaxOccupancy int      `json:"max_occupancy"`
	Description  string   `json:"description"`
	Amenities    []string `json:"amenities,omitempty"`
}
