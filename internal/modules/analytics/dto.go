package analytics

// StatusBucket is one booking status rollup in the summary window.
type StatusBucket struct {
	Status  string  `json:"status"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

// Occupancy describes how full one room type currently is.
type Occupancy struct {
	RoomTypeID     string  `json:"room_type_id"`
	TotalRooms     int     `json:"total_rooms"`
	OccupiedRooms  int64   `json:"occupied_rooms"`
	AvailableRooms int     `json:"available_rooms"`
	OccupancyRate  float64 `json:"occupancy_rate"`
}

// Summary is the back-office dashboard payload.
type Summary struct {
	From           string         `json:"from"`
	To             string         `json:"to"`
	Bookings       []StatusBucket `json:"bookings"`
	TotalBookings  int64          `json:"total_bookings"`
	RoomRevenue    float64        `json:"room_revenue"`
	BarRevenue     float64        `json:"bar_revenue"`
	TotalRevenue   float64        `json:"total_revenue"`
	Occupancy      []Occupancy    `json:"occupancy"`
}
