package booking

type CreateBookingRequest struct {
	RoomTypeID string `json:"room_type_id" binding:"required" validate:"required"`
	GuestName  string `json:"guest_name" binding:"required" validate:"required,min=2"`
	GuestEmail string `json:"guest_email" binding:"required,email" validate:"required,email"`
	GuestPhone string `json:"guest_phone" binding:"required" validate:"required,min=7"`
	CheckIn    string `json:"check_in" binding:"required" validate:"required"`
	CheckOut   string `json:"check_out" binding:"required" validate:"required"`
	Guests     int    `json:"guests" validate:"gte=0,lte=10"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
