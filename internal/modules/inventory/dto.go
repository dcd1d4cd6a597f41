package inventory

type CreateInventoryRequest struct {
	RoomTypeID     string `json:"room_type_id" binding:"required"`
	TotalRooms     int    `json:"total_rooms" binding:"required"`
	AvailableRooms *int   `json:"available_rooms"`
}

type UpdateInventoryRequest struct {
	TotalRooms     *int  `json:"total_rooms"`
	AvailableRooms *int  `json:"available_rooms"`
	Active         *bool `json:"active"`
}
