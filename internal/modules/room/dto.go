package room

// Derived fields (status, is_available) are deliberately absent from both
// bodies; they are only ever written through the state refresher.

type createRoomBody struct {
	RoomNumber    string  `json:"room_number" binding:"required"`
	RoomType      string  `json:"room_type" binding:"required"`
	Capacity      int     `json:"capacity" binding:"required"`
	PricePerNight float64 `json:"price_per_night" binding:"required"`
	Description   string  `json:"description"`
}

type updateRoomBody struct {
	RoomNumber    *string  `json:"room_number"`
	RoomType      *string  `json:"room_type"`
	Capacity      *int     `json:"capacity"`
	PricePerNight *float64 `json:"price_per_night"`
	Description   *string  `json:"description"`
}
