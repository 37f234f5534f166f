package booking

import "time"

const dateLayout = "2006-01-02"

// Service-facing requests carry parsed dates; handlers own the string form.

type CreateBookingRequest struct {
	GuestID      int64
	RoomID       int64
	CheckInDate  time.Time
	CheckOutDate time.Time
	Status       string
}

type UpdateBookingRequest struct {
	GuestID      *int64
	RoomID       *int64
	CheckInDate  *time.Time
	CheckOutDate *time.Time
}

type createBookingBody struct {
	GuestID      int64  `json:"guest_id" binding:"required"`
	RoomID       int64  `json:"room_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	Status       string `json:"status"`
}

type updateBookingBody struct {
	GuestID      *int64  `json:"guest_id"`
	RoomID       *int64  `json:"room_id"`
	CheckInDate  *string `json:"check_in_date"`
	CheckOutDate *string `json:"check_out_date"`
}

type updateStatusBody struct {
	Status string `json:"status" binding:"required"`
}

type attachChargeBody struct {
	ServiceID int64 `json:"service_id" binding:"required"`
	Quantity  int   `json:"quantity"`
}

type availabilityResponse struct {
	RoomID    int64  `json:"room_id"`
	Available bool   `json:"available"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
}
