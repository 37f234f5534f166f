package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// BookingStatuses lists every accepted lifecycle status.
var BookingStatuses = []BookingStatus{
	BookingPending,
	BookingConfirmed,
	BookingCancelled,
	BookingCompleted,
}

func IsValidBookingStatus(s string) bool {
	for _, v := range BookingStatuses {
		if string(v) == s {
			return true
		}
	}
	return false
}

// Booking is a stay on one room over [CheckInDate, CheckOutDate).
// CheckOutDate is exclusive; both dates are calendar days at UTC midnight.
// TotalCost is a cached value, always recomputable from the room rate and
// the attached charges.
type Booking struct {
	ID           int64         `json:"id"`
	GuestID      int64         `json:"guest_id" validate:"required"`
	RoomID       int64         `json:"room_id" validate:"required"`
	CheckInDate  time.Time     `json:"check_in_date" validate:"required"`
	CheckOutDate time.Time     `json:"check_out_date" validate:"required"`
	TotalCost    float64       `json:"total_cost"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	Guest *Guest `json:"guest,omitempty"`
	Room  *Room  `json:"room,omitempty"`
}

// Nights returns the stay length in days, floored at 1.
func (b *Booking) Nights() int {
	n := int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
	if n <= 0 {
		n = 1
	}
	return n
}

// BookingCharge links a booking to a catalog service. Subtotal is cached
// as service price times quantity at attach time.
type BookingCharge struct {
	ID        int64   `json:"id"`
	BookingID int64   `json:"booking_id" validate:"required"`
	ServiceID int64   `json:"service_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Subtotal  float64 `json:"subtotal"`
}
