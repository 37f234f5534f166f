package domain

import "time"

type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomSuite  RoomType = "suite"
)

var RoomTypes = []RoomType{RoomSingle, RoomDouble, RoomSuite}

// RoomStatus is derived from the room's booking set, never set by callers.
type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomReserved  RoomStatus = "reserved"
	RoomTurnover  RoomStatus = "turnover"
	RoomOccupied  RoomStatus = "occupied"
)

type Room struct {
	ID            int64      `json:"id"`
	RoomNumber    string     `json:"room_number" validate:"required"`
	RoomType      RoomType   `json:"room_type" validate:"required"`
	Capacity      int        `json:"capacity" validate:"required,gt=0"`
	PricePerNight float64    `json:"price_per_night" validate:"required,gt=0"`
	Status        RoomStatus `json:"status"`
	IsAvailable   bool       `json:"is_available"`
	Description   string     `json:"description,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
